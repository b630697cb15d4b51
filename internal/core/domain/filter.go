package domain

import "strings"

// Filter selects campaigns from a full listing. The zero value matches
// everything.
type Filter struct {
	// Query is matched case-insensitively as a substring of the name,
	// symbol or token address.
	Query string
	// Status restricts results to one status when non-empty.
	Status Status
}

// Match reports whether c passes the filter.
func (f Filter) Match(c Campaign) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Symbol), q) ||
		strings.Contains(strings.ToLower(c.TokenAddress), q)
}

// Apply returns the campaigns matching f in their original order.
func (f Filter) Apply(campaigns []Campaign) []Campaign {
	out := make([]Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}
