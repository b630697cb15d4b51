package domain

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a campaign.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Resolve returns the status an active campaign should move to at now.
// Reaching the goal completes it; expiring without the goal fails it.
// Terminal statuses are returned unchanged.
func (s Status) Resolve(raised, goal float64, expiresAt, now time.Time) Status {
	if s != StatusActive {
		return s
	}
	if goal > 0 && raised >= goal {
		return StatusCompleted
	}
	if !now.Before(expiresAt) {
		return StatusFailed
	}
	return StatusActive
}

// ResolveStatus applies Status.Resolve to the campaign's own fields.
func (c Campaign) ResolveStatus(now time.Time) Status {
	return c.Status.Resolve(c.Raised, c.Goal, c.ExpiresAt, now)
}

// ParseStatusFilter parses a status query value. An empty value and "all"
// select every status and yield "".
func ParseStatusFilter(v string) (Status, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" || v == "all" {
		return "", nil
	}
	s := Status(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", v)
	}
	return s, nil
}
