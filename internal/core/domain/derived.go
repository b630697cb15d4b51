package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// ExpiredTag is the time-left value of a campaign past its expiry.
const ExpiredTag = "Expired"

const (
	percentPlaces = 4
	averagePlaces = 9
)

var hundred = decimal.NewFromInt(100)

// Remaining is the time left before a campaign expires, truncated to whole
// minutes.
type Remaining struct {
	Expired bool
	Hours   int64
	Minutes int64
}

// TimeLeft computes the time remaining between now and expiresAt. The
// result is expired iff now is not before expiresAt.
func TimeLeft(expiresAt, now time.Time) Remaining {
	diff := expiresAt.Sub(now)
	if diff <= 0 {
		return Remaining{Expired: true}
	}
	return Remaining{
		Hours:   int64(diff / time.Hour),
		Minutes: int64(diff % time.Hour / time.Minute),
	}
}

// String formats r as "{h}h {m}m" or ExpiredTag.
func (r Remaining) String() string {
	if r.Expired {
		return ExpiredTag
	}
	return fmt.Sprintf("%dh %dm", r.Hours, r.Minutes)
}

// FundedPercent is raised/goal*100 rounded to four decimal places. It is not
// clamped and exceeds 100 for over-funded campaigns.
func FundedPercent(raised, goal float64) (float64, error) {
	if !(goal > 0) || math.IsInf(goal, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidGoal, goal)
	}
	if math.IsNaN(raised) || math.IsInf(raised, 0) {
		return 0, fmt.Errorf("%w: raised %v", ErrInvalidAmount, raised)
	}
	p, _ := decimal.NewFromFloat(raised).
		Div(decimal.NewFromFloat(goal)).
		Mul(hundred).
		Round(percentPlaces).
		Float64()
	return p, nil
}

// ProgressPercent is FundedPercent clamped to [0, 100] for progress bars.
func ProgressPercent(raised, goal float64) (float64, error) {
	p, err := FundedPercent(raised, goal)
	if err != nil {
		return 0, err
	}
	return math.Min(math.Max(p, 0), 100), nil
}

// AverageContribution returns raised/contributors. ok is false when there is
// no data to average.
func AverageContribution(raised float64, contributors int64) (avg float64, ok bool) {
	if contributors <= 0 || math.IsNaN(raised) || math.IsInf(raised, 0) {
		return 0, false
	}
	avg, _ = decimal.NewFromFloat(raised).
		Div(decimal.NewFromInt(contributors)).
		Round(averagePlaces).
		Float64()
	return avg, true
}

// Derived holds the display values computed from a campaign at a point in
// time. It is never persisted.
type Derived struct {
	TimeLeft            string   `json:"timeLeft"`
	Expired             bool     `json:"expired"`
	ProgressPercent     float64  `json:"progressPercent"`
	FundedPercent       *float64 `json:"fundedPercent,omitempty"`
	AverageContribution *float64 `json:"averageContribution,omitempty"`
	PumpFunURL          string   `json:"pumpFunUrl"`
	DexscreenerURL      string   `json:"dexscreenerUrl"`
}

// Derive computes every display value of c at now. A campaign with an
// unusable goal gets a zero progress bar and no funded percentage.
func Derive(c Campaign, now time.Time) Derived {
	left := TimeLeft(c.ExpiresAt, now)
	d := Derived{
		TimeLeft:       left.String(),
		Expired:        left.Expired,
		PumpFunURL:     PumpFunURL(c.TokenAddress),
		DexscreenerURL: DexscreenerURL(c.TokenAddress),
	}
	if funded, err := FundedPercent(c.Raised, c.Goal); err == nil {
		d.FundedPercent = &funded
		d.ProgressPercent, _ = ProgressPercent(c.Raised, c.Goal)
	}
	if avg, ok := AverageContribution(c.Raised, c.Contributors); ok {
		d.AverageContribution = &avg
	}
	return d
}

// PumpFunURL links to the token's Pump.Fun page.
func PumpFunURL(address string) string {
	return "https://pump.fun/coin/" + address
}

// DexscreenerURL links to the token's Dexscreener page.
func DexscreenerURL(address string) string {
	return "https://dexscreener.com/solana/" + address
}
