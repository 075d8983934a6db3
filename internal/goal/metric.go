package goal

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	nonNumericChars = regexp.MustCompile(`[^0-9.\-]`)
	leadingNumber   = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)

	hundred = decimal.NewFromInt(100)
	half    = decimal.New(5, -1)
	maxInt  = decimal.NewFromInt(math.MaxInt)
	minInt  = decimal.NewFromInt(math.MinInt)
)

// ParseMetric reads a display-formatted value such as "$20,000" or "15%".
// Decoration is stripped and the leading number is kept, so "10-15" reads
// as 10. It reports false when no number remains.
func ParseMetric(raw string) (decimal.Decimal, bool) {
	cleaned := nonNumericChars.ReplaceAllString(raw, "")
	match := leadingNumber.FindString(cleaned)
	if match == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(match, "."))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// MetricProgress measures how far current has moved from start toward
// target. Reduction goals (target below start) count down, growth goals
// count up. TargetsHit and TargetsTotal carry the rounded current and
// target metric values, not counts.
func MetricProgress(start, current, target decimal.Decimal) Progress {
	progress := decimal.Zero
	switch {
	case target.LessThan(start):
		progress = start.Sub(current).Div(start.Sub(target)).Mul(hundred)
	case target.GreaterThan(start):
		progress = current.Sub(start).Div(target.Sub(start)).Mul(hundred)
	}

	return Progress{
		Basis:                BasisMetric,
		TargetsHit:           roundHalfUp(current),
		TargetsTotal:         roundHalfUp(target),
		CompletionPercentage: roundHalfUp(clampPercent(progress)),
	}
}

func clampPercent(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if d.GreaterThan(hundred) {
		return hundred
	}
	return d
}

// roundHalfUp rounds .5 toward positive infinity, saturating at the int range.
func roundHalfUp(d decimal.Decimal) int {
	r := d.Add(half).Floor()
	switch {
	case r.GreaterThan(maxInt):
		return math.MaxInt
	case r.LessThan(minInt):
		return math.MinInt
	}
	return int(r.IntPart())
}

// percentOf is part/whole as a rounded percentage, 0 when whole is 0.
func percentOf(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	ratio := decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(whole)))
	return roundHalfUp(ratio)
}
