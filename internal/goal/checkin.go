package goal

import (
	"math"
	"sort"
)

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// TrendTolerance is how many percentage points the latest week must move
// away from the earlier weeks' mean before the month counts as a trend.
const TrendTolerance = 5.0

type MonthlySummary struct {
	CheckIns        []*CheckIn `json:"check_ins"`
	TotalCheckIns   int        `json:"total_check_ins"`
	AverageProgress int        `json:"average_progress"`
	BestWeek        *CheckIn   `json:"best_week"`
	Trend           Trend      `json:"trend"`
}

func (s *MonthlySummary) IsEmpty() bool {
	return s.TotalCheckIns == 0
}

// SummarizeMonth reduces one month of check-ins. Missing percentages count
// as 0. An empty month is a valid, empty summary.
func SummarizeMonth(checkIns []*CheckIn) MonthlySummary {
	if len(checkIns) == 0 {
		return MonthlySummary{CheckIns: []*CheckIn{}, Trend: TrendStable}
	}

	ordered := make([]*CheckIn, len(checkIns))
	copy(ordered, checkIns)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CheckinDate.Before(ordered[j].CheckinDate)
	})

	total := 0.0
	best := ordered[0]
	for _, ci := range ordered {
		total += ci.percentage()
		if ci.percentage() > best.percentage() {
			best = ci
		}
	}

	return MonthlySummary{
		CheckIns:        ordered,
		TotalCheckIns:   len(ordered),
		AverageProgress: int(math.Floor(total/float64(len(ordered)) + 0.5)),
		BestWeek:        best,
		Trend:           classifyTrend(ordered),
	}
}

// classifyTrend compares the latest check-in with the mean of the ones
// before it. ordered must be sorted by date.
func classifyTrend(ordered []*CheckIn) Trend {
	if len(ordered) < 2 {
		return TrendStable
	}

	latest := ordered[len(ordered)-1].percentage()
	prior := ordered[:len(ordered)-1]
	sum := 0.0
	for _, ci := range prior {
		sum += ci.percentage()
	}
	priorMean := sum / float64(len(prior))

	switch {
	case latest > priorMean+TrendTolerance:
		return TrendImproving
	case latest < priorMean-TrendTolerance:
		return TrendDeclining
	default:
		return TrendStable
	}
}
