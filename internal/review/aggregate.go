package review

import (
	"math"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const neverLabel = "Never"

// RawAreaRow is one source area's activity as read from the task board.
type RawAreaRow struct {
	Area           string     `json:"area"`
	TotalTasks     int        `json:"total_tasks"`
	CompletedTasks int        `json:"completed_tasks"`
	ActiveTasks    int        `json:"active_tasks"`
	OverdueTasks   int        `json:"overdue_tasks"`
	HoursThisWeek  float64    `json:"hours_this_week"`
	LastUpdated    *time.Time `json:"last_updated,omitempty"`
}

type AreaSummary struct {
	Area                 Bucket     `json:"area"`
	TotalTasks           int        `json:"totalTasks"`
	CompletedTasks       int        `json:"completedTasks"`
	ActiveTasks          int        `json:"activeTasks"`
	OverdueTasks         int        `json:"overdueTasks"`
	ProgressPercentage   int        `json:"progressPercentage"`
	LastUpdated          *time.Time `json:"lastUpdated"`
	LastUpdatedFormatted string     `json:"lastUpdatedFormatted"`
	HoursThisWeek        float64    `json:"hoursThisWeek"`
	NeedsAttention       bool       `json:"needsAttention"`
	Priority             Level      `json:"priority"`
}

type Aggregator struct {
	Mapping AreaMapping
}

func NewAggregator(mapping AreaMapping) *Aggregator {
	return &Aggregator{Mapping: mapping}
}

// Aggregate folds raw rows into one summary per bucket, most urgent first.
// Rows whose area has no bucket are ignored.
func (a *Aggregator) Aggregate(rows []RawAreaRow, now time.Time) []AreaSummary {
	grouped := make(map[Bucket][]RawAreaRow, len(AllBuckets))
	for _, row := range rows {
		b, ok := a.Mapping.Bucket(row.Area)
		if !ok {
			continue
		}
		grouped[b] = append(grouped[b], row)
	}

	out := make([]AreaSummary, 0, len(AllBuckets))
	for _, b := range AllBuckets {
		out = append(out, summarizeBucket(b, grouped[b], now))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return SortOrder(out[i].Priority) < SortOrder(out[j].Priority)
	})
	return out
}

func summarizeBucket(b Bucket, rows []RawAreaRow, now time.Time) AreaSummary {
	if len(rows) == 0 {
		return AreaSummary{
			Area:                 b,
			LastUpdatedFormatted: neverLabel,
			Priority:             LevelNormal,
		}
	}

	s := AreaSummary{Area: b}
	hours := decimal.Zero
	for _, row := range rows {
		s.TotalTasks += row.TotalTasks
		s.CompletedTasks += row.CompletedTasks
		s.ActiveTasks += row.ActiveTasks
		s.OverdueTasks += row.OverdueTasks
		hours = hours.Add(decimal.NewFromFloat(finiteHours(row.HoursThisWeek)))
		if row.LastUpdated != nil && (s.LastUpdated == nil || row.LastUpdated.After(*s.LastUpdated)) {
			last := *row.LastUpdated
			s.LastUpdated = &last
		}
	}

	if s.TotalTasks > 0 {
		s.ProgressPercentage = int(decimal.NewFromInt(int64(s.CompletedTasks)).
			Div(decimal.NewFromInt(int64(s.TotalTasks))).
			Mul(decimal.NewFromInt(100)).
			Add(decimal.NewFromFloat(0.5)).
			Floor().
			IntPart())
	}
	s.HoursThisWeek = hours.Round(1).InexactFloat64()
	s.LastUpdatedFormatted = formatLastUpdated(s.LastUpdated, now)

	s.Priority = Classify(Input{
		ProgressPercentage: s.ProgressPercentage,
		OverdueTasks:       s.OverdueTasks,
		LastUpdated:        s.LastUpdated,
	}, now)
	s.NeedsAttention = NeedsAttention(s.Priority)
	return s
}

// finiteHours drops NaN and infinite sums, which decimal cannot represent.
func finiteHours(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	return h
}

func formatLastUpdated(last *time.Time, now time.Time) string {
	if last == nil {
		return neverLabel
	}
	return humanize.RelTime(*last, now, "ago", "from now")
}

// ReviewSummary is the headline shown above the dashboard.
type ReviewSummary struct {
	TotalCritical      int      `json:"totalCritical"`
	TotalWarning       int      `json:"totalWarning"`
	HasAttentionNeeded bool     `json:"hasAttentionNeeded"`
	AllClear           bool     `json:"allClear"`
	NeedsAttention     []Bucket `json:"needsAttention"`
}

func Summarize(areas []AreaSummary) ReviewSummary {
	s := ReviewSummary{NeedsAttention: []Bucket{}}
	for _, a := range areas {
		switch a.Priority {
		case LevelCritical:
			s.TotalCritical++
		case LevelWarning:
			s.TotalWarning++
		}
		if a.NeedsAttention {
			s.NeedsAttention = append(s.NeedsAttention, a.Area)
		}
	}
	s.HasAttentionNeeded = s.TotalCritical+s.TotalWarning > 0
	s.AllClear = !s.HasAttentionNeeded
	return s
}
