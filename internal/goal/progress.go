package goal

import (
	"context"

	"github.com/google/uuid"
	"github.com/saulo-duarte/lifeboard/internal/config"
	"github.com/shopspring/decimal"
)

type BasisKind string

const (
	BasisMetric   BasisKind = "metric"
	BasisTaskLink BasisKind = "task_link"
)

// OnTrackThreshold is the completion a goal needs to count as on track.
const OnTrackThreshold = 75

// Progress has the same shape whichever basis produced it. Under the metric
// basis TargetsHit/TargetsTotal are the current and target metric values.
type Progress struct {
	GoalID               uuid.UUID `json:"goal_id"`
	Basis                BasisKind `json:"basis,omitempty"`
	TargetsHit           int       `json:"targets_hit"`
	TargetsTotal         int       `json:"targets_total"`
	CompletionPercentage int       `json:"completion_percentage"`
}

// Basis decides how a goal is measured.
type Basis interface {
	Kind() BasisKind
}

type MetricBasis struct {
	Start   decimal.Decimal
	Current decimal.Decimal
	Target  decimal.Decimal
}

func (MetricBasis) Kind() BasisKind { return BasisMetric }

type TaskLinkBasis struct{}

func (TaskLinkBasis) Kind() BasisKind { return BasisTaskLink }

// ResolveBasis picks the metric basis only when start, check-in and target
// values are all present and numeric.
func ResolveBasis(g *Goal) Basis {
	if g.StartedMetricValue == nil || g.CheckInValue == nil {
		return TaskLinkBasis{}
	}
	if *g.StartedMetricValue == "" || *g.CheckInValue == "" || g.PrimaryMetric == "" {
		return TaskLinkBasis{}
	}

	start, ok := ParseMetric(*g.StartedMetricValue)
	if !ok {
		return TaskLinkBasis{}
	}
	current, ok := ParseMetric(*g.CheckInValue)
	if !ok {
		return TaskLinkBasis{}
	}
	target, ok := ParseMetric(g.PrimaryMetric)
	if !ok {
		return TaskLinkBasis{}
	}

	return MetricBasis{Start: start, Current: current, Target: target}
}

type Resolver struct {
	store ProgressStore
}

func NewResolver(store ProgressStore) *Resolver {
	return &Resolver{store: store}
}

// Compute never fails: store errors are logged and reported as zero progress.
func (r *Resolver) Compute(ctx context.Context, g *Goal) Progress {
	log := config.WithContext(ctx).WithField("goal_id", g.ID)

	switch b := ResolveBasis(g).(type) {
	case MetricBasis:
		p := MetricProgress(b.Start, b.Current, b.Target)
		p.GoalID = g.ID
		return p
	default:
		if g.StartedMetricValue != nil && g.CheckInValue != nil {
			log.Debug("Metric values not numeric, using linked tasks")
		}
		p, err := TaskLinkProgress(ctx, r.store, g.ID)
		if err != nil {
			log.WithError(err).Error("Failed to compute goal progress")
			return Progress{GoalID: g.ID, Basis: BasisTaskLink}
		}
		return p
	}
}

type AreaProgress struct {
	Area            GoalArea   `json:"area,omitempty"`
	TotalGoals      int        `json:"total_goals"`
	GoalsOnTrack    int        `json:"goals_on_track"`
	AverageProgress int        `json:"average_progress"`
	Goals           []Progress `json:"goals"`
}

// ComputeArea rolls up a set of goals, usually the active goals of one area.
func (r *Resolver) ComputeArea(ctx context.Context, goals []*Goal) AreaProgress {
	out := AreaProgress{TotalGoals: len(goals), Goals: make([]Progress, 0, len(goals))}
	if len(goals) == 0 {
		return out
	}

	sum := 0
	for _, g := range goals {
		p := r.Compute(ctx, g)
		sum += p.CompletionPercentage
		if p.CompletionPercentage >= OnTrackThreshold {
			out.GoalsOnTrack++
		}
		out.Goals = append(out.Goals, p)
	}
	out.AverageProgress = percentOf(sum, len(goals)*100)
	return out
}
