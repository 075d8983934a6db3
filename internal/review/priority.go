package review

import (
	"math"
	"time"
)

type Level string

const (
	LevelCritical Level = "critical"
	LevelWarning  Level = "warning"
	LevelNormal   Level = "normal"
)

// NeverUpdated is the DaysSince value for an area with no activity.
const NeverUpdated = 999

const (
	criticalProgress = 20
	warningProgress  = 40
	criticalOverdue  = 3
	criticalDays     = 7
	warningDays      = 3
)

// Input holds everything Classify looks at.
type Input struct {
	ProgressPercentage int        `json:"progress_percentage"`
	OverdueTasks       int        `json:"overdue_tasks"`
	LastUpdated        *time.Time `json:"last_updated,omitempty"`
}

// DaysSince counts whole days elapsed between last and now.
func DaysSince(last *time.Time, now time.Time) int {
	if last == nil || last.IsZero() {
		return NeverUpdated
	}
	return int(math.Floor(now.Sub(*last).Hours() / 24))
}

func Classify(in Input, now time.Time) Level {
	days := DaysSince(in.LastUpdated, now)

	if in.ProgressPercentage < criticalProgress || in.OverdueTasks > criticalOverdue || days > criticalDays {
		return LevelCritical
	}
	if in.ProgressPercentage < warningProgress || in.OverdueTasks >= 1 || days >= warningDays {
		return LevelWarning
	}
	return LevelNormal
}

func NeedsAttention(l Level) bool {
	return l == LevelCritical || l == LevelWarning
}

// SortOrder ranks levels for the dashboard, most urgent first.
func SortOrder(l Level) int {
	switch l {
	case LevelCritical:
		return 0
	case LevelWarning:
		return 1
	default:
		return 2
	}
}
