package goal

type GoalArea string

const (
	AreaHealth        GoalArea = "Health"
	AreaRelationships GoalArea = "Relationships"
	AreaFinance       GoalArea = "Finance"
	AreaFullStack     GoalArea = "Full Stack"
	AreaHugeCapital   GoalArea = "Huge Capital"
	AreaS4            GoalArea = "S4"
)

var AllAreas = []GoalArea{
	AreaHealth,
	AreaRelationships,
	AreaFinance,
	AreaFullStack,
	AreaHugeCapital,
	AreaS4,
}

func (a GoalArea) IsValid() bool {
	for _, v := range AllAreas {
		if a == v {
			return true
		}
	}
	return false
}

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusAchieved  GoalStatus = "achieved"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusAbandoned GoalStatus = "abandoned"
)

type MetricType string

const (
	MetricNumeric     MetricType = "numeric"
	MetricQualitative MetricType = "qualitative"
)

type TargetFrequency string

const (
	FrequencyDaily   TargetFrequency = "daily"
	FrequencyWeekly  TargetFrequency = "weekly"
	FrequencyMonthly TargetFrequency = "monthly"
)

type ContributionType string

const (
	ContributionCount    ContributionType = "count"
	ContributionDuration ContributionType = "duration"
	ContributionMetric   ContributionType = "metric"
)
