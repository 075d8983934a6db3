package goal

import (
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/lifeboard/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Goal struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Area               GoalArea   `gorm:"not null" json:"area"`
	GoalStatement      string     `gorm:"type:text;not null" json:"goal_statement"`
	TargetDate         util.Date  `gorm:"type:date" json:"target_date"`
	PrimaryMetric      string     `gorm:"type:text" json:"primary_metric"`
	MetricUnit         *string    `json:"metric_unit,omitempty"`
	MetricType         MetricType `json:"metric_type"`
	StartedMetricValue *string    `json:"started_metric_value,omitempty"`
	CheckInValue       *string    `gorm:"column:check_in_value" json:"check_in_value,omitempty"`
	Status             GoalStatus `gorm:"not null" json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

type Target struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	GoalID           uuid.UUID        `gorm:"type:uuid;not null;index" json:"goal_id"`
	TargetName       string           `gorm:"type:text;not null" json:"target_name"`
	Frequency        TargetFrequency  `gorm:"not null" json:"frequency"`
	TargetValue      float64          `gorm:"not null" json:"target_value"`
	TargetUnit       *string          `json:"target_unit,omitempty"`
	ContributionType ContributionType `json:"contribution_type"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (Target) TableName() string {
	return "goal_targets"
}

func (t *Target) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type TaskLink struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	GoalID           uuid.UUID        `gorm:"type:uuid;not null;index" json:"goal_id"`
	TaskID           uuid.UUID        `gorm:"type:uuid;not null" json:"task_id"`
	TargetID         *uuid.UUID       `gorm:"type:uuid" json:"target_id,omitempty"`
	ContributionType ContributionType `json:"contribution_type"`
	CreatedAt        time.Time        `json:"created_at"`
}

func (TaskLink) TableName() string {
	return "goal_task_links"
}

func (l *TaskLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// CheckIn is the weekly record submitted on Sundays. Rows are never edited.
type CheckIn struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	GoalID                 uuid.UUID      `gorm:"type:uuid;not null;index" json:"goal_id"`
	CheckinDate            util.Date      `gorm:"column:checkin_date;type:date;not null" json:"checkin_date"`
	TargetsHit             *int           `json:"targets_hit,omitempty"`
	TargetsTotal           *int           `json:"targets_total,omitempty"`
	OverallPercentage      *float64       `json:"overall_percentage,omitempty"`
	MetricSnapshot         datatypes.JSON `json:"metric_snapshot,omitempty"`
	QualitativeFeedback    *string        `json:"qualitative_feedback,omitempty"`
	FeelingQuestion        *string        `json:"feeling_question,omitempty"`
	SustainabilityQuestion *string        `json:"sustainability_question,omitempty"`
	ObstaclesNotes         *string        `json:"obstacles_notes,omitempty"`
	CreatedAt              time.Time      `json:"created_at"`
}

func (CheckIn) TableName() string {
	return "goal_checkins"
}

func (c *CheckIn) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *CheckIn) percentage() float64 {
	if c.OverallPercentage == nil {
		return 0
	}
	return *c.OverallPercentage
}
