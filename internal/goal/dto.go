package goal

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/lifeboard/internal/utils"
)

type GoalResponse struct {
	ID            uuid.UUID  `json:"id"`
	Area          GoalArea   `json:"area"`
	GoalStatement string     `json:"goal_statement"`
	TargetDate    util.Date  `json:"target_date"`
	PrimaryMetric string     `json:"primary_metric"`
	MetricUnit    *string    `json:"metric_unit,omitempty"`
	Status        GoalStatus `json:"status"`
	Progress      Progress   `json:"progress"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CreateCheckInDTO struct {
	CheckinDate            util.Date       `json:"checkin_date"`
	TargetsHit             *int            `json:"targets_hit"`
	TargetsTotal           *int            `json:"targets_total"`
	OverallPercentage      *float64        `json:"overall_percentage"`
	MetricSnapshot         json.RawMessage `json:"metric_snapshot"`
	QualitativeFeedback    *string         `json:"qualitative_feedback"`
	FeelingQuestion        *string         `json:"feeling_question"`
	SustainabilityQuestion *string         `json:"sustainability_question"`
	ObstaclesNotes         *string         `json:"obstacles_notes"`
}

type PendingCheckInsResponse struct {
	IsCheckInDay bool           `json:"is_check_in_day"`
	SundayDate   *util.Date     `json:"sunday_date,omitempty"`
	Goals        []GoalResponse `json:"goals"`
}
