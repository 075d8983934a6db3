package task

import (
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/lifeboard/internal/utils"
	"gorm.io/gorm"
)

// Task is owned by the task board; this service only reads it.
type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string     `gorm:"column:task_name" json:"task_name"`
	Area        string     `gorm:"index" json:"area"`
	Status      TaskStatus `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// IsOverdue reports a due date strictly before now on an unfinished task.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && !t.IsDone() && t.DueDate.Before(now)
}

type TimeLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TaskID      uuid.UUID `gorm:"type:uuid;not null;index" json:"task_id"`
	LogDate     util.Date `gorm:"type:date;not null" json:"log_date"`
	HoursWorked float64   `gorm:"not null;default:0" json:"hours_worked"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (TimeLog) TableName() string {
	return "task_time_logs"
}

func (l *TimeLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
