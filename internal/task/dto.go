package task

import "time"

// TaskStats counts one area's tasks the way the review board reads them.
type TaskStats struct {
	Total       int        `json:"total"`
	Todo        int        `json:"todo"`
	InProgress  int        `json:"in_progress"`
	Done        int        `json:"done"`
	Overdue     int        `json:"overdue"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

func (s *TaskStats) Add(t *Task, now time.Time) {
	s.Total++
	switch t.Status {
	case StatusDone:
		s.Done++
	case StatusInProgress:
		s.InProgress++
	default:
		s.Todo++
	}
	if t.IsOverdue(now) {
		s.Overdue++
	}
	if !t.UpdatedAt.IsZero() && (s.LastUpdated == nil || t.UpdatedAt.After(*s.LastUpdated)) {
		updated := t.UpdatedAt
		s.LastUpdated = &updated
	}
}

// StatsByArea groups tasks by their raw area name.
func StatsByArea(tasks []*Task, now time.Time) map[string]*TaskStats {
	stats := make(map[string]*TaskStats)
	for _, t := range tasks {
		s, ok := stats[t.Area]
		if !ok {
			s = &TaskStats{}
			stats[t.Area] = s
		}
		s.Add(t, now)
	}
	return stats
}
