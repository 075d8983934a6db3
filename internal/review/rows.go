package review

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/lifeboard/internal/task"
	util "github.com/saulo-duarte/lifeboard/internal/utils"
)

// BuildRawRows derives one row per source area from task and time log rows.
// Only hours logged since the start of now's week are counted.
func BuildRawRows(tasks []*task.Task, logs []*task.TimeLog, now time.Time) []RawAreaRow {
	stats := task.StatsByArea(tasks, now)

	areaOf := make(map[uuid.UUID]string, len(tasks))
	for _, t := range tasks {
		areaOf[t.ID] = t.Area
	}

	weekStart := util.DateOf(util.StartOfWeek(now))
	hours := make(map[string]float64)
	for _, l := range logs {
		area, ok := areaOf[l.TaskID]
		if !ok || l.LogDate.Before(weekStart) {
			continue
		}
		hours[area] += l.HoursWorked
	}

	areas := make([]string, 0, len(stats))
	for area := range stats {
		areas = append(areas, area)
	}
	sort.Strings(areas)

	rows := make([]RawAreaRow, 0, len(areas))
	for _, area := range areas {
		s := stats[area]
		rows = append(rows, RawAreaRow{
			Area:           area,
			TotalTasks:     s.Total,
			CompletedTasks: s.Done,
			ActiveTasks:    s.InProgress,
			OverdueTasks:   s.Overdue,
			HoursThisWeek:  hours[area],
			LastUpdated:    s.LastUpdated,
		})
	}
	return rows
}
