package review_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/lifeboard/internal/review"
	"github.com/saulo-duarte/lifeboard/internal/task"
	util "github.com/saulo-duarte/lifeboard/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boardFixture struct {
	tasks []*task.Task
	logs  []*task.TimeLog
}

// now is Wednesday 2025-03-12, so the week starts on Sunday 2025-03-09.
func board() boardFixture {
	yesterday := now.Add(-day)
	shipped := &task.Task{ID: uuid.New(), Area: "Full Stack", Status: task.StatusDone, UpdatedAt: now.Add(-2 * day)}
	late := &task.Task{ID: uuid.New(), Area: "Full Stack", Status: task.StatusInProgress, DueDate: &yesterday, UpdatedAt: now.Add(-day)}
	chores := &task.Task{ID: uuid.New(), Area: "Personal", Status: task.StatusNotStarted, UpdatedAt: now.Add(-5 * day)}

	return boardFixture{
		tasks: []*task.Task{shipped, late, chores},
		logs: []*task.TimeLog{
			{TaskID: shipped.ID, LogDate: util.NewDate(2025, time.March, 9), HoursWorked: 2},
			{TaskID: shipped.ID, LogDate: util.NewDate(2025, time.March, 8), HoursWorked: 5},
			{TaskID: late.ID, LogDate: util.NewDate(2025, time.March, 11), HoursWorked: 0.5},
			{TaskID: chores.ID, LogDate: util.NewDate(2025, time.March, 12), HoursWorked: 1.5},
			{TaskID: uuid.New(), LogDate: util.NewDate(2025, time.March, 12), HoursWorked: 9},
		},
	}
}

func TestBuildRawRows(t *testing.T) {
	b := board()
	rows := review.BuildRawRows(b.tasks, b.logs, now)

	require.Len(t, rows, 2)

	fullStack := rows[0]
	assert.Equal(t, "Full Stack", fullStack.Area)
	assert.Equal(t, 2, fullStack.TotalTasks)
	assert.Equal(t, 1, fullStack.CompletedTasks)
	assert.Equal(t, 1, fullStack.ActiveTasks)
	assert.Equal(t, 1, fullStack.OverdueTasks)
	assert.Equal(t, 2.5, fullStack.HoursThisWeek)
	require.NotNil(t, fullStack.LastUpdated)
	assert.Equal(t, now.Add(-day), *fullStack.LastUpdated)

	personal := rows[1]
	assert.Equal(t, "Personal", personal.Area)
	assert.Equal(t, 1, personal.TotalTasks)
	assert.Equal(t, 0, personal.CompletedTasks)
	assert.Equal(t, 1.5, personal.HoursThisWeek)
}

func TestBuildRawRowsEmpty(t *testing.T) {
	assert.Empty(t, review.BuildRawRows(nil, nil, now))
}
