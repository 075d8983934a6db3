package review_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/lifeboard/internal/config"
	"github.com/saulo-duarte/lifeboard/internal/review"
	"github.com/saulo-duarte/lifeboard/internal/task"
	util "github.com/saulo-duarte/lifeboard/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaskSource struct {
	tasks    []*task.Task
	logs     []*task.TimeLog
	tasksErr error
	logsErr  error
	since    util.Date
}

func (f *fakeTaskSource) ListByUser(ctx context.Context, userID uuid.UUID) ([]*task.Task, error) {
	return f.tasks, f.tasksErr
}

func (f *fakeTaskSource) TimeLogsSince(ctx context.Context, userID uuid.UUID, since util.Date) ([]*task.TimeLog, error) {
	f.since = since
	return f.logs, f.logsErr
}

func newService(t *testing.T, src review.TaskSource) review.Service {
	t.Helper()
	c, err := review.NewContainer(src, config.DefaultAreaMapping)
	require.NoError(t, err)
	return c.Service
}

func TestServiceDashboard(t *testing.T) {
	b := board()
	src := &fakeTaskSource{tasks: b.tasks, logs: b.logs}

	out := newService(t, src).Dashboard(context.Background(), uuid.New(), now)

	require.Len(t, out, 7)
	assert.Equal(t, "2025-03-09", src.since.String())

	assert.Equal(t, review.BucketDaily, out[0].Area)
	assert.Equal(t, review.LevelCritical, out[0].Priority)
	assert.Equal(t, review.BucketBizness, out[1].Area)
	assert.Equal(t, review.LevelWarning, out[1].Priority)
	assert.Equal(t, 2.5, out[1].HoursThisWeek)
}

func TestServiceDashboardStoreFailure(t *testing.T) {
	tests := []struct {
		name string
		src  *fakeTaskSource
	}{
		{"tasks", &fakeTaskSource{tasksErr: errors.New("connection reset")}},
		{"time logs", &fakeTaskSource{logsErr: errors.New("connection reset")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := newService(t, tt.src).Dashboard(context.Background(), uuid.New(), now)

			require.Len(t, out, 7)
			for _, s := range out {
				assert.Equal(t, "Never", s.LastUpdatedFormatted)
				assert.Equal(t, review.LevelNormal, s.Priority)
			}
		})
	}
}

func TestServiceSummary(t *testing.T) {
	b := board()
	s := newService(t, &fakeTaskSource{tasks: b.tasks, logs: b.logs}).Summary(context.Background(), uuid.New(), now)

	assert.Equal(t, 1, s.TotalCritical)
	assert.Equal(t, 1, s.TotalWarning)
	assert.True(t, s.HasAttentionNeeded)
	assert.Equal(t, []review.Bucket{review.BucketDaily, review.BucketBizness}, s.NeedsAttention)
}

func TestNewContainerRejectsBadMapping(t *testing.T) {
	_, err := review.NewContainer(&fakeTaskSource{}, map[string]string{"Golf": "SPORTS"})
	assert.ErrorIs(t, err, review.ErrUnknownBucket)
}
