package review_test

import (
	"testing"
	"time"

	"github.com/saulo-duarte/lifeboard/internal/review"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

func ago(d time.Duration) *time.Time {
	t := now.Add(-d)
	return &t
}

const day = 24 * time.Hour

func TestDaysSince(t *testing.T) {
	assert.Equal(t, review.NeverUpdated, review.DaysSince(nil, now))
	assert.Equal(t, 0, review.DaysSince(ago(23*time.Hour), now))
	assert.Equal(t, 1, review.DaysSince(ago(36*time.Hour), now))
	assert.Equal(t, 7, review.DaysSince(ago(7*day+time.Hour), now))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   review.Input
		want review.Level
	}{
		{"low progress", review.Input{ProgressPercentage: 19, LastUpdated: ago(time.Hour)}, review.LevelCritical},
		{"progress at warning floor", review.Input{ProgressPercentage: 20, LastUpdated: ago(time.Hour)}, review.LevelWarning},
		{"progress just below normal", review.Input{ProgressPercentage: 39, LastUpdated: ago(time.Hour)}, review.LevelWarning},
		{"healthy", review.Input{ProgressPercentage: 40, LastUpdated: ago(time.Hour)}, review.LevelNormal},
		{"many overdue", review.Input{ProgressPercentage: 100, OverdueTasks: 4, LastUpdated: ago(time.Hour)}, review.LevelCritical},
		{"three overdue", review.Input{ProgressPercentage: 100, OverdueTasks: 3, LastUpdated: ago(time.Hour)}, review.LevelWarning},
		{"one overdue", review.Input{ProgressPercentage: 100, OverdueTasks: 1, LastUpdated: ago(time.Hour)}, review.LevelWarning},
		{"stale over a week", review.Input{ProgressPercentage: 100, LastUpdated: ago(8 * day)}, review.LevelCritical},
		{"stale a week", review.Input{ProgressPercentage: 100, LastUpdated: ago(7 * day)}, review.LevelWarning},
		{"stale three days", review.Input{ProgressPercentage: 100, LastUpdated: ago(3 * day)}, review.LevelWarning},
		{"touched two days ago", review.Input{ProgressPercentage: 100, LastUpdated: ago(2 * day)}, review.LevelNormal},
		{"never updated", review.Input{ProgressPercentage: 100}, review.LevelCritical},
		{"critical wins over warning", review.Input{ProgressPercentage: 30, OverdueTasks: 5, LastUpdated: ago(4 * day)}, review.LevelCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := review.Classify(tt.in, now)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, review.Classify(tt.in, now))
		})
	}
}

func TestNeedsAttentionAndSortOrder(t *testing.T) {
	assert.True(t, review.NeedsAttention(review.LevelCritical))
	assert.True(t, review.NeedsAttention(review.LevelWarning))
	assert.False(t, review.NeedsAttention(review.LevelNormal))

	assert.Less(t, review.SortOrder(review.LevelCritical), review.SortOrder(review.LevelWarning))
	assert.Less(t, review.SortOrder(review.LevelWarning), review.SortOrder(review.LevelNormal))
}
