package review_test

import (
	"math"
	"testing"
	"time"

	"github.com/saulo-duarte/lifeboard/internal/config"
	"github.com/saulo-duarte/lifeboard/internal/review"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAggregator(t *testing.T) *review.Aggregator {
	t.Helper()
	m, err := review.NewAreaMapping(config.DefaultAreaMapping)
	require.NoError(t, err)
	return review.NewAggregator(m)
}

func sampleRows() []review.RawAreaRow {
	return []review.RawAreaRow{
		{Area: "Personal", TotalTasks: 5, CompletedTasks: 1, ActiveTasks: 2, LastUpdated: ago(time.Hour)},
		{Area: "Full Stack", TotalTasks: 6, CompletedTasks: 3, ActiveTasks: 2, HoursThisWeek: 2.25, LastUpdated: ago(2 * day)},
		{Area: "S4", TotalTasks: 4, CompletedTasks: 2, ActiveTasks: 1, HoursThisWeek: 1.1, LastUpdated: ago(time.Hour)},
		{Area: "Health", TotalTasks: 2, CompletedTasks: 2, LastUpdated: ago(3 * day)},
		{Area: "Golf", TotalTasks: 4, OverdueTasks: 4, LastUpdated: ago(time.Hour)},
		{Area: "Gardening", TotalTasks: 50, OverdueTasks: 50},
	}
}

func areas(summaries []review.AreaSummary) []review.Bucket {
	out := make([]review.Bucket, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, s.Area)
	}
	return out
}

func byBucket(summaries []review.AreaSummary, b review.Bucket) review.AreaSummary {
	for _, s := range summaries {
		if s.Area == b {
			return s
		}
	}
	return review.AreaSummary{}
}

func TestAggregateNoRows(t *testing.T) {
	out := newAggregator(t).Aggregate(nil, now)

	require.Len(t, out, 7)
	assert.Equal(t, review.AllBuckets, areas(out))
	for _, s := range out {
		assert.Equal(t, "Never", s.LastUpdatedFormatted)
		assert.Equal(t, review.LevelNormal, s.Priority)
		assert.False(t, s.NeedsAttention)
		assert.Nil(t, s.LastUpdated)
		assert.Zero(t, s.TotalTasks)
	}
}

func TestAggregate(t *testing.T) {
	out := newAggregator(t).Aggregate(sampleRows(), now)

	require.Len(t, out, 7)
	assert.Equal(t, []review.Bucket{
		review.BucketGolf,
		review.BucketDaily,
		review.BucketHealth,
		review.BucketBizness,
		review.BucketContent,
		review.BucketFinances,
		review.BucketLife,
	}, areas(out))

	biz := byBucket(out, review.BucketBizness)
	assert.Equal(t, 10, biz.TotalTasks)
	assert.Equal(t, 5, biz.CompletedTasks)
	assert.Equal(t, 3, biz.ActiveTasks)
	assert.Equal(t, 50, biz.ProgressPercentage)
	assert.Equal(t, 3.4, biz.HoursThisWeek)
	require.NotNil(t, biz.LastUpdated)
	assert.Equal(t, *ago(time.Hour), *biz.LastUpdated)
	assert.Equal(t, "1 hour ago", biz.LastUpdatedFormatted)
	assert.Equal(t, review.LevelNormal, biz.Priority)

	daily := byBucket(out, review.BucketDaily)
	assert.Equal(t, 20, daily.ProgressPercentage)
	assert.Equal(t, review.LevelWarning, daily.Priority)
	assert.True(t, daily.NeedsAttention)

	health := byBucket(out, review.BucketHealth)
	assert.Equal(t, 100, health.ProgressPercentage)
	assert.Equal(t, "3 days ago", health.LastUpdatedFormatted)
	assert.Equal(t, review.LevelWarning, health.Priority)

	golf := byBucket(out, review.BucketGolf)
	assert.Equal(t, review.LevelCritical, golf.Priority)
	assert.Equal(t, 4, golf.OverdueTasks)

	content := byBucket(out, review.BucketContent)
	assert.Equal(t, "Never", content.LastUpdatedFormatted)
}

func TestAggregateRoundsProgress(t *testing.T) {
	rows := []review.RawAreaRow{
		{Area: "Health", TotalTasks: 3, CompletedTasks: 2, LastUpdated: ago(day)},
		{Area: "Golf", TotalTasks: 8, CompletedTasks: 1, LastUpdated: ago(day)},
	}
	out := newAggregator(t).Aggregate(rows, now)

	assert.Equal(t, 67, byBucket(out, review.BucketHealth).ProgressPercentage)
	assert.Equal(t, 13, byBucket(out, review.BucketGolf).ProgressPercentage)
}

func TestAggregateIsIdempotent(t *testing.T) {
	agg := newAggregator(t)
	rows := sampleRows()

	first := agg.Aggregate(rows, now)
	second := agg.Aggregate(rows, now)
	assert.Equal(t, first, second)
}

func TestSummarize(t *testing.T) {
	out := newAggregator(t).Aggregate(sampleRows(), now)
	s := review.Summarize(out)

	assert.Equal(t, 1, s.TotalCritical)
	assert.Equal(t, 2, s.TotalWarning)
	assert.True(t, s.HasAttentionNeeded)
	assert.False(t, s.AllClear)
	assert.Equal(t, []review.Bucket{review.BucketGolf, review.BucketDaily, review.BucketHealth}, s.NeedsAttention)

	quiet := review.Summarize(newAggregator(t).Aggregate(nil, now))
	assert.True(t, quiet.AllClear)
	assert.False(t, quiet.HasAttentionNeeded)
	assert.Empty(t, quiet.NeedsAttention)
}

func TestAggregateIgnoresNonFiniteHours(t *testing.T) {
	rows := []review.RawAreaRow{
		{Area: "Golf", TotalTasks: 1, CompletedTasks: 1, HoursThisWeek: math.NaN(), LastUpdated: ago(time.Hour)},
		{Area: "Golf", HoursThisWeek: math.Inf(1)},
		{Area: "Golf", HoursThisWeek: 1.5},
		{Area: "Health", HoursThisWeek: math.Inf(-1)},
	}

	var out []review.AreaSummary
	require.NotPanics(t, func() {
		out = newAggregator(t).Aggregate(rows, now)
	})
	assert.Equal(t, 1.5, byBucket(out, review.BucketGolf).HoursThisWeek)
	assert.Equal(t, 0.0, byBucket(out, review.BucketHealth).HoursThisWeek)
}
