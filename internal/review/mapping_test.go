package review_test

import (
	"testing"

	"github.com/saulo-duarte/lifeboard/internal/config"
	"github.com/saulo-duarte/lifeboard/internal/review"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreaMapping(t *testing.T) {
	m, err := review.NewAreaMapping(config.DefaultAreaMapping)
	require.NoError(t, err)

	b, ok := m.Bucket("Full Stack")
	assert.True(t, ok)
	assert.Equal(t, review.BucketBizness, b)

	b, ok = m.Bucket("  huge capital ")
	assert.True(t, ok)
	assert.Equal(t, review.BucketBizness, b)

	b, ok = m.Bucket("PERSONAL")
	assert.True(t, ok)
	assert.Equal(t, review.BucketDaily, b)

	_, ok = m.Bucket("Gardening")
	assert.False(t, ok)
}

func TestNewAreaMappingRejectsUnknownBucket(t *testing.T) {
	m, err := review.NewAreaMapping(map[string]string{"reading": "life"})
	require.NoError(t, err)
	b, _ := m.Bucket("Reading")
	assert.Equal(t, review.BucketLife, b)

	_, err = review.NewAreaMapping(map[string]string{"Reading": "HOBBIES"})
	assert.ErrorIs(t, err, review.ErrUnknownBucket)
}
