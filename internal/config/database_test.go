package config_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/saulo-duarte/lifeboard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	ctx := context.Background()

	assert.ErrorIs(t, config.Connect(ctx, "sqlite", ""), config.ErrMissingDSN)
	assert.Error(t, config.Connect(ctx, "mysql", "root@/lifeboard"))

	dsn := filepath.Join(t.TempDir(), "lifeboard.db")
	require.NoError(t, config.Connect(ctx, "sqlite", dsn))
	require.NotNil(t, config.DB)

	sqlDB, err := config.DB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	assert.NoError(t, sqlDB.PingContext(ctx))
}
