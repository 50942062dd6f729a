package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "kpi.db", c.DBPath)
	assert.Equal(t, int64(10<<20), c.MaxUploadBytes)
	assert.Equal(t, 100, c.MaxPreviewRows)
	assert.False(t, c.AIEnabled)
	assert.Equal(t, "claude-sonnet-4-20250514", c.AIModel)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("KPI_ADDR", ":9000")
	t.Setenv("KPI_AI_ENABLED", "true")
	t.Setenv("KPI_DB_PATH", "/tmp/test.db")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", c.Addr)
	assert.True(t, c.AIEnabled)
	assert.Equal(t, "/tmp/test.db", c.DBPath)
}
