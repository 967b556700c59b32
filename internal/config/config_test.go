package config

import (
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "workout_builder", cfg.Database.Name)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 3, cfg.Selection.DefaultLimit)
	assert.Equal(t, 20, cfg.Selection.MaxLimit)
	assert.Equal(t, 4, cfg.Selection.PoolMultiplier)
	assert.Equal(t, 30, cfg.Selection.MinPoolSize)
	assert.Equal(t, 20, cfg.Selection.MinimumThreshold)
	assert.InDelta(t, 0.7, cfg.Selection.PrimaryRatio, 1e-9)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("SELECTION_PRIMARY_RATIO", "0.5")
	t.Setenv("LOGGER_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.InDelta(t, 0.5, cfg.Selection.PrimaryRatio, 1e-9)
	assert.Equal(t, "text", cfg.Logger.Format)
}

func TestLoad_InvalidRatio(t *testing.T) {
	t.Setenv("SELECTION_PRIMARY_RATIO", "1.5")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_NegativeThreshold(t *testing.T) {
	t.Setenv("SELECTION_MIN_THRESHOLD", "-5")

	_, err := Load()
	assert.ErrorContains(t, err, "SELECTION_MIN_THRESHOLD")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5433, User: "u", Password: "p", Name: "n", SSLMode: "require"}
	assert.Equal(t, "host=h port=5433 user=u password=p dbname=n sslmode=require", d.DSN())
}

func TestApplyLogger(t *testing.T) {
	defer ApplyLogger(LoggerConfig{Level: "info", Format: "text"})

	ApplyLogger(LoggerConfig{Level: "debug", Format: "json"})
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	_, isJSON := log.StandardLogger().Formatter.(*log.JSONFormatter)
	assert.True(t, isJSON)

	ApplyLogger(LoggerConfig{Level: "nonsense", Format: "text"})
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}
