package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpetrov/minesweeper-sim/internal/config"
)

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"mode": "production",
		"logging": {"level": "warning", "file": "sweep.log"}
	}`), 0644))

	cfg := config.Default()
	require.NoError(t, config.Read(path, &cfg))

	assert.True(t, cfg.Production())
	assert.False(t, cfg.Development())
	assert.Equal(t, "warning", cfg.Logging.Level)
	assert.Equal(t, "sweep.log", cfg.Logging.File)
	// defaults survive fields the file leaves out
	assert.Equal(t, 10, cfg.Logging.MaxSizeMB)
}

func TestReadMissingFile(t *testing.T) {
	cfg := config.Default()
	assert.Error(t, config.Read(filepath.Join(t.TempDir(), "nope.json"), &cfg))
}

func TestSetupLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Mode = "production"
	cfg.Logging.Level = "warning"

	log := logrus.New()
	require.NoError(t, cfg.SetupLogger(log))
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
}

func TestSetupLoggerBadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "loud"
	assert.Error(t, cfg.SetupLogger(logrus.New()))
}
