// Package config holds the JSON configuration shared by the commands.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type LoggingConfig struct {
	Level      string `json:"level"`
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode    string        `json:"mode"`
	Logging LoggingConfig `json:"logging"`
}

func Default() Config {
	return Config{
		Mode: "development",
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":            c.Mode,
		"log_level":       c.Logging.Level,
		"log_file":        c.Logging.File,
		"log_max_size":    c.Logging.MaxSizeMB,
		"log_max_backups": c.Logging.MaxBackups,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func Read(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

// SetupLogger applies the configured level to log and, when a log file is
// configured, attaches a rotating file hook writing JSON lines.
func (c Config) SetupLogger(log *logrus.Logger) error {
	level, err := logrus.ParseLevel(c.Logging.Level)
	if err != nil {
		return fmt.Errorf("unable to parse log level: %w", err)
	}
	if c.Development() {
		level = max(level, logrus.DebugLevel)
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if c.Logging.File == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   c.Logging.File,
		MaxSize:    c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
		MaxAge:     c.Logging.MaxAgeDays,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to create rotate file hook: %w", err)
	}
	log.AddHook(hook)
	return nil
}
