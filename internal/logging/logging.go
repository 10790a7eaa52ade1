// Package logging builds the logrus loggers used by the vtwire tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	EnvLogLevel  = "VTWIRE_LOG_LEVEL"
	EnvLogFormat = "VTWIRE_LOG_FORMAT"
)

// Config selects the log level and output format.
type Config struct {
	Level  string `toml:"level"`  // trace, debug, info, warn, error or off
	Format string `toml:"format"` // text or json
}

// DefaultConfig logs at info level in text form.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "text"}
}

// ApplyEnv overrides cfg from VTWIRE_LOG_LEVEL and VTWIRE_LOG_FORMAT.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Format = v
	}
}

// New returns a logger writing to stderr.
func New(cfg Config) (*logrus.Logger, error) {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput returns a logger writing to w.
func NewWithOutput(cfg Config, w io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)

	level, off, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if off {
		logger.SetOutput(io.Discard)
	} else {
		logger.SetLevel(level)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", cfg.Format)
	}
	return logger, nil
}

func parseLevel(raw string) (logrus.Level, bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return logrus.InfoLevel, false, nil
	case "off", "disabled", "none":
		return logrus.PanicLevel, true, nil
	}
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		return 0, false, fmt.Errorf("unknown log level %q", raw)
	}
	return level, false, nil
}
