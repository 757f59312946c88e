// Package logging builds the zap logger used by the command-line tools.
package logging

import (
	"strings"

	"github.com/nvr-ai/go-toolbox/config"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger writing to stderr.
//
// Arguments:
// - cfg: Level ("debug", "info", "warn", "error") and format ("console", "json").
// - verbose: Forces debug level regardless of cfg.
//
// Returns:
// - The logger. Callers should Sync it before exiting.
// - error if the level is unknown or the logger cannot be built.
func New(cfg config.Logging, verbose bool) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
			return nil, errors.Wrapf(err, "logging level %q", cfg.Level)
		}
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	var zc zap.Config
	switch strings.ToLower(cfg.Format) {
	case "json":
		zc = zap.NewProductionConfig()
	case "", "console":
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
		zc.DisableStacktrace = true
	default:
		return nil, errors.Errorf("logging format %q must be console or json", cfg.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	return logger, nil
}

// Setup loads the settings file at configPath (empty for defaults) and builds the
// logger it describes. It is the common start-up path of every command.
func Setup(configPath string, verbose bool) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := New(cfg.Logging, verbose)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
