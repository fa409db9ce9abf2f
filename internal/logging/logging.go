// Package logging builds the zap loggers used across the portfolio.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Zachkp/microx-portfolio/internal/config"
)

// New builds a logger from cfg: JSON output at the configured level, or a
// colored console logger in development mode.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(cfg.Level); err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
		}
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

// Console builds a development logger without colors for environments,
// such as the browser console, that do not render ANSI escapes.
func Console(level string) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.DisableStacktrace = true
	zc.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")

	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", level, err)
		}
		zc.Level = lvl
	}

	return zc.Build()
}

// Welcome logs the start-up banner.
func Welcome(log *zap.Logger) {
	log.Info("👋 Welcome to my portfolio!")
	log.Info("Microx Style Portfolio - built with Go, HTML and CSS")
	log.Info("Interested in the code? Check out the contact form self-test!")
}
