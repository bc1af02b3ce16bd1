package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Zachkp/portfolio/config"
)

// New builds the process logger from the app settings. An empty LogFormat
// means console output in development and JSON everywhere else.
func New(app config.AppConfig, service string) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(app.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var cfg zap.Config
	if Format(app) == "console" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.With(
		zap.String("service", service),
		zap.String("environment", app.Environment),
		zap.String("version", app.Version),
	), nil
}

// Format reports the encoder New picks for app.
func Format(app config.AppConfig) string {
	switch {
	case app.LogFormat != "":
		return app.LogFormat
	case app.Environment == "development":
		return "console"
	default:
		return "json"
	}
}
