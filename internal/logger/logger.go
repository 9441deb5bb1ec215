// Package logger builds the zap logger used by the server and the CLI.
package logger

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kozaktomas/people-page/internal/config"
)

// InstanceIDKey is the field identifying the running process in every entry.
const InstanceIDKey = "instance_id"

// New creates a logger from cfg. Format "console" gives the human readable
// development encoder, anything else the production JSON encoder.
// Every entry carries an instance_id unique to the process.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	var zc zap.Config
	if strings.EqualFold(cfg.Format, "console") {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	zc.OutputPaths = []string{"stderr"}

	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return withInstanceID(log), nil
}

func withInstanceID(log *zap.Logger) *zap.Logger {
	return log.With(zap.String(InstanceIDKey, uuid.NewString()))
}

// ParseLevel converts a level name into a zap level.
// Empty or unknown names fall back to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
