// Package observability provides structured logging and Prometheus
// metrics for the katsuyo binaries.
package observability

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps the zap logger with map-field helpers
type Logger struct {
	*zap.Logger
}

// ParseLevel converts debug, info, warn or error into a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return zap.InfoLevel, fmt.Errorf("log level %q: %w", level, err)
	}
	return l, nil
}

// NewLogger builds a JSON production logger at level. ENV=development
// switches to zap's human-readable development config.
func NewLogger(level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if os.Getenv("ENV") == "development" {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)

	zapLogger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &Logger{Logger: zapLogger}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Info logs msg with optional field maps.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	l.Logger.Info(msg, toZapFields(fields...)...)
}

// Debug logs msg with optional field maps.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	l.Logger.Debug(msg, toZapFields(fields...)...)
}

// Warn logs msg with optional field maps.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	l.Logger.Warn(msg, toZapFields(fields...)...)
}

// Error logs msg and err with optional field maps.
func (l *Logger) Error(msg string, err error, fields ...map[string]interface{}) {
	zf := toZapFields(fields...)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	l.Logger.Error(msg, zf...)
}

func toZapFields(fields ...map[string]interface{}) []zap.Field {
	var out []zap.Field
	for _, m := range fields {
		for k, v := range m {
			out = append(out, zap.Any(k, v))
		}
	}
	return out
}
