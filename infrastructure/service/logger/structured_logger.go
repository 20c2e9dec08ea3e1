package logger

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type contextKey string

// CorrelationIDKey is the context key under which the correlation-ID
// middleware stores the request's correlation id.
const CorrelationIDKey contextKey = "correlation_id"

// Logger is the structured logging interface used across the service.
type Logger interface {
	Info(ctx context.Context, message string, fields map[string]interface{})
	Warn(ctx context.Context, message string, fields map[string]interface{})
	Error(ctx context.Context, message string, err error, fields map[string]interface{})
	Debug(ctx context.Context, message string, fields map[string]interface{})
	WithFields(fields map[string]interface{}) Logger
}

type Config struct {
	Level       string
	Format      string
	ServiceName string
}

type structuredLogger struct {
	logger *logrus.Logger
	fields map[string]interface{}
}

func NewStructuredLogger(cfg Config) Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		l.SetFormatter(&logrus.TextFormatter{TimestampFormat: time.RFC3339Nano, FullTimestamp: true})
	}
	l.SetOutput(os.Stdout)

	return &structuredLogger{
		logger: l,
		fields: map[string]interface{}{"service": cfg.ServiceName},
	}
}

func (l *structuredLogger) Info(ctx context.Context, message string, fields map[string]interface{}) {
	l.entry(ctx, fields).Info(message)
}

func (l *structuredLogger) Warn(ctx context.Context, message string, fields map[string]interface{}) {
	l.entry(ctx, fields).Warn(message)
}

func (l *structuredLogger) Error(ctx context.Context, message string, err error, fields map[string]interface{}) {
	entry := l.entry(ctx, fields)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(message)
}

func (l *structuredLogger) Debug(ctx context.Context, message string, fields map[string]interface{}) {
	l.entry(ctx, fields).Debug(message)
}

func (l *structuredLogger) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &structuredLogger{logger: l.logger, fields: merged}
}

func (l *structuredLogger) entry(ctx context.Context, fields map[string]interface{}) *logrus.Entry {
	entry := l.logger.WithFields(logrus.Fields(l.fields))
	if id, ok := ctx.Value(CorrelationIDKey).(string); ok && id != "" {
		entry = entry.WithField("correlation_id", id)
	}
	if len(fields) > 0 {
		entry = entry.WithFields(logrus.Fields(fields))
	}
	return entry
}
