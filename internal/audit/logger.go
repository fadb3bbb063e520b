package audit

import (
	"go.uber.org/zap"
)

// Logger writes audit events as structured log entries. Booking data lives
// in the calendar only, so there is no audit table.
type Logger struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Logger {
	return &Logger{log: log.Named("audit")}
}

func (l *Logger) Log(ev Event) error {
	fields := []zap.Field{
		zap.String("event_id", ev.ID),
		zap.String("action", ev.Action),
		zap.String("entity", ev.Entity),
		zap.Time("at", ev.At),
	}
	if ev.EntityID != "" {
		fields = append(fields, zap.String("entity_id", ev.EntityID))
	}
	if ev.RequestID != "" {
		fields = append(fields, zap.String("request_id", ev.RequestID))
	}
	if ev.Metadata != nil {
		fields = append(fields, zap.Any("metadata", ev.Metadata))
	}

	l.log.Info(ev.Action, fields...)
	return nil
}
