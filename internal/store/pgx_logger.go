package store

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// pgxLogger adapts zerolog.Logger to the tracelog.Logger interface.
type pgxLogger struct {
	logger zerolog.Logger
}

func newPgxLogger(logger zerolog.Logger) *pgxLogger {
	return &pgxLogger{logger: logger.With().Str("component", "pgx").Logger()}
}

// Log implements tracelog.Logger.
func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var event *zerolog.Event
	switch level {
	case tracelog.LogLevelNone:
		return
	case tracelog.LogLevelTrace:
		event = l.logger.Trace()
	case tracelog.LogLevelDebug:
		event = l.logger.Debug()
	case tracelog.LogLevelInfo:
		event = l.logger.Info()
	case tracelog.LogLevelWarn:
		event = l.logger.Warn()
	case tracelog.LogLevelError:
		event = l.logger.Error()
	default:
		event = l.logger.Info().Str("pgx_log_level", level.String())
	}

	if len(data) > 0 {
		event = event.Fields(data)
	}
	event.Msg(msg)
}
