// Package logger provides a structured logging wrapper over
// rs/zerolog, in the shape of the teacher's logger.Logger wrapper type
// (WithTag/WithTags, level methods, context-aware *Ctx variants) -
// rewired onto zerolog since that is the library the teacher's own
// go.mod already requires but its original logger.go left unused in
// favor of log/slog.
//
// Grounded on de-upayan-wordle-ai/backend/logger/logger.go for the
// wrapper shape, and bluebear94-odnocam/mechanics/mechanics.go plus
// the Conduit hybrid_search.go example for zerolog's event-chaining
// call style (Debug().Str(...).Msg(...)).
package logger

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger, exposing the slog-style level
// methods and tag helpers the rest of this repo (and the teacher's
// handlers) are written against.
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger writing JSON-structured events to stderr, at
// the level named by the LOG_LEVEL environment variable (default
// info).
func New() *Logger {
	zl := zerolog.New(os.Stderr).
		Level(levelFromEnv()).
		With().
		Timestamp().
		Logger()
	return &Logger{zl: zl}
}

func levelFromEnv() zerolog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithTag returns a new logger with tag attached to every event.
func (l *Logger) WithTag(tag string) *Logger {
	return &Logger{zl: l.zl.With().Str("tag", tag).Logger()}
}

// WithTags returns a new logger with multiple key/value tags attached
// to every event.
func (l *Logger) WithTags(tags map[string]string) *Logger {
	ctx := l.zl.With()
	for k, v := range tags {
		ctx = ctx.Str(k, v)
	}
	return &Logger{zl: ctx.Logger()}
}

// fields applies alternating key/value pairs to a zerolog event, the
// same calling convention as log/slog's variadic Info/Warn/Error/Debug.
func fields(e *zerolog.Event, kv []any) *zerolog.Event {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	return e
}

func (l *Logger) Info(msg string, kv ...any)  { fields(l.zl.Info(), kv).Msg(msg) }
func (l *Logger) Warn(msg string, kv ...any)  { fields(l.zl.Warn(), kv).Msg(msg) }
func (l *Logger) Error(msg string, kv ...any) { fields(l.zl.Error(), kv).Msg(msg) }
func (l *Logger) Debug(msg string, kv ...any) { fields(l.zl.Debug(), kv).Msg(msg) }

// InfoCtx, WarnCtx, ErrorCtx, and DebugCtx log with the logger bound
// to ctx via zerolog's context propagation (WithContext /
// zerolog.Ctx), falling back to the receiver when ctx carries none -
// letting an HTTP handler attach a request-scoped logger once and
// have every downstream call pick it up.
func (l *Logger) InfoCtx(ctx context.Context, msg string, kv ...any) {
	fields(l.fromCtx(ctx).Info(), kv).Msg(msg)
}

func (l *Logger) WarnCtx(ctx context.Context, msg string, kv ...any) {
	fields(l.fromCtx(ctx).Warn(), kv).Msg(msg)
}

func (l *Logger) ErrorCtx(ctx context.Context, msg string, kv ...any) {
	fields(l.fromCtx(ctx).Error(), kv).Msg(msg)
}

func (l *Logger) DebugCtx(ctx context.Context, msg string, kv ...any) {
	fields(l.fromCtx(ctx).Debug(), kv).Msg(msg)
}

func (l *Logger) fromCtx(ctx context.Context) *zerolog.Logger {
	if zl := zerolog.Ctx(ctx); zl != nil && zl.GetLevel() != zerolog.Disabled {
		return zl
	}
	return &l.zl
}

// WithContext returns a copy of ctx carrying this logger, retrievable
// downstream via zerolog.Ctx.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.zl.WithContext(ctx)
}
