package log

import (
	"context"

	"go.uber.org/zap/zapcore"
)

type ctxKey string

const (
	ctxKeySessionID ctxKey = "session_id"
	ctxKeyRequestID ctxKey = "request_id"
)

// WithSessionID attaches a session id that is emitted on every log line.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeySessionID, id)
}

// WithRequestID attaches a request id that is emitted on every log line.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

func (l *zapLogger) ctxFields(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	var fields []any
	if v, ok := ctx.Value(ctxKeySessionID).(string); ok && v != "" {
		fields = append(fields, string(ctxKeySessionID), v)
	}
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok && v != "" {
		fields = append(fields, string(ctxKeyRequestID), v)
	}
	return fields
}

// log routes "msg, k, v, ..." calls to the structured API and anything else
// to the concatenating one.
func (l *zapLogger) log(ctx context.Context, lvl zapcore.Level, args []any) {
	fields := l.ctxFields(ctx)
	if msg, kvs, ok := splitKeyValues(args); ok {
		l.sugar.Logw(lvl, msg, append(fields, kvs...)...)
		return
	}
	if len(fields) > 0 {
		l.sugar.With(fields...).Log(lvl, args...)
		return
	}
	l.sugar.Log(lvl, args...)
}

func (l *zapLogger) logf(ctx context.Context, lvl zapcore.Level, template string, args []any) {
	if fields := l.ctxFields(ctx); len(fields) > 0 {
		l.sugar.With(fields...).Logf(lvl, template, args...)
		return
	}
	l.sugar.Logf(lvl, template, args...)
}

func splitKeyValues(args []any) (string, []any, bool) {
	if len(args) < 3 || len(args)%2 == 0 {
		return "", nil, false
	}
	msg, ok := args[0].(string)
	if !ok {
		return "", nil, false
	}
	for i := 1; i < len(args); i += 2 {
		if _, ok := args[i].(string); !ok {
			return "", nil, false
		}
	}
	return msg, args[1:], true
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) { l.log(ctx, zapcore.DebugLevel, arg) }
func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.logf(ctx, zapcore.DebugLevel, template, arg)
}
func (l *zapLogger) Info(ctx context.Context, arg ...any) { l.log(ctx, zapcore.InfoLevel, arg) }
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.logf(ctx, zapcore.InfoLevel, template, arg)
}
func (l *zapLogger) Warn(ctx context.Context, arg ...any) { l.log(ctx, zapcore.WarnLevel, arg) }
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.logf(ctx, zapcore.WarnLevel, template, arg)
}
func (l *zapLogger) Error(ctx context.Context, arg ...any) { l.log(ctx, zapcore.ErrorLevel, arg) }
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.logf(ctx, zapcore.ErrorLevel, template, arg)
}
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) { l.log(ctx, zapcore.DPanicLevel, arg) }
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.logf(ctx, zapcore.DPanicLevel, template, arg)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { l.log(ctx, zapcore.PanicLevel, arg) }
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.logf(ctx, zapcore.PanicLevel, template, arg)
}
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { l.log(ctx, zapcore.FatalLevel, arg) }
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.logf(ctx, zapcore.FatalLevel, template, arg)
}
