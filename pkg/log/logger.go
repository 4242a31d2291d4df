package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

const (
	LevelDisabled Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

type (
	Logger interface {
		With(fields Fields) Logger
		WithField(name string, value any) Logger
		WithError(err error) Logger
		WithContext(ctx context.Context, fields Fields) context.Context
		Log(ctx context.Context, lvl Level, msg string)
		Debug(ctx context.Context, msg string)
		Info(ctx context.Context, msg string)
		Warn(ctx context.Context, msg string)
		Error(ctx context.Context, msg string)
	}

	Option func(*config)

	Fields map[string]any
	Level  int
	Format string

	config struct {
		output io.Writer
		format Format
	}

	contextKey int
)

const fieldsContextKey contextKey = iota

var slogLevelMap = map[Level]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

func WithFormat(f Format) Option {
	return func(c *config) {
		c.format = f
	}
}

type logger struct {
	impl *slog.Logger
}

func New(level Level, opts ...Option) Logger {
	if level == LevelDisabled {
		return stub{}
	}

	cfg := config{
		output: os.Stderr,
		format: FormatJSON,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: slogLevelMap[level]}
	var handler slog.Handler
	switch cfg.format {
	case FormatText:
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	return logger{slog.New(handler)}
}

func (l logger) With(fields Fields) Logger {
	if len(fields) == 0 {
		return l
	}

	l.impl = l.impl.With(convertFields(fields)...)
	return l
}

func (l logger) WithField(name string, v any) Logger {
	l.impl = l.impl.With(name, v)
	return l
}

func (l logger) WithError(err error) Logger {
	if err == nil {
		return l
	}

	l.impl = l.impl.With("error", err.Error())
	return l
}

func (l logger) WithContext(ctx context.Context, fields Fields) context.Context {
	if len(fields) == 0 {
		return ctx
	}

	ctxFields := getContextFields(ctx)
	result := make([]any, 0, len(ctxFields)+len(fields)*2)
	result = append(result, ctxFields...)
	result = append(result, convertFields(fields)...)

	return setContextFields(ctx, result)
}

func (l logger) Debug(ctx context.Context, str string) {
	l.Log(ctx, LevelDebug, str)
}

func (l logger) Info(ctx context.Context, str string) {
	l.Log(ctx, LevelInfo, str)
}

func (l logger) Warn(ctx context.Context, str string) {
	l.Log(ctx, LevelWarn, str)
}

func (l logger) Error(ctx context.Context, str string) {
	l.Log(ctx, LevelError, str)
}

func (l logger) Log(ctx context.Context, level Level, str string) {
	if level == LevelDisabled {
		return
	}

	l.impl.With(getContextFields(ctx)...).Log(ctx, slogLevelMap[level], str)
}

func getContextFields(ctx context.Context) []any {
	fields, _ := ctx.Value(fieldsContextKey).([]any)
	return fields
}

func setContextFields(ctx context.Context, fields []any) context.Context {
	if len(fields) == 0 {
		return ctx
	}

	return context.WithValue(ctx, fieldsContextKey, fields)
}

func convertFields(fields Fields) []any {
	if len(fields) == 0 {
		return nil
	}

	result := make([]any, 0, len(fields)*2)
	for key, value := range fields {
		result = append(result, key, value)
	}

	return result
}
