package logger

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/pkg/config"
)

const (
	ServiceName    = "bss"
	ServiceVersion = "1.0.0"

	RequestIDField = "request_id"
)

type requestIDKey struct{}

// WithRequestID returns a context carrying id. Events logged with that
// context through .Ctx(ctx) get a request_id field.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDHook copies the request id from an event's context onto the event.
type RequestIDHook struct{}

func (RequestIDHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	if id := RequestID(e.GetCtx()); id != "" {
		e.Str(RequestIDField, id)
	}
}

func New() zerolog.Logger {
	return NewWithConfig(config.LoggerConfig{Level: "info", TimeFormat: time.RFC3339})
}

func NewWithConfig(cfg config.LoggerConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.TimeFormat != "" {
		zerolog.TimeFieldFormat = cfg.TimeFormat
	}

	out := zerolog.New(os.Stdout)
	if cfg.Pretty {
		out = zerolog.New(zerolog.ConsoleWriter{
			Out:         os.Stdout,
			TimeFormat:  time.RFC3339,
			FormatLevel: func(i interface{}) string { return colorizeLevel(i) },
		})
	}

	return out.Hook(RequestIDHook{}).With().
		Timestamp().
		Str("service", ServiceName).
		Str("version", ServiceVersion).
		Logger()
}

// Nop returns a logger that discards everything; used by tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

var levelColors = map[string]string{
	"trace": "35",
	"debug": "36",
	"info":  "32",
	"warn":  "33",
	"error": "31",
	"fatal": "91",
	"panic": "91",
}

func colorizeLevel(i interface{}) string {
	level, _ := i.(string)
	color, ok := levelColors[level]
	if !ok {
		return level
	}
	return "\033[" + color + "m" + level + "\033[0m"
}
