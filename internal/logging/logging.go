// Package logging builds the zap loggers used by the bigint command.
package logging

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encodings supported by New.
const (
	ConsoleEncoding = "console"
	JSONEncoding    = "json"
)

// New creates a logger writing entries of at least the given level to w,
// encoded as console text or JSON.
func New(w io.Writer, level, encoding string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch encoding {
	case ConsoleEncoding, "":
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	case JSONEncoding:
		enc = zapcore.NewJSONEncoder(cfg)
	default:
		return nil, errors.Errorf("invalid log encoding %q", encoding)
	}

	return NewZapLogger(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}

// NewZapLogger creates a zap logger around core. Callers are annotated and
// entries at error level or above carry a stack trace.
func NewZapLogger(core zapcore.Core, options ...zap.Option) *zap.Logger {
	return zap.New(
		core,
		append([]zap.Option{
			zap.AddCaller(),
			zap.AddStacktrace(zapcore.ErrorLevel),
		}, options...)...,
	)
}
