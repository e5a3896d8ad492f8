// Package logger builds the zap logger used by the command-line tools.
// The extraction library itself never logs; callers such as the CLI and the
// crawler receive a *zap.Logger.
package logger

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encodings accepted by Config.Encoding.
const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Field keys shared by log lines across commands.
const (
	FieldURL      = "url"
	FieldWebsite  = "website"
	FieldKind     = "kind"
	FieldDuration = "duration"
	FieldPath     = "path"
)

// ErrInvalidConfig is returned for an unknown level or encoding.
var ErrInvalidConfig = errors.New("invalid logger configuration")

var logLevels = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// Config holds logging settings.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Encoding is console or json.
	Encoding string `mapstructure:"encoding"`
	// Development enables colored levels, caller info and DPanic panics.
	Development bool `mapstructure:"development"`
}

// Validate checks the level and the encoding.
func (c Config) Validate() error {
	if _, ok := logLevels[strings.ToLower(c.Level)]; !ok {
		return fmt.Errorf("%w: level %q", ErrInvalidConfig, c.Level)
	}
	if !slices.Contains([]string{EncodingConsole, EncodingJSON}, c.Encoding) {
		return fmt.Errorf("%w: encoding %q", ErrInvalidConfig, c.Encoding)
	}
	return nil
}

// New creates a logger writing to stderr, leaving stdout to command output.
func New(cfg Config) (*zap.Logger, error) {
	return NewWithSink(cfg, zapcore.Lock(os.Stderr))
}

// NewWithSink creates a logger writing to sink.
func NewWithSink(cfg Config, sink zapcore.WriteSyncer) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if cfg.Development {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
		}
		encoderConfig.ConsoleSeparator = " | "
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, sink, logLevels[strings.ToLower(cfg.Level)])

	opts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	if cfg.Development {
		opts = append(opts, zap.AddCaller(), zap.Development())
	}
	return zap.New(core, opts...), nil
}
