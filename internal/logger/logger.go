// Package logger provides the structured logger used by the jalali
// command.
package logger

import (
	"fmt"
	"io"

	"github.com/theory/sqljalali/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger to provide application-specific logging.
type Logger struct {
	*zap.SugaredLogger
}

// New creates a new logger that writes to w. The "json" format writes
// production-style JSON records; any other format writes development-style
// console records.
func New(cfg config.LogConfig, w io.Writer) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return &Logger{SugaredLogger: zap.New(core).Sugar()}, nil
}

// Nop returns a logger that discards all output.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// WithFields adds structured fields to the logger.
func (l *Logger) WithFields(fields ...any) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.With(fields...),
	}
}

// WithError adds an error field to the logger.
func (l *Logger) WithError(err error) *Logger {
	return l.WithFields("error", err.Error())
}

// WithCommand adds a command field to the logger.
func (l *Logger) WithCommand(name string) *Logger {
	return l.WithFields("command", name)
}

// LogConversion logs the conversion of src to res at debug level, or the
// failure to convert it at warn level.
func (l *Logger) LogConversion(direction, src, res string, err error) {
	if err != nil {
		l.Warnw("Conversion failed", "direction", direction, "input", src, "error", err.Error())
		return
	}
	l.Debugw("Converted", "direction", direction, "input", src, "output", res)
}

// Close flushes any buffered log entries.
func (l *Logger) Close() error {
	//nolint:wrapcheck // Okay to return unwrapped error
	return l.SugaredLogger.Sync()
}
