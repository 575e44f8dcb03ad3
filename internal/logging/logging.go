package logging

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/eurofurence/reg-paypal-adapter/internal/common"
)

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})

	// expected to terminate the process
	Fatal(format string, v ...interface{})
}

type loggingWrapper struct {
	logger *zerolog.Logger
}

func (l *loggingWrapper) Debug(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}

func (l *loggingWrapper) Info(format string, v ...interface{}) {
	l.logger.Info().Msgf(format, v...)
}

func (l *loggingWrapper) Warn(format string, v ...interface{}) {
	l.logger.Warn().Msgf(format, v...)
}

func (l *loggingWrapper) Error(format string, v ...interface{}) {
	l.logger.Error().Msgf(format, v...)
}

// expected to terminate the process
func (l *loggingWrapper) Fatal(format string, v ...interface{}) {
	l.logger.Fatal().Msgf(format, v...)
}

// context key with a separate type, so no other package has a chance of accessing it
type key int

const loggerKey key = 0

func NewLogger() Logger {
	logger := zerolog.New(os.Stdout).
		With().
		Str("App", common.ApplicationName).
		Timestamp().
		Logger()

	return &loggingWrapper{
		logger: &logger,
	}
}

func newLoggerForRequestId(requestId string) Logger {
	logger := zerolog.New(os.Stdout).
		With().
		Str("App", common.ApplicationName).
		Str("RequestId", requestId).
		Timestamp().
		Logger()

	return &loggingWrapper{
		logger: &logger,
	}
}

// CreateContextWithLoggerForRequestId stores a request scoped logger in the context, so
// all log output produced while processing the request can be associated with it.
func CreateContextWithLoggerForRequestId(ctx context.Context, requestId string) context.Context {
	return context.WithValue(ctx, loggerKey, newLoggerForRequestId(requestId))
}

// LoggerFromContext returns the request scoped logger. Falls back to a fresh logger,
// which is better than no logger at all, but be a good citizen and pass down the context.
func LoggerFromContext(ctx context.Context) Logger {
	logger, ok := ctx.Value(loggerKey).(Logger)
	if !ok {
		return NewLogger()
	}

	return logger
}

func NewNoopLogger() Logger {
	return &noopLogger{}
}

type noopLogger struct {
}

func (l *noopLogger) Debug(format string, v ...interface{}) {
}

func (l *noopLogger) Info(format string, v ...interface{}) {
}

func (l *noopLogger) Warn(format string, v ...interface{}) {
}

func (l *noopLogger) Error(format string, v ...interface{}) {
}

// expected to terminate the process
func (l *noopLogger) Fatal(format string, v ...interface{}) {
}
