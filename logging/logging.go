package logging

import (
	"errors"
	"io"
	"os"
	"time"

	"barmaja/oops"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.ErrorStackMarshaler = oops.ZerologStackMarshaler
}

// Init configures the global logger. format is "json" or anything else for the
// human-readable console writer.
func Init(level zerolog.Level, format string) {
	var out io.Writer = os.Stderr
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(level)
}

func GlobalLogger() *zerolog.Logger {
	return &log.Logger
}

func Debug() *zerolog.Event {
	return log.Debug().Stack()
}

func Info() *zerolog.Event {
	return log.Info().Stack()
}

func Warn() *zerolog.Event {
	return log.Warn().Stack()
}

func Error() *zerolog.Event {
	return log.Error().Stack()
}

func Fatal() *zerolog.Event {
	return log.Fatal().Stack()
}

func With() zerolog.Context {
	return log.With().Stack()
}

// LogPanicValue records a recovered panic value with a stack trace.
func LogPanicValue(logger *zerolog.Logger, val interface{}, msg string) {
	if logger == nil {
		logger = GlobalLogger()
	}

	if err, ok := val.(error); ok {
		l := logger.Error().Err(err)
		var traced *oops.Error
		if !errors.As(err, &traced) {
			l = l.Interface(zerolog.ErrorStackFieldName, oops.Trace())
		}
		l.Msg(msg)
	} else {
		logger.Error().
			Interface("recovered", val).
			Interface(zerolog.ErrorStackFieldName, oops.Trace()).
			Msg(msg)
	}
}
