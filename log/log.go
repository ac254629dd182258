package log

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-wide logger. Library code logs through the helpers
// below; applications may re-level or replace it.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger().Level(zerolog.InfoLevel)

func SetLevel(level zerolog.Level) {
	Logger = Logger.Level(level)
}

func Debugf(format string, v ...interface{}) {
	Logger.Debug().Msgf(format, v...)
}

func Infof(format string, v ...interface{}) {
	Logger.Info().Msgf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	Logger.Warn().Msgf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	Logger.Error().Msgf(format, v...)
}
