// Package logger configures the global zerolog logger from command-line options.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger holds logging options, embedded as a go-flags group in every command.
type Logger struct {
	Level   string `long:"log-level"    env:"LOG_LEVEL"    description:"Log level" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	Format  string `long:"log-format"   env:"LOG_FORMAT"   description:"Log format" choice:"text" choice:"json" default:"text"`
	NoColor bool   `long:"log-no-color" env:"LOG_NO_COLOR" description:"Disable colored text output"`
}

// Setup applies the options to the global logger, writing to stderr.
func (l Logger) Setup() {
	log.Logger = l.New(os.Stderr)
	zerolog.SetGlobalLevel(l.level())
}

// New returns a logger writing to w with the configured format.
func (l Logger) New(w io.Writer) zerolog.Logger {
	if l.Format == "json" {
		return zerolog.New(w).With().Timestamp().Logger()
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    l.NoColor,
		TimeFormat: time.DateTime,
	}).With().Timestamp().Logger()
}

func (l Logger) level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(l.Level)
	if err != nil || l.Level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
