package main

import (
	"os"

	"github.com/rs/zerolog"
)

type rootCmdConfig struct {
	verbose bool
	logger  *zerolog.Logger
}

// Logger returns a logger writing to STDERR that shows info events,
// or debug events too if the verbose flag was set.
func (rcc *rootCmdConfig) Logger() *zerolog.Logger {
	if rcc.logger == nil {
		level := zerolog.InfoLevel
		if rcc.verbose {
			level = zerolog.DebugLevel
		}
		l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
		rcc.logger = &l
	}
	return rcc.logger
}
