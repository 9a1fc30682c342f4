package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds the console logger shared by the CLI and the desktop app.
func New(app string, verbose bool, w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
}
