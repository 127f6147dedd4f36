package cmd

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates the console logger of the application.
//
// It logs at info level, or debug level when verbose is set.
func NewLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// WithLogger returns a copy of ctx carrying the application logger writing to w.
// Configure must have been called before.
func WithLogger(ctx context.Context, w io.Writer) context.Context {
	return NewLogger(w, config.Verbose).WithContext(ctx)
}
