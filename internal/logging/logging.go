// Package logging builds the zerolog logger that receives child process
// output.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New
type Options struct {
	Console io.Writer // Human-readable output; stderr when nil
	File    string    // Optional JSON log file, appended to
	Verbose bool      // Log at debug level
}

// New returns a logger writing to the console and, when configured, a log
// file. The returned closer releases the file and is never nil.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.TimeOnly,
		PartsExclude: []string{
			zerolog.CallerFieldName,
		},
		FieldsExclude: []string{"component", "task"},
	}}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("opening log file: %w", err)
		}
		writers = append(writers, f)
		closer = f
	}

	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
