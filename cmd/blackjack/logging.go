package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// setupLogger builds the session logger. Interactive front ends own the
// terminal, so their logs go to the configured file instead of stderr; the
// returned closer flushes that file.
func setupLogger(level string, debug, toFile bool, file string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if debug {
		lvl = log.DebugLevel
	}

	out := io.Writer(os.Stderr)
	closer := func() {}
	if toFile {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
	})
	return logger, closer, nil
}
