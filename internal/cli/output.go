package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aiagentinc/progstream"
)

// outputFile is a destination that is closed at most once: explicitly on
// success, or by the deferred cleanup on error paths.
type outputFile struct {
	*os.File
	closed bool
}

func createOutput(path string) (*outputFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create destination: %w", err)
	}
	return &outputFile{File: f}, nil
}

// Close is a no-op after the first call.
func (o *outputFile) Close() error {
	if o == nil || o.closed {
		return nil
	}
	o.closed = true
	return o.File.Close()
}

// finishOutput flushes pw, takes the sink back and closes out when it is
// set. pw is released even when the flush fails.
func finishOutput[W io.Writer](pw *progstream.ProgressWriter[W], out *outputFile) error {
	flushErr := pw.Flush()
	pw.Unwrap()
	if flushErr != nil {
		return fmt.Errorf("flush: %w", flushErr)
	}
	if out == nil {
		return nil
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", out.Name(), err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out.Name(), err)
	}
	return nil
}
