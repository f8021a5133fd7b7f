package log

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger writing to w. The level is DEBUG when debug is
// true or the DEBUG environment variable is set, INFO otherwise.
func NewLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level:  log.InfoLevel,
		Prefix: "progstream",
	})

	if debug || os.Getenv("DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}
