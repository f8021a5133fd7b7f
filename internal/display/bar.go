// Package display turns progstream callbacks into terminal output.
package display

import (
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/aiagentinc/progstream"
)

// NewBar creates a byte progress bar on w. A total of zero or less renders
// a spinner because the size is unknown.
func NewBar(w io.Writer, total int64, desc string) *progressbar.ProgressBar {
	if total <= 0 {
		total = -1
	}
	return progressbar.NewOptions64(
		total,
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionOnCompletion(func() {
			_, _ = io.WriteString(w, "\n")
		}),
	)
}

// BarCallback advances bar by every reported count.
func BarCallback(bar *progressbar.ProgressBar) progstream.Callback {
	return func(n int) {
		_ = bar.Add64(int64(n))
	}
}
