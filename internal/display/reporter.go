package display

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/aiagentinc/progstream"
)

// Reporter periodically logs the total of a Counter from its own
// goroutine while another goroutine moves the data.
type Reporter struct {
	logger   *log.Logger
	counter  *progstream.Counter
	verb     string
	interval time.Duration
}

func NewReporter(logger *log.Logger, counter *progstream.Counter, verb string, interval time.Duration) *Reporter {
	return &Reporter{
		logger:   logger,
		counter:  counter,
		verb:     verb,
		interval: interval,
	}
}

// Run logs until ctx is done, then logs the final total once more.
func (r *Reporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	last := int64(-1)
	for {
		select {
		case <-ctx.Done():
			r.report(r.counter.Total())
			return
		case <-ticker.C:
			total := r.counter.Total()
			if total == last {
				continue
			}
			last = total
			r.report(total)
		}
	}
}

// Start runs the reporter in the background. The returned stop function
// cancels it and waits for the final log line.
func (r *Reporter) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.Run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}

func (r *Reporter) report(total int64) {
	r.logger.Info(r.verb, "KiB", total/1024, "bytes", total)
}
