package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aiagentinc/progstream"
)

const (
	defaultReadSource = "/dev/urandom"
	defaultReadLimit  = 100 * 1024 * 1024
)

func newReadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read [FILE]",
		Short: "Read a file in chunks and report progress",
		Long: `Read FILE (default /dev/urandom) through a progress reader, one
chunk-size buffer per call, until EOF or --limit bytes. Reading the default
source stops after 100 MiB unless --limit is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, limit := defaultReadSource, a.cfg.Limit
			if len(args) == 1 {
				path = args[0]
			} else if limit == 0 {
				limit = defaultReadLimit
			}
			total, err := a.read(cmd, path, limit)
			if err != nil {
				return err
			}
			a.logger.Info("read complete", "file", path, "bytes", total)
			return nil
		},
	}
}

func (a *app) read(cmd *cobra.Command, path string, limit int64) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open source: %w", err)
	}

	size := limit
	if size == 0 {
		if st, err := f.Stat(); err == nil && st.Mode().IsRegular() {
			size = st.Size()
		}
	}

	counter := progstream.NewCounter()
	cb, finish := a.progress(cmd.Context(), cmd.ErrOrStderr(), "Read", size)
	defer finish()

	r := progstream.NewReader(f, progstream.Chain(counter.Callback(), cb))
	defer func() { _ = r.Unwrap().Close() }()
	buf := make([]byte, a.cfg.ChunkSize)
	for limit == 0 || counter.Total() < limit {
		p := buf
		if limit > 0 {
			p = buf[:min(int64(len(buf)), limit-counter.Total())]
		}
		if _, err := r.Read(p); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return counter.Total(), fmt.Errorf("read %s: %w", path, err)
		}
	}
	return counter.Total(), nil
}
