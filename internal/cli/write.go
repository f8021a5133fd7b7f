package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aiagentinc/progstream"
)

const defaultWriteLimit = 1000 * 1024 * 1024

func newWriteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "write [FILE]",
		Short: "Write zero bytes in chunks and report progress",
		Long: `Write chunk-size buffers of zero bytes through a progress writer into
FILE, or discard them when FILE is omitted, until --limit bytes
(default 1000 MiB) have been written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := a.cfg.Limit
			if limit == 0 {
				limit = defaultWriteLimit
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			total, err := a.write(cmd, path, limit)
			if err != nil {
				return err
			}
			a.logger.Info("write complete", "file", path, "bytes", total)
			return nil
		},
	}
}

func (a *app) write(cmd *cobra.Command, path string, limit int64) (int64, error) {
	var (
		dst io.Writer = io.Discard
		out *outputFile
	)
	if path != "" {
		f, err := createOutput(path)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		out = f
		dst = bufio.NewWriterSize(f, a.cfg.ChunkSize)
	}

	counter := progstream.NewCounter()
	cb, finish := a.progress(cmd.Context(), cmd.ErrOrStderr(), "Written", limit)
	defer finish()

	w := progstream.NewWriter(dst, progstream.Chain(counter.Callback(), cb))
	buf := make([]byte, a.cfg.ChunkSize)
	for counter.Total() < limit {
		p := buf[:min(int64(len(buf)), limit-counter.Total())]
		if _, err := w.Write(p); err != nil {
			return counter.Total(), fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := finishOutput(w, out); err != nil {
		return counter.Total(), err
	}
	return counter.Total(), nil
}
