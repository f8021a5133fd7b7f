package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aiagentinc/progstream"
)

func newCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Copy a file through a progress reader and writer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			read, written, err := a.copy(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			a.logger.Info("copy complete", "src", args[0], "dst", args[1], "read", read, "written", written)
			return nil
		},
	}
}

func (a *app) copy(cmd *cobra.Command, srcPath, dstPath string) (int64, int64, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return 0, 0, fmt.Errorf("open source: %w", err)
	}
	size := a.cfg.Limit
	if st, err := src.Stat(); err == nil && st.Mode().IsRegular() {
		if size == 0 || st.Size() < size {
			size = st.Size()
		}
	}

	read, written := progstream.NewCounter(), progstream.NewCounter()
	pr := progstream.NewReader(src, read.Callback())
	defer func() { _ = pr.Unwrap().Close() }()

	dst, err := createOutput(dstPath)
	if err != nil {
		return 0, 0, err
	}
	defer dst.Close()

	cb, finish := a.progress(cmd.Context(), cmd.ErrOrStderr(), "Copied", size)
	defer finish()

	pw := progstream.NewWriter(bufio.NewWriterSize(dst, a.cfg.ChunkSize), progstream.Chain(written.Callback(), cb))

	var r io.Reader = pr
	if a.cfg.Limit > 0 {
		r = io.LimitReader(pr, a.cfg.Limit)
	}
	if _, err := io.CopyBuffer(pw, r, make([]byte, a.cfg.ChunkSize)); err != nil {
		return read.Total(), written.Total(), fmt.Errorf("copy %s to %s: %w", srcPath, dstPath, err)
	}
	if err := finishOutput(pw, dst); err != nil {
		return read.Total(), written.Total(), err
	}
	return read.Total(), written.Total(), nil
}
