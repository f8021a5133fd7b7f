package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aiagentinc/progstream"
	"github.com/aiagentinc/progstream/internal/config"
	"github.com/aiagentinc/progstream/internal/display"
	plog "github.com/aiagentinc/progstream/internal/log"
)

// app carries the state resolved before any subcommand runs.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *log.Logger
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "progstream",
		Short:         "Move bytes through progress-reporting readers and writers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = plog.NewLogger(cmd.ErrOrStderr(), cfg.Debug)
			a.logger.Debug("config loaded", "chunk", cfg.ChunkSize, "limit", cfg.Limit, "interval", cfg.Interval)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file path")
	flags.Int(config.KeyChunkSize, config.DefaultChunkSize, "bytes per read or write call")
	flags.Int64(config.KeyLimit, 0, "stop after this many bytes (0 = no limit)")
	flags.Duration(config.KeyInterval, config.DefaultInterval, "progress log interval")
	flags.BoolP(config.KeyQuiet, "q", false, "disable progress output")
	flags.Bool(config.KeyDebug, false, "enable debug logging")
	flags.Bool(config.KeyBar, false, "show a progress bar instead of log lines")
	_ = a.v.BindPFlags(flags)

	root.AddCommand(newReadCmd(a), newWriteCmd(a), newCopyCmd(a))
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// progress returns the callback for one transfer and a function that must
// be called once the transfer ends.
func (a *app) progress(ctx context.Context, out io.Writer, verb string, total int64) (progstream.Callback, func()) {
	switch {
	case a.cfg.Quiet:
		return nil, func() {}
	case a.cfg.Bar:
		bar := display.NewBar(out, total, verb)
		return display.BarCallback(bar), func() { _ = bar.Finish() }
	}
	counter := progstream.NewCounter()
	stop := display.NewReporter(a.logger, counter, verb, a.cfg.Interval).Start(ctx)
	return counter.Callback(), stop
}
