package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/marknote"
	"github.com/iw2rmb/marknote/config"
)

type rootOptions struct {
	configPath string
	storePath  string
	logFile    string
	logLevel   string
}

// loadConfig reads the config file and applies flag overrides.
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	if o.storePath != "" {
		cfg.StorePath = o.storePath
	}
	if o.logFile != "" {
		cfg.LogFile = o.logFile
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "marknote",
		Short:         "A terminal markdown notepad with live preview",
		Version:       marknote.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEditor(cmd.Context(), opts)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	f.StringVar(&opts.storePath, "store", "", "state file, overrides store_path")
	f.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")
	f.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(newRenderCmd(), newSettingsCmd(opts), newVersionCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "marknote:", err)
		stop()
		os.Exit(1)
	}
}
