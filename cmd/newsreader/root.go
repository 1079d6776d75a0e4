package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/NewsReader/internal/browser"
	"github.com/NewsReader/internal/infra/gateway"
	"github.com/NewsReader/internal/infra/repository"
	"github.com/NewsReader/internal/infra/transformer"
	"github.com/NewsReader/internal/reader"
	"github.com/NewsReader/internal/tui"
	"github.com/NewsReader/pkg/config"
	"github.com/spf13/cobra"
)

type options struct {
	cfg     *config.ClientConfig
	logFile string
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.LoadClient()}

	root := &cobra.Command{
		Use:          "newsreader",
		Short:        "Terminal news reader backed by the news proxy",
		Long:         "newsreader browses top headlines by category and searches articles through the news proxy, which holds the NewsAPI key.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setupLogging(cmd == cmd.Root())
		},
		RunE: opts.runTUI,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfg.ProxyURL, "proxy-url", opts.cfg.ProxyURL, "news proxy endpoint")
	flags.StringVar(&opts.cfg.DBPath, "db", opts.cfg.DBPath, "path to the preferences database")
	flags.DurationVar(&opts.cfg.FetchTimeout, "timeout", opts.cfg.FetchTimeout, "per-request timeout")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")

	root.AddCommand(newHeadlinesCmd(opts))
	root.AddCommand(newThemeCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// setupLogging keeps the terminal clean while the TUI owns it.
func (o *options) setupLogging(interactive bool) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	var w io.Writer = os.Stderr
	switch {
	case o.logFile != "":
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		w = f
	case interactive:
		w = io.Discard
	default:
		level = max(level, slog.LevelWarn)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

func (o *options) newController() (*reader.Controller, error) {
	tr, err := transformer.GetTransformer(transformer.NewsAPIName)
	if err != nil {
		return nil, err
	}
	gw := gateway.NewNewsProxyGateway(o.cfg.ProxyURL, o.cfg.FetchTimeout, tr)
	return reader.NewController(gw), nil
}

func (o *options) runTUI(_ *cobra.Command, _ []string) error {
	ctrl, err := o.newController()
	if err != nil {
		return err
	}

	themes, err := repository.NewBoltThemeRepository(o.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening preferences: %w", err)
	}
	defer themes.Close()

	return tui.Run(tui.RunOpts{
		Controller:   ctrl,
		Themes:       themes,
		Open:         browser.Open,
		FetchTimeout: o.cfg.FetchTimeout,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "newsreader %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
