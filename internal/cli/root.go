// Package cli wires configuration, logging and storage into the cobra
// command tree. The bare command opens the terminal UI.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/yidao/internal/config"
	"github.com/kingrea/yidao/internal/logging"
	"github.com/kingrea/yidao/internal/reading"
	"github.com/kingrea/yidao/internal/snapshot"
	"github.com/kingrea/yidao/internal/tui"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	var re *reading.Error
	if errors.As(err, &re) {
		fmt.Fprintln(w, re.UserMessage())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

type globalFlags struct {
	home  string
	debug bool
}

// runtime is everything a stateful command needs.
type runtime struct {
	config  *config.Config
	logger  *zap.Logger
	store   snapshot.Store
	service *reading.Service
}

// setup prepares the home directory, logger and snapshot store.
func setup(flags *globalFlags) (*runtime, func(), error) {
	home := flags.home
	if home == "" {
		var err error
		if home, err = config.DefaultHome(); err != nil {
			return nil, nil, err
		}
	}
	if err := config.InitDir(home); err != nil {
		return nil, nil, fmt.Errorf("init %s: %w", home, err)
	}
	cfg, err := config.NewConfig(home)
	if err != nil {
		return nil, nil, err
	}
	logger, syncLog, err := logging.New(cfg.LogsDir(), flags.debug)
	if err != nil {
		return nil, nil, err
	}
	store, err := snapshot.Open(cfg)
	if err != nil {
		syncLog()
		return nil, nil, err
	}
	rt := &runtime{
		config:  cfg,
		logger:  logger,
		store:   store,
		service: reading.NewService(reading.WithStore(store), reading.WithLogger(logger)),
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
		syncLog()
	}
	return rt, cleanup, nil
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "yidao",
		Short:         "易道 · 2026 丙午流年四柱推演",
		Long:          "Casts a four-pillar chart from a birth date and reads it against the 2026 丙午 year.\n\nRun without arguments to open the interactive terminal UI.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			rt, cleanup, err := setup(flags)
			if err != nil {
				return err
			}
			defer cleanup()

			rt.logger.Info("session opened", zap.String("theme", string(rt.config.Theme())), zap.String("backend", rt.config.Backend()))
			app := tui.NewApp(rt.config, rt.service, tui.WithLogger(rt.logger))
			return tui.Run(app, rt.logger)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.home, "home", "", "data directory (default ~/.yidao)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable verbose logging to <home>/logs/yidao.log")

	cmd.AddCommand(
		pillarsCmd(),
		zodiacCmd(),
		relationCmd(),
		reportCmd(flags),
		snapshotCmd(flags),
	)
	return cmd
}
