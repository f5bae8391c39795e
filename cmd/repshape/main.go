// Package main provides the repshape CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/born-ml/represent/internal/config"
	"github.com/born-ml/represent/internal/representation"
	"github.com/born-ml/represent/internal/scenario"
)

const version = "v0.1.0-dev"

const defaultConfigPath = "repshape.yaml"

// app holds state shared by the commands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "repshape",
		Short: "Shape operations on coordinate representations",
		Long: `repshape builds spherical coordinate representations with attached
differentials and reports how shape operations share memory with their source.

Each configured scenario runs against a dense fixture and a broadcast fixture
whose components are zero-stride views.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg

			logger, err := newLogger(cfg.Logging, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			representation.SetLogger(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", defaultConfigPath, "path to the YAML config")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Show version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "repshape %s\n", version)
			},
		},
		&cobra.Command{
			Use:   "ops",
			Short: "List the operations accepted in scenario steps",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				for _, usage := range scenario.Operations() {
					fmt.Fprintln(cmd.OutOrStdout(), usage)
				}
			},
		},
		&cobra.Command{
			Use:   "init [path]",
			Short: "Write the default configuration",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path := a.configPath
				if len(args) == 1 {
					path = args[0]
				}
				if err := config.DefaultConfig().Save(path); err != nil {
					return err
				}
				a.logger.Info("wrote default config", zap.String("path", path))
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "run",
			Short: "Run the configured scenarios and print the aliasing report",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				rep, err := scenario.Run(cmd.Context(), a.cfg, a.logger)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), rep.Render())
				return nil
			},
		},
	)
	return root
}

// newLogger builds a zap logger from the logging config. Console format uses
// zap's development encoder; json uses the production one.
func newLogger(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
