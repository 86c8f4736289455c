// Command presentergen scaffolds presenter source files.
//
//	presentergen make PostPresenter
//	presentergen make blog/PostPresenter --item '*Post' --force
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bjaus/presenter/internal/scaffold"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:           "presentergen",
		Short:         "Scaffold presenter source files",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(a.newMakeCmd())
	return root
}

func (a *app) newMakeCmd() *cobra.Command {
	var opts scaffold.Options
	var dir, pkg string
	cmd := &cobra.Command{
		Use:   "make [name]",
		Short: "Create a new presenter",
		Long: `Creates a presenter source file from a template.

A plain name such as PostPresenter is written to the presenters folder
(PRESENTER_DIR, package PRESENTER_PACKAGE). A name with a folder prefix such
as blog/PostPresenter is written to that folder with a matching package.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := scaffold.LoadConfig()
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.Dir = dir
			}
			if pkg != "" {
				cfg.Package = pkg
			}
			opts.Name = args[0]
			opts.Config = cfg
			opts.Logger = a.logger

			res, err := scaffold.Generate(opts)
			if err != nil {
				a.logger.Error("presenter not created", zap.String("name", opts.Name), zap.Error(err))
				return err
			}
			a.logger.Info("presenter created", zap.String("path", res.Path))
			fmt.Fprintln(cmd.OutOrStdout(), "Presenter created successfully.")
			fmt.Fprintln(cmd.OutOrStdout(), res.Path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "create the presenter even if it already exists")
	cmd.Flags().StringVar(&opts.Item, "item", "any", "Go type of the presented item")
	cmd.Flags().StringVar(&opts.Root, "root", ".", "project root")
	cmd.Flags().StringVar(&dir, "dir", "", "presenters folder (overrides PRESENTER_DIR)")
	cmd.Flags().StringVar(&pkg, "package", "", "presenters package (overrides PRESENTER_PACKAGE)")
	return cmd
}
