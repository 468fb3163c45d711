// Package cli implements the studio command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	"studio-planner/internal/common/config"
	"studio-planner/internal/common/logging"
	"studio-planner/internal/planner/app"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion records build information shown by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

type ctxKey int

const configKey ctxKey = 0

// NewRootCommand builds the command tree. Config and logger are attached to
// the command context before any subcommand runs.
func NewRootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
		storage    string
	)

	root := &cobra.Command{
		Use:          "studio",
		Short:        "Plan the layout and equipment of a pottery studio",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if storage != "" {
				cfg.Storage = storage
			}

			level := logging.ParseLevel(cfg.LogLevel)
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := logging.WithLogger(cmd.Context(), logging.New(os.Stderr, level))
			ctx = context.WithValue(ctx, configKey, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("studio %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file (default $STUDIO_CONFIG)")
	root.PersistentFlags().StringVar(&storage, "storage", "", "storage backend: sqlite, redis or memory")

	root.AddCommand(newServeCmd())
	root.AddCommand(newTUICmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newResetCmd())
	return root
}

// Execute runs the CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// openPlanner loads the planner for a command. Callers close it.
func openPlanner(cmd *cobra.Command) (*app.Planner, error) {
	ctx := cmd.Context()
	return app.Open(ctx, configFromContext(ctx), logging.FromContext(ctx))
}
