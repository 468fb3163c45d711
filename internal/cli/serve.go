package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studio-planner/internal/common/logging"
	"studio-planner/internal/planner/handlers"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			logger := logging.FromContext(ctx)
			if port != "" {
				cfg.Port = port
			}

			p, err := openPlanner(cmd)
			if err != nil {
				return err
			}
			defer p.Close()

			server := handlers.NewServer(cfg, p)
			addr := fmt.Sprintf(":%s", cfg.Port)
			logger.Info("[SERVER] starting studio planner", "addr", addr, "env", cfg.Environment, "storage", cfg.Storage)

			errc := make(chan error, 1)
			go func() { errc <- server.Listen(addr) }()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
				logger.Info("[SERVER] shutting down")
				if err := server.ShutdownWithTimeout(5 * time.Second); err != nil {
					return err
				}
				if err := ctx.Err(); !errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default from config)")
	return cmd
}
