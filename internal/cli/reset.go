package cli

import (
	"time"

	"studio-planner/internal/common/logging"

	"github.com/spf13/cobra"
)

var timeNow = time.Now

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear stored data and restore the default studio",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openPlanner(cmd)
			if err != nil {
				return err
			}
			defer p.Close()

			if err := p.Reset(cmd.Context()); err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Info("restored defaults", "items", p.Store.Len())
			return nil
		},
	}
}
