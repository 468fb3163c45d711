package cli

import (
	"studio-planner/internal/tui"

	"github.com/spf13/cobra"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit the floor plan in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openPlanner(cmd)
			if err != nil {
				return err
			}
			defer p.Close()
			return tui.Run(cmd.Context(), p)
		},
	}
}
