package cli

import (
	"fmt"
	"os"

	"studio-planner/internal/common/logging"
	"studio-planner/internal/planner/drag"
	"studio-planner/internal/planner/mapper"

	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		output   string
		viewport float64
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the floor plan to SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openPlanner(cmd)
			if err != nil {
				return err
			}
			defer p.Close()

			cfg := p.Room.Config()
			svg, err := mapper.NewRenderer().Render(mapper.Plan{
				Space:    cfg.Space(),
				Items:    p.Store.All(),
				Overlays: cfg.Overlays(),
				Scale:    drag.ScaleForViewport(viewport),
			})
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			if output == "" || output == "-" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), svg)
				return err
			}
			if err := os.WriteFile(output, []byte(svg), 0o644); err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Info("wrote", "file", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().Float64Var(&viewport, "viewport", 1024, "viewport width in pixels, picks the scale")
	return cmd
}
