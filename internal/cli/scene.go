package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"studio-planner/internal/common/logging"
	"studio-planner/internal/planner/mapper"
	"studio-planner/internal/planner/models"
	"studio-planner/internal/planner/service"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the plan as a react-planner scene",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openPlanner(cmd)
			if err != nil {
				return err
			}
			defer p.Close()

			scene := mapper.NewExporter().Export(p.Room.Space(), p.Store.All())
			data, err := json.MarshalIndent(scene, "", "  ")
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			return os.WriteFile(output, data, 0o644)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the plan with a react-planner scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			var scene models.Scene
			if err := json.Unmarshal(data, &scene); err != nil {
				return fmt.Errorf("parse scene: %w", err)
			}
			space, items, err := mapper.NewImporter().Import(&scene)
			if err != nil {
				return err
			}

			p, err := openPlanner(cmd)
			if err != nil {
				return err
			}
			defer p.Close()

			p.Room.Apply(service.RoomPatch{Width: &space.Width, Depth: &space.Depth, ManDoorPosition: &space.ManDoorPosition})
			p.Store.Replace(items)
			logging.FromContext(cmd.Context()).Info("imported scene", "items", len(items), "width", space.Width, "depth", space.Depth)
			return nil
		},
	}
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
