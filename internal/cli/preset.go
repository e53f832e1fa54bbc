package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planwright/floorplan/internal/model"
	"github.com/planwright/floorplan/internal/preset"
	"github.com/planwright/floorplan/internal/project"
)

// newPresetCmd creates the preset command with one subcommand per layout.
func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Create a project with a predefined region layout",
	}
	cmd.AddCommand(newPresetHShapeCmd())
	return cmd
}

func newPresetHShapeCmd() *cobra.Command {
	var (
		name          string
		output        string
		width         float64
		height        float64
		corridorWidth float64
	)

	cmd := &cobra.Command{
		Use:   "hshape",
		Short: "Create a project with an H-shaped region layout",
		Long: `Create a project whose allowed regions form an H shape: two full-height
wings joined by a horizontal corridor, plus overlapping corner regions that
let the solver bridge placements across the wing edges.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := preset.HShape(width, height, corridorWidth)
			if err != nil {
				return err
			}

			settings, err := loadDefaultSettings()
			if err != nil {
				return err
			}

			proj := model.NewProject(name)
			proj.Regions = regions
			proj.Settings = settings
			proj.Adjacency = model.AdjacencyMap{}

			if err := project.Save(output, proj); err != nil {
				return fmt.Errorf("save project %s: %w", output, err)
			}
			loggerFromContext(cmd.Context()).Infof("Created %s with %d regions", output, len(regions))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "H-Shape Plan", "project name")
	cmd.Flags().StringVarP(&output, "output", "o", "hshape.json", "output project file")
	cmd.Flags().Float64Var(&width, "width", 30, "total width of the H shape")
	cmd.Flags().Float64Var(&height, "height", 20, "total height of the H shape")
	cmd.Flags().Float64Var(&corridorWidth, "corridor", 4, "width of the horizontal corridor")

	return cmd
}
