package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planwright/floorplan/internal/export"
	"github.com/planwright/floorplan/internal/model"
	"github.com/planwright/floorplan/internal/project"
)

// newExportCmd creates the export command with one subcommand per format.
func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate PDF, DXF, schedule, or label output from a project",
		Long: `Generate output files from a solved project.

If the project has no stored result, the solver is run first with the
project's settings (the result is not saved back; use 'solve' for that).`,
	}
	cmd.AddCommand(newExportFormatCmd("pdf", "Render the floor plan as a PDF drawing", ".pdf"))
	cmd.AddCommand(newExportFormatCmd("dxf", "Write the floor plan as a layered DXF file", ".dxf"))
	cmd.AddCommand(newExportFormatCmd("schedule", "Write an Excel room schedule", ".xlsx"))
	cmd.AddCommand(newExportFormatCmd("labels", "Generate QR-coded room labels as a PDF", "-labels.pdf"))
	return cmd
}

// newExportFormatCmd builds one export subcommand; they differ only in the
// writer invoked and the default output suffix.
func newExportFormatCmd(format, short, suffix string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [project.json]", format),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, format, args[0], output, suffix)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: project name with format suffix)")
	return cmd
}

func runExport(cmd *cobra.Command, format, path, output, suffix string) error {
	logger := loggerFromContext(cmd.Context())

	proj, err := project.Load(path)
	if err != nil {
		return fmt.Errorf("load project %s: %w", path, err)
	}

	var result model.SolveResult
	if proj.Result != nil {
		result = *proj.Result
	} else {
		logger.Info("Project has no stored result, solving first")
		result, err = solveProject(&proj, logger)
		if err != nil {
			return err
		}
	}

	if output == "" {
		output = strings.TrimSuffix(path, filepath.Ext(path)) + suffix
	}

	prog := newProgress(logger)
	switch format {
	case "pdf":
		drawing := model.BuildDrawing(proj.Regions, result.Placements, proj.Adjacency)
		err = export.ExportPDF(output, proj.Name, drawing, result)
	case "dxf":
		drawing := model.BuildDrawing(proj.Regions, result.Placements, proj.Adjacency)
		err = export.ExportDXF(output, drawing)
	case "schedule":
		err = export.ExportSchedule(output, result)
	case "labels":
		err = export.ExportLabels(output, result)
	default:
		err = fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}

	prog.done(fmt.Sprintf("Wrote %s", output))
	return nil
}
