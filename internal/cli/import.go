package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planwright/floorplan/internal/importer"
	"github.com/planwright/floorplan/internal/model"
	"github.com/planwright/floorplan/internal/project"
)

// newImportCmd creates the import command.
func newImportCmd() *cobra.Command {
	var (
		projectPath string
		name        string
		replace     bool
	)

	cmd := &cobra.Command{
		Use:   "import [rooms.csv|rooms.xlsx]",
		Short: "Import rooms from a CSV or Excel file into a project",
		Long: `Import rooms from a CSV or Excel file into a project.

Column headers are matched case-insensitively against common aliases (id,
name, width, height); files without headers are read positionally as name,
width, height. CSV delimiters (comma, semicolon, tab, pipe) are detected
automatically. Rooms without an ID column get sequential IDs.

If the project file does not exist it is created.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], projectPath, name, replace)
		},
	}

	cmd.Flags().StringVarP(&projectPath, "project", "p", "project.json", "project file to import into")
	cmd.Flags().StringVarP(&name, "name", "n", "", "project name when creating a new project")
	cmd.Flags().BoolVar(&replace, "replace", false, "replace existing rooms instead of appending")

	return cmd
}

func runImport(cmd *cobra.Command, input, projectPath, name string, replace bool) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	var result importer.ImportResult
	switch ext := strings.ToLower(filepath.Ext(input)); ext {
	case ".csv", ".txt":
		result = importer.ImportCSV(input)
	case ".xlsx", ".xls":
		result = importer.ImportExcel(input)
	default:
		return fmt.Errorf("unsupported file type %q (expected .csv, .txt, .xlsx, or .xls)", ext)
	}

	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	for _, e := range result.Errors {
		logger.Error(e)
	}
	if len(result.Rooms) == 0 {
		return fmt.Errorf("no rooms imported from %s", input)
	}

	proj, err := project.Load(projectPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("load project %s: %w", projectPath, err)
		}
		proj = model.NewProject(name)
		logger.Infof("Creating new project %s", projectPath)
	}

	if replace {
		proj.Rooms = result.Rooms
	} else {
		proj.Rooms = mergeRooms(proj.Rooms, result.Rooms)
	}
	// A fresh solve is needed after the room list changes.
	proj.Result = nil

	if err := project.Save(projectPath, proj); err != nil {
		return fmt.Errorf("save project %s: %w", projectPath, err)
	}
	prog.done(fmt.Sprintf("Imported %d rooms into %s", len(result.Rooms), projectPath))
	return nil
}

// mergeRooms appends imported rooms, renumbering any whose ID collides with
// an existing room.
func mergeRooms(existing, imported []model.RoomSpec) []model.RoomSpec {
	used := make(map[int]bool, len(existing))
	for _, r := range existing {
		used[r.ID] = true
	}

	nextID := 1
	merged := append([]model.RoomSpec{}, existing...)
	for _, r := range imported {
		if used[r.ID] {
			for used[nextID] {
				nextID++
			}
			r.ID = nextID
		}
		used[r.ID] = true
		merged = append(merged, r)
	}
	return merged
}
