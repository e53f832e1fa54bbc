package cli

import (
	"fmt"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/planwright/floorplan/internal/engine"
	"github.com/planwright/floorplan/internal/model"
	"github.com/planwright/floorplan/internal/project"
)

// solveOpts holds the settings overrides accepted by the solve command.
// Only flags the user actually set are applied over the project's settings.
type solveOpts struct {
	sortMethod      string
	stepSize        int
	timeout         float64
	adjacencyWeight float64
	areaWeight      float64
	noRotation      bool
	dryRun          bool
}

// newSolveCmd creates the solve command.
func newSolveCmd() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [project.json]",
		Short: "Run the room placement solver on a project",
		Long: `Run the room placement solver on a project file.

The solver sorts rooms by the configured heuristic, then attempts a
backtracking search bounded by the timeout. If the search cannot place every
room in time, a greedy single-pass placement is used instead. The result is
stored back into the project file unless --dry-run is given.

Sort methods: ` + strings.Join(sortMethodNames(), ", ") + `.
A timeout of 0 skips backtracking and goes straight to greedy placement.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sortMethod, "sort", "s", "", "room sort method")
	cmd.Flags().IntVar(&opts.stepSize, "step", 0, "position sampling step size")
	cmd.Flags().Float64VarP(&opts.timeout, "timeout", "t", -1, "backtracking timeout in seconds (0 = greedy only)")
	cmd.Flags().Float64Var(&opts.adjacencyWeight, "adjacency-weight", -1, "adjacency weight for hybrid sorting")
	cmd.Flags().Float64Var(&opts.areaWeight, "area-weight", -1, "area weight for hybrid sorting")
	cmd.Flags().BoolVar(&opts.noRotation, "no-rotation", false, "disable 90 degree room rotation")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "solve without saving the result")

	return cmd
}

func runSolve(cmd *cobra.Command, path string, opts *solveOpts) error {
	logger := loggerFromContext(cmd.Context())

	proj, err := project.Load(path)
	if err != nil {
		return fmt.Errorf("load project %s: %w", path, err)
	}
	applyOverrides(&proj.Settings, opts, cmd)

	result, err := solveProject(&proj, logger)
	if err != nil {
		return err
	}
	printSummary(cmd, result)

	if opts.dryRun {
		logger.Debug("Dry run, not saving result")
		return nil
	}
	if err := project.Save(path, proj); err != nil {
		return fmt.Errorf("save project %s: %w", path, err)
	}
	logger.Infof("Saved result to %s", path)
	return nil
}

// solveProject runs the solver on a project and stores the result in it.
func solveProject(proj *model.Project, logger *charmlog.Logger) (model.SolveResult, error) {
	rooms := proj.BuildRooms()
	solver, err := engine.New(proj.Settings, rooms, proj.Regions, proj.Adjacency)
	if err != nil {
		return model.SolveResult{}, err
	}

	logger.Debugf("Solving %d rooms in %d regions (sort=%s, timeout=%.1fs)",
		len(rooms), len(proj.Regions), proj.Settings.SortMethod, proj.Settings.TimeoutSeconds)

	start := time.Now()
	solver.PlaceRooms()
	result := solver.Result(time.Since(start))

	proj.Result = &result
	return result, nil
}

// applyOverrides copies flag values the user explicitly set onto the
// project settings.
func applyOverrides(settings *model.SolveSettings, opts *solveOpts, cmd *cobra.Command) {
	if cmd.Flags().Changed("sort") {
		settings.SortMethod = model.SortMethod(opts.sortMethod)
	}
	if cmd.Flags().Changed("step") {
		settings.StepSize = opts.stepSize
	}
	if cmd.Flags().Changed("timeout") {
		settings.TimeoutSeconds = opts.timeout
	}
	if cmd.Flags().Changed("adjacency-weight") {
		settings.AdjacencyWeight = opts.adjacencyWeight
	}
	if cmd.Flags().Changed("area-weight") {
		settings.AreaWeight = opts.areaWeight
	}
	if opts.noRotation {
		settings.AllowRotation = false
	}
}

// printSummary writes the human-readable solve outcome to stdout.
func printSummary(cmd *cobra.Command, result model.SolveResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Placed %d of %d rooms in %.2fs\n", result.PlacedCount, result.TotalCount, result.ElapsedSeconds)
	fmt.Fprintf(out, "Adjacency: %d of %d satisfied (%.0f%%)\n",
		result.Score.Satisfied, result.Score.Total, result.Score.Ratio*100)
	for _, p := range result.Placements {
		rot := ""
		if p.Rotated {
			rot = " (rotated)"
		}
		fmt.Fprintf(out, "  %-20s %6.1f x %-6.1f at (%.1f, %.1f) in %s%s\n",
			p.Name, p.Width, p.Height, p.X, p.Y, p.Region, rot)
	}
	for _, u := range result.Unplaced {
		fmt.Fprintf(out, "  %-20s %6.1f x %-6.1f NOT PLACED\n", u.Name, u.Width, u.Height)
	}
}

// sortMethodNames lists the accepted --sort values.
func sortMethodNames() []string {
	names := make([]string, len(model.SortMethods))
	for i, m := range model.SortMethods {
		names[i] = string(m)
	}
	return names
}
