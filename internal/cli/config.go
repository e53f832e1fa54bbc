package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/planwright/floorplan/internal/model"
)

// configFileName is the TOML file holding user-wide solver defaults,
// located under ~/.floorplan/.
const configFileName = "config.toml"

// configPath returns the path of the defaults file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".floorplan", configFileName), nil
}

// loadDefaultSettings returns the built-in solver defaults overlaid with the
// user's config file, if one exists. A malformed file is an error rather
// than silently ignored.
func loadDefaultSettings() (model.SolveSettings, error) {
	settings := model.DefaultSettings()

	path, err := configPath()
	if err != nil {
		return settings, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}
	if _, err := toml.DecodeFile(path, &settings); err != nil {
		return settings, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return settings, nil
}

// newConfigCmd creates the config command with init and show subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and initialize solver defaults",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in defaults to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}

			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := toml.NewEncoder(f).Encode(model.DefaultSettings()); err != nil {
				return fmt.Errorf("cannot write config: %w", err)
			}
			loggerFromContext(cmd.Context()).Infof("Wrote defaults to %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective solver defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadDefaultSettings()
			if err != nil {
				return err
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(settings)
		},
	}
}
