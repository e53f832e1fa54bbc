// Package project handles persistence of floor plan projects as JSON files.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/planwright/floorplan/internal/model"
)

// Save writes a project to a JSON file, creating parent directories as
// needed. The project is validated first so a broken file never reaches
// disk.
func Save(path string, proj model.Project) error {
	if err := proj.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid project: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := BackupExisting(path); err != nil {
		return err
	}
	data, err := json.MarshalIndent(proj, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a project from a JSON file. A missing file is an error: unlike
// settings stores, a project has no sensible empty default.
func Load(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, err
	}
	var proj model.Project
	if err := json.Unmarshal(data, &proj); err != nil {
		return model.Project{}, fmt.Errorf("cannot parse project file: %w", err)
	}
	if err := proj.Validate(); err != nil {
		return model.Project{}, fmt.Errorf("project file is invalid: %w", err)
	}
	return proj, nil
}
