package model

import (
	"fmt"

	"github.com/google/uuid"
)

// RoomSpec describes a room as supplied by the caller, before placement.
type RoomSpec struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Validate checks the caller-supplied invariants.
func (s RoomSpec) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("room %q: id must be a positive integer, got %d", s.Name, s.ID)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("room %d (%s): dimensions must be positive, got %gx%g", s.ID, s.Name, s.Width, s.Height)
	}
	return nil
}

// Project ties everything together for save/load: the rooms and regions to
// lay out, the adjacency requirements, the solver settings, and optionally
// the last result.
type Project struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Rooms     []RoomSpec    `json:"rooms"`
	Regions   []Region      `json:"regions"`
	Adjacency AdjacencyMap  `json:"adjacency,omitempty"`
	Settings  SolveSettings `json:"settings"`
	Result    *SolveResult  `json:"result,omitempty"`
}

// NewProject creates an empty project with default settings.
func NewProject(name string) Project {
	if name == "" {
		name = "Untitled"
	}
	return Project{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Rooms:    []RoomSpec{},
		Regions:  []Region{},
		Settings: DefaultSettings(),
	}
}

// Validate checks all room specs and regions, and that room ids are unique.
func (p Project) Validate() error {
	seen := make(map[int]bool, len(p.Rooms))
	for _, r := range p.Rooms {
		if err := r.Validate(); err != nil {
			return err
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate room id %d", r.ID)
		}
		seen[r.ID] = true
	}
	for _, g := range p.Regions {
		if _, err := NewRegion(g.X1, g.Y1, g.X2, g.Y2, g.Name); err != nil {
			return err
		}
	}
	return p.Settings.Validate()
}

// BuildRooms materializes fresh unplaced Room instances from the specs.
func (p Project) BuildRooms() []*Room {
	rooms := make([]*Room, 0, len(p.Rooms))
	for _, s := range p.Rooms {
		rooms = append(rooms, NewRoom(s.ID, s.Name, s.Width, s.Height))
	}
	return rooms
}

// Drawing builds the plan drawing for the project's saved result.
func (p Project) Drawing() (Drawing, error) {
	if p.Result == nil {
		return Drawing{}, fmt.Errorf("project %q has no solve result", p.Name)
	}
	return BuildDrawing(p.Regions, p.Result.Placements, p.Adjacency), nil
}
