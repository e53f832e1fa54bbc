package model

import "fmt"

// SortMethod selects the room ordering strategy used before placement.
type SortMethod string

const (
	SortArea       SortMethod = "area"        // descending width×height
	SortAdjacency  SortMethod = "adjacency"   // descending required-neighbor count
	SortWidth      SortMethod = "width"       // descending width
	SortHeight     SortMethod = "height"      // descending height
	SortPerimeter  SortMethod = "perimeter"   // descending width+height
	SortHybrid     SortMethod = "hybrid"      // weighted degree + normalized area
	SortDegreeArea SortMethod = "degree_area" // degree first, area as tie-break
)

// SortMethods lists every recognized strategy name.
var SortMethods = []SortMethod{
	SortArea, SortAdjacency, SortWidth, SortHeight,
	SortPerimeter, SortHybrid, SortDegreeArea,
}

// Valid reports whether the sort method names a known strategy.
func (m SortMethod) Valid() bool {
	for _, known := range SortMethods {
		if m == known {
			return true
		}
	}
	return false
}

// SolveSettings holds solver configuration.
type SolveSettings struct {
	SortMethod      SortMethod `json:"sort_method" toml:"sort_method"`
	AllowRotation   bool       `json:"allow_rotation" toml:"allow_rotation"`
	StepSize        int        `json:"step_size" toml:"step_size"`               // grid/slide increment, >= 1
	AdjacencyWeight float64    `json:"adjacency_weight" toml:"adjacency_weight"` // hybrid sort only
	AreaWeight      float64    `json:"area_weight" toml:"area_weight"`           // hybrid sort only
	TimeoutSeconds  float64    `json:"timeout_seconds" toml:"timeout_seconds"`   // 0 disables backtracking
}

// DefaultSettings returns the default solver configuration.
func DefaultSettings() SolveSettings {
	return SolveSettings{
		SortMethod:      SortHybrid,
		AllowRotation:   true,
		StepSize:        1,
		AdjacencyWeight: 0.7,
		AreaWeight:      0.3,
		TimeoutSeconds:  30,
	}
}

// Validate rejects malformed settings before any placement work is done.
func (s SolveSettings) Validate() error {
	if !s.SortMethod.Valid() {
		return fmt.Errorf("unknown sort method %q (must be one of %v)", s.SortMethod, SortMethods)
	}
	if s.StepSize < 1 {
		return fmt.Errorf("step size must be >= 1, got %d", s.StepSize)
	}
	if s.AdjacencyWeight < 0 || s.AdjacencyWeight > 1 {
		return fmt.Errorf("adjacency weight must be in [0,1], got %g", s.AdjacencyWeight)
	}
	if s.AreaWeight < 0 || s.AreaWeight > 1 {
		return fmt.Errorf("area weight must be in [0,1], got %g", s.AreaWeight)
	}
	if s.AdjacencyWeight+s.AreaWeight > 1 {
		return fmt.Errorf("adjacency and area weights must sum to at most 1, got %g", s.AdjacencyWeight+s.AreaWeight)
	}
	if s.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout must be >= 0 seconds, got %g", s.TimeoutSeconds)
	}
	return nil
}
