package harness

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario is a declarative play session: a level, a mode, a sequence
// of steps, and expectations about the final state. Scenarios live in
// YAML files next to the level documents they exercise.
type Scenario struct {
	// Name uniquely identifies this scenario; golden files share it.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description,omitempty"`

	// Level is the level document path, relative to the scenario file.
	Level string `yaml:"level"`

	// Mode is the play mode id: classic, compression or zen.
	Mode string `yaml:"mode"`

	// Steps is the action sequence, executed in order.
	Steps []Step `yaml:"steps"`

	// Expect is validated against the final state after all steps.
	Expect Expect `yaml:"expect"`

	// dir is the scenario file's directory, for resolving Level.
	dir string
}

// Step is one action. Exactly one field must be set.
type Step struct {
	Tap     *TapStep `yaml:"tap,omitempty"`
	Advance bool     `yaml:"advance,omitempty"`
	Undo    bool     `yaml:"undo,omitempty"`
	Restart bool     `yaml:"restart,omitempty"`
}

// TapStep names the tapped cell.
type TapStep struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Expect holds final-state assertions. Pointer fields are only checked
// when present in the YAML.
type Expect struct {
	Status     string `yaml:"status,omitempty"`
	LossReason string `yaml:"loss_reason,omitempty"`
	Moves      *int   `yaml:"moves,omitempty"`
	Connected  *bool  `yaml:"connected,omitempty"`
	WallOffset *int   `yaml:"wall_offset,omitempty"`
	GridSize   *int   `yaml:"grid_size,omitempty"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	s.dir = filepath.Dir(path)

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Level == "" {
		return fmt.Errorf("level is required")
	}
	if s.Mode == "" {
		return fmt.Errorf("mode is required")
	}
	for i, step := range s.Steps {
		set := 0
		if step.Tap != nil {
			set++
		}
		if step.Advance {
			set++
		}
		if step.Undo {
			set++
		}
		if step.Restart {
			set++
		}
		if set != 1 {
			return fmt.Errorf("step %d: exactly one of tap/advance/undo/restart must be set", i+1)
		}
	}
	return nil
}

// LevelPath resolves the level document path.
func (s *Scenario) LevelPath() string {
	return filepath.Join(s.dir, s.Level)
}
