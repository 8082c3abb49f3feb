package sim

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadLevel reads a level from a JSON file and validates it.
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("level file %s: %w", path, err)
	}
	return lvl, nil
}

// ParseLevel decodes and validates level JSON. Missing start or ceiling fields
// fall back to the built-in level's values.
func ParseLevel(data []byte) (*Level, error) {
	def := DefaultLevel()
	lvl := Level{
		Start:   def.Start,
		Ceiling: def.Ceiling,
	}
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}
