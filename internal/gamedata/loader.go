package gamedata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for data files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported data format")

// Load reads and unmarshals a JSON or YAML file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	return Decode[T](filename, content)
}

// Decode unmarshals content using the format implied by filename's extension.
func Decode[T any](filename string, content []byte) (T, error) {
	var result T

	switch filepath.Ext(filename) {
	case ".json":
		if err := json.Unmarshal(content, &result); err != nil {
			return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &result); err != nil {
			return result, fmt.Errorf("failed to parse YAML from %s: %w", filename, err)
		}
	default:
		return result, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}

	return result, nil
}

// LoadLevelFile reads a level definition from disk.
func LoadLevelFile(filename string) (LevelDef, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return LevelDef{}, fmt.Errorf("failed to read level file: %w", err)
	}
	return Decode[LevelDef](filename, content)
}
