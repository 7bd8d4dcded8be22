package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/reel/internal/model"
)

// Seed files are read once at startup and never written back.

//go:embed default.yaml
var defaultSeed []byte

// Default returns the built-in catalog.
func Default() ([]model.Item, error) {
	var items []model.Item
	if err := yaml.Unmarshal(defaultSeed, &items); err != nil {
		return nil, fmt.Errorf("default seed: %w", err)
	}
	return items, nil
}

// Load reads a catalog from path. An empty path yields the built-in catalog.
// The format follows the extension: .json, or .yaml/.yml.
func Load(path string) ([]model.Item, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var items []model.Item
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &items); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		return nil, fmt.Errorf("seed %s: unsupported format %q", path, ext)
	}
	return items, nil
}
