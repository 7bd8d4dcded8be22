package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/reel/internal/catalog"
	"github.com/Makepad-fr/reel/internal/ui"
)

// Config holds the runtime settings for reel.
type Config struct {
	Theme    string `yaml:"theme"`
	SeedPath string `yaml:"seed"`
	LogPath  string `yaml:"log"`
	// Category is the filter applied when the browser opens.
	Category string `yaml:"category"`
}

func Defaults() Config {
	return Config{
		Theme:    "classic",
		Category: catalog.AllCategories,
	}
}

// Load layers defaults, the YAML file at path (if any) and REEL_* environment
// variables. A .env file in the working directory is read first when present.
// The result is not validated: callers apply their own overrides and then
// call Validate.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := Defaults()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Theme = getEnv("REEL_THEME", cfg.Theme)
	cfg.SeedPath = getEnv("REEL_SEED", cfg.SeedPath)
	cfg.LogPath = getEnv("REEL_LOG", cfg.LogPath)
	cfg.Category = getEnv("REEL_CATEGORY", cfg.Category)
	return &cfg, nil
}

func (c *Config) Validate() error {
	if !ui.ValidTheme(c.Theme) {
		return fmt.Errorf("unknown theme %q (want one of %s)", c.Theme, strings.Join(ui.ThemeNames, ", "))
	}
	if strings.TrimSpace(c.Category) == "" {
		return fmt.Errorf("category must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
