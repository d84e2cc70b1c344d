package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Load reads a JSON-with-comments config file at path, strips the
// comments, and unmarshals it over a Config carrying Default's
// baseline, so a config file only needs to specify the fields it wants
// to override.
func Load(path string, opts ...Option) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default(opts...)
	stripped := jsonc.ToJSON(raw)
	if err := json.Unmarshal(stripped, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
