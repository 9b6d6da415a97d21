package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-caves/internal/cave"
)

//go:embed defaults/cave.yaml
var defaultCaveYAML []byte

// DefaultCaveConfig returns the reference generator configuration.
func DefaultCaveConfig() CaveConfig {
	return FromParams(cave.DefaultParams())
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCaveYAML
}
