package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "cave.yaml"

// Load returns the cave configuration; missing fields keep their defaults.
// An explicit customPath must exist and parse. Otherwise the first readable
// file from SearchPaths wins, and the embedded default is the last resort.
func Load(customPath string) (CaveConfig, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	for _, path := range SearchPaths() {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}
	return Parse(defaultCaveYAML)
}

// SearchPaths lists the implicit config locations, highest priority first:
// ~/.caves/configs/cave.yaml, then ./configs/cave.yaml.
func SearchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".caves", "configs", ConfigFile))
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

func loadFile(path string) (CaveConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultCaveConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return DefaultCaveConfig(), fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration. Unknown keys are
// rejected so a misspelled option does not silently fall back to a default.
func Parse(data []byte) (CaveConfig, error) {
	cfg := DefaultCaveConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return DefaultCaveConfig(), err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg CaveConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
