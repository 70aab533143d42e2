package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the configuration compiled into the binary.
const SourceEmbedded = "embedded defaults"

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/floppy.yaml"

// Load loads and validates the game configuration.
// Search order: customPath -> ~/.floppy/config.yaml -> ./configs/floppy.yaml -> embedded default.
// Values missing from a file keep their defaults. The returned source names
// the file that was used.
func Load(customPath string) (GameConfig, string, error) {
	cfg, source, err := load(customPath)
	if err != nil {
		return cfg, source, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, source, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, source, nil
}

func load(customPath string) (GameConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		return cfg, customPath, err
	}
	return loadFirst(searchPaths())
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, localConfigPath)
}

// loadFirst loads the first of paths that exists. Only a missing file
// falls through to the next location; a file that exists but cannot be
// read or parsed is an error.
func loadFirst(paths []string) (GameConfig, string, error) {
	for _, path := range paths {
		cfg, err := LoadFile(path)
		if err == nil {
			return cfg, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return cfg, path, err
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// LoadFile reads a single YAML file on top of the defaults. It does not validate.
func LoadFile(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultGameConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultGameConfig.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultGameConfig(), err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".floppy", filename)
}
