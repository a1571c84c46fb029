package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "fruits.yaml"

// Load loads the fruit game configuration.
// Search order: customPath -> ~/.arcade/configs/fruits.yaml ->
// ./configs/fruits.yaml -> embedded default -> DefaultFruitsConfig.
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. A custom path that cannot be read or parsed is an error;
// broken files in the implicit locations are skipped.
func Load(customPath string) (FruitsConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil {
			if err := cfg.Validate(); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := decode(defaultFruitsYAML)
	if err != nil {
		return DefaultFruitsConfig(), nil
	}
	return cfg, nil
}

// Source returns the path Load would read for customPath, or "embedded".
func Source(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return "embedded"
}

func loadFile(path string) (FruitsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FruitsConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(data []byte) (FruitsConfig, error) {
	cfg := DefaultFruitsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultFruitsConfig(), err
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(ConfigFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Marshal renders a configuration as YAML.
func Marshal(cfg FruitsConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
