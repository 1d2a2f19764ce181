package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "cavern.yaml"

// SourceEmbedded is the source reported when no config file was found.
const SourceEmbedded = "embedded"

// LoadCavern loads the cave configuration. Files are decoded over the
// defaults, so a file only needs the keys it changes.
// Search order: customPath -> ~/.cavern/configs/cavern.yaml -> ./configs/cavern.yaml -> embedded default
func LoadCavern(customPath string) (CavernConfig, error) {
	cfg, _, err := Resolve(customPath)
	return cfg, err
}

// Resolve is LoadCavern that also reports where the configuration came
// from: a file path or SourceEmbedded.
func Resolve(customPath string) (CavernConfig, string, error) {
	// A custom path must load; anything else falls through
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CavernConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return CavernConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := parse(defaultCavernYAML)
	if err != nil {
		return DefaultCavernConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// searchPaths lists the config files tried when no path is given.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(fileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", fileName))
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte) (CavernConfig, error) {
	cfg := DefaultCavernConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cavern", "configs", filename)
}

// ApplyCavernPreset modifies the config based on a difficulty preset.
func ApplyCavernPreset(cfg *CavernConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the cave's hostility
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Count = 25
		cfg.Player.ContactDamage = 0.1
		cfg.Player.AcidDamage = 0.1
	case DifficultyHard:
		cfg.Enemies.Count = 100
		cfg.Player.ContactDamage = 0.4
		cfg.Player.AcidDamage = 0.3
	}
}
