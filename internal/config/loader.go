package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the tuning file name looked up in the config directories.
const ConfigFile = "fruitslice.yaml"

// LoadSlice reads the tuning file. An explicit customPath must load; otherwise
// ~/.arcade/configs and ./configs are tried in turn before the embedded
// default. Keys missing from a file keep their built-in values.
func LoadSlice(customPath string) (SliceConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSliceConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSlice(data)
		if err != nil {
			return DefaultSliceConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, candidate := range searchPaths() {
		data, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		// A broken file falls through to the next location.
		if cfg, err := parseSlice(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseSlice(defaultSliceYAML); err == nil {
		return cfg, nil
	}
	return DefaultSliceConfig(), nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(ConfigFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

func parseSlice(data []byte) (SliceConfig, error) {
	cfg := DefaultSliceConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if len(cfg.Fruits) == 0 {
		cfg.Fruits = DefaultSliceConfig().Fruits
	}
	if cfg.Field.Width <= 0 || cfg.Field.Height <= 0 {
		return cfg, fmt.Errorf("field must have positive size, got %vx%v", cfg.Field.Width, cfg.Field.Height)
	}
	return cfg, nil
}

// userConfigPath is empty when the home directory cannot be resolved.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplySlicePreset sets the ramp's starting level and scales bomb odds.
// The fixed preset turns the ramp off.
func ApplySlicePreset(cfg *SliceConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = preset != DifficultyFixed
	if cfg.Difficulty.Enabled {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Spawner.HazardChance *= 0.5
		cfg.Spawner.MixedHazardChance *= 0.5
	case DifficultyHard:
		cfg.Spawner.HazardChance *= 1.25
	}
}

// ApplyChallengeMode makes tosses denser and more dangerous.
func ApplyChallengeMode(cfg *SliceConfig) {
	ApplySlicePreset(cfg, DifficultyHard)
	cfg.Spawner.IntervalTicks = cfg.Spawner.IntervalTicks * 3 / 4
	if cfg.Spawner.MinIntervalTicks > cfg.Spawner.IntervalTicks {
		cfg.Spawner.MinIntervalTicks = cfg.Spawner.IntervalTicks
	}
	cfg.Spawner.GroupChance = clamp01(cfg.Spawner.GroupChance+0.2)
	cfg.Spawner.MixedHazardChance = clamp01(cfg.Spawner.MixedHazardChance*1.5)
}
