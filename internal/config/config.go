package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"lootgrid/internal/domain/expedition"
)

// Tuning is the on-disk grid configuration. Absent fields keep the defaults
// of a 50×50 grid with a weekly cooldown.
type Tuning struct {
	MapSize          *uint64 `yaml:"map_size"`
	MaxRewardPerTile *uint64 `yaml:"max_reward_per_tile"`
	LootChance       *uint64 `yaml:"loot_chance"`
	CooldownSeconds  *uint64 `yaml:"cooldown_seconds"`
}

// LoadGrid reads the tuning file and folds it over the defaults. An empty
// path means defaults only.
func LoadGrid(path string) (expedition.GridConfig, error) {
	cfg := expedition.DefaultGridConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var t Tuning
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return cfg, fmt.Errorf("tuning.yaml: %w", err)
	}

	if t.MapSize != nil {
		cfg.MapSize = *t.MapSize
	}
	if t.MaxRewardPerTile != nil {
		cfg.MaxRewardPerTile = *t.MaxRewardPerTile
	}
	if t.LootChance != nil {
		cfg.LootChance = *t.LootChance
	}
	if t.CooldownSeconds != nil {
		cfg.CooldownSeconds = *t.CooldownSeconds
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("tuning.yaml: %w", err)
	}
	return cfg, nil
}
