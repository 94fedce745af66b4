package expedition

import "fmt"

// GridConfig is the process-wide tuning for the explore grid. It is read-only
// during a walk.
type GridConfig struct {
	// MapSize is the highest valid linear tile index on an N×N grid,
	// i.e. N*N-1 with tiles addressed 1..MapSize.
	MapSize uint64
	// MaxRewardPerTile caps the units awarded by a single loot roll.
	MaxRewardPerTile uint64
	// LootChance is the per-step loot probability out of 99: a roll in
	// [0, LootChance) finds loot.
	LootChance uint64
	// CooldownSeconds is the minimum gap between two successful explores by
	// the same player. Zero disables the gate.
	CooldownSeconds uint64
}

// DefaultGridConfig is a 50×50 grid with a weekly cooldown.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		MapSize:          2499,
		MaxRewardPerTile: 7,
		LootChance:       50,
		CooldownSeconds:  7 * 86400,
	}
}

func (c GridConfig) Validate() error {
	w := isqrt(c.MapSize + 1)
	if w < 2 || w*w != c.MapSize+1 {
		return fmt.Errorf("map_size must be k*k-1 for some k >= 2, got %d", c.MapSize)
	}
	if c.MaxRewardPerTile < 1 {
		return fmt.Errorf("max_reward_per_tile must be >= 1, got %d", c.MaxRewardPerTile)
	}
	if c.LootChance > 99 {
		return fmt.Errorf("loot_chance must be in [0,99], got %d", c.LootChance)
	}
	return nil
}

// RowWidth is the side length of the grid, used as the stride for vertical
// moves. Only meaningful for a validated config.
func (c GridConfig) RowWidth() uint64 {
	return isqrt(c.MapSize + 1)
}

func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
