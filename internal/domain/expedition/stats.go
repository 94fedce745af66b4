package expedition

// PlayerStats is the lifetime explore record for one player. Created lazily
// on the first explore and mutated in place afterwards, never deleted.
type PlayerStats struct {
	PlayerID string `json:"player_id"`
	// LastExploreTime is the unix time of the most recent successful explore,
	// zero until the first success.
	LastExploreTime uint64 `json:"last_explore_time"`
	// TotalReward accumulates loot across every successful explore.
	TotalReward uint64 `json:"total_reward"`
	// Nonce counts successful explores and diversifies the start seed so
	// repeated walks begin on different tiles.
	Nonce   uint64 `json:"nonce"`
	Version int64  `json:"version"`
}

// CooldownRemaining reports how many seconds of the cooldown are still left
// at the given time. The first explore is never on cooldown.
func (s PlayerStats) CooldownRemaining(cfg GridConfig, now uint64) uint64 {
	if s.LastExploreTime == 0 {
		return 0
	}
	if now < s.LastExploreTime {
		return cfg.CooldownSeconds
	}
	elapsed := now - s.LastExploreTime
	if elapsed >= cfg.CooldownSeconds {
		return 0
	}
	return cfg.CooldownSeconds - elapsed
}
