package expedition

import "errors"

var (
	// ErrExhausted means the player tried to explore before the cooldown
	// elapsed. Waiting and retrying recovers.
	ErrExhausted = errors.New("explore cooldown not elapsed")
	// ErrOutOfBounds means the move sequence would step off the grid at some
	// point of the walk. A different move buffer recovers.
	ErrOutOfBounds = errors.New("walk left the grid")
)

// Outcome is the result of one fully settled walk.
type Outcome struct {
	UpdatedStats PlayerStats
	Reward       uint64
	StartTile    uint64
	EndTile      uint64
}

// SimulationService replays a packed move buffer against the grid. It is
// pure: for fixed (player, nonce, buffer, now) every start tile, intermediate
// tile and loot roll is reproducible.
type SimulationService struct{}

// Explore runs the cooldown gate and the full 100-move walk. On any failure
// the input stats are returned untouched inside the error path; the caller
// commits the outcome's stats only on success.
func (SimulationService) Explore(cfg GridConfig, stats PlayerStats, buf MoveBuffer, now uint64) (Outcome, error) {
	if stats.CooldownRemaining(cfg, now) > 0 {
		return Outcome{}, ErrExhausted
	}

	seed := StartSeed(stats.PlayerID, stats.Nonce)
	// Signed position so an underflowing "up" or "left" is an ordinary
	// negative number caught by the bounds check, not a wrapped index.
	pos := int64(seed%cfg.MapSize) + 1
	start := uint64(pos)
	row := int64(cfg.RowWidth())

	var reward uint64
	for i := 0; i < MovesPerWalk; i++ {
		switch buf.MoveAt(i) {
		case MoveUp:
			pos -= row
		case MoveLeft:
			pos--
		case MoveRight:
			pos++
		case MoveDown:
			pos += row
		}
		if pos < 1 || pos > int64(cfg.MapSize) {
			return Outcome{}, ErrOutOfBounds
		}
		event := StepEvent(now, uint64(pos), uint64(i))
		if event%99 < cfg.LootChance {
			// +1 keeps a found reward strictly positive.
			reward += event%cfg.MaxRewardPerTile + 1
		}
	}

	updated := stats
	updated.LastExploreTime = now
	updated.TotalReward += reward
	updated.Nonce++
	return Outcome{
		UpdatedStats: updated,
		Reward:       reward,
		StartTile:    start,
		EndTile:      uint64(pos),
	}, nil
}
