package memory

import (
	"context"

	"lootgrid/internal/app/ports"
	"lootgrid/internal/domain/expedition"
)

type PlayerStatsRepo struct {
	store *Store
}

func NewPlayerStatsRepo(store *Store) PlayerStatsRepo {
	return PlayerStatsRepo{store: store}
}

func (r PlayerStatsRepo) GetByPlayerID(_ context.Context, playerID string) (expedition.PlayerStats, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	stats, ok := r.store.stats[playerID]
	if !ok {
		return expedition.PlayerStats{}, ports.ErrNotFound
	}
	return stats, nil
}

func (r PlayerStatsRepo) SaveWithVersion(_ context.Context, stats expedition.PlayerStats, expectedVersion int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.stats[stats.PlayerID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.stats[stats.PlayerID] = stats
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.stats[stats.PlayerID] = stats
	return nil
}
