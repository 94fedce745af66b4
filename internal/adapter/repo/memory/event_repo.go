package memory

import (
	"context"
	"sort"

	"lootgrid/internal/app/ports"
	"lootgrid/internal/domain/expedition"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, playerID string, events []expedition.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events[playerID] = append(r.store.events[playerID], events...)
	return nil
}

func (r EventRepo) ListByPlayerID(_ context.Context, playerID string, limit int) ([]expedition.DomainEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	stored := r.store.events[playerID]
	if len(stored) == 0 {
		return nil, ports.ErrNotFound
	}
	out := make([]expedition.DomainEvent, len(stored))
	copy(out, stored)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
