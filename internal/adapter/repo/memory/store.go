package memory

import (
	"sync"

	"lootgrid/internal/app/ports"
	"lootgrid/internal/domain/expedition"
)

// Store backs the repositories when no database is configured. Mutations go
// through the per-player lock held by TxManager; reads outside a tx take the
// store lock.
type Store struct {
	mu          sync.RWMutex
	stats       map[string]expedition.PlayerStats
	events      map[string][]expedition.DomainEvent
	credentials map[string]ports.PlayerCredentialRecord

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewStore() *Store {
	return &Store{
		stats:       make(map[string]expedition.PlayerStats),
		events:      make(map[string][]expedition.DomainEvent),
		credentials: make(map[string]ports.PlayerCredentialRecord),
		locks:       make(map[string]*sync.Mutex),
	}
}

// playerLock returns the mutex serializing all transactions for one player.
// Locks are never evicted; one exists per player ever seen, like the stats
// rows themselves.
func (s *Store) playerLock(playerID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l, ok := s.locks[playerID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[playerID] = l
	}
	return l
}

func (s *Store) SeedStats(stats expedition.PlayerStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats[stats.PlayerID] = stats
}
