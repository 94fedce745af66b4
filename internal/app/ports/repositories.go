package ports

import (
	"context"
	"time"

	"lootgrid/internal/domain/expedition"
)

type PlayerStatsRepository interface {
	GetByPlayerID(ctx context.Context, playerID string) (expedition.PlayerStats, error)
	// SaveWithVersion creates the row when expectedVersion is 0, otherwise
	// performs a versioned update; a mismatch surfaces as ErrConflict.
	SaveWithVersion(ctx context.Context, stats expedition.PlayerStats, expectedVersion int64) error
}

type EventRepository interface {
	Append(ctx context.Context, playerID string, events []expedition.DomainEvent) error
	ListByPlayerID(ctx context.Context, playerID string, limit int) ([]expedition.DomainEvent, error)
}

type PlayerCredentialRecord struct {
	PlayerID  string
	KeySalt   []byte
	KeyHash   []byte
	Status    string
	CreatedAt time.Time
}

type PlayerCredentialRepository interface {
	Create(ctx context.Context, credential PlayerCredentialRecord) error
	GetByPlayerID(ctx context.Context, playerID string) (PlayerCredentialRecord, error)
}
