package expedition

import "time"

const EventExploreSettled = "explore_settled"

// DomainEvent is one journal entry for a player. Payload keys are small JSON
// scalars so rows survive marshalling through any store.
type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// NewExploreSettledEvent records one successful walk.
func NewExploreSettledEvent(playerID string, out Outcome, occurredAt time.Time) DomainEvent {
	return DomainEvent{
		Type:       EventExploreSettled,
		OccurredAt: occurredAt,
		Payload: map[string]any{
			"player_id":  playerID,
			"reward":     out.Reward,
			"nonce":      out.UpdatedStats.Nonce,
			"start_tile": out.StartTile,
			"end_tile":   out.EndTile,
		},
	}
}
