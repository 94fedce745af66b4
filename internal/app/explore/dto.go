package explore

import "lootgrid/internal/domain/expedition"

type Request struct {
	PlayerID   string
	MoveBuffer expedition.MoveBuffer
}

// Receipt mirrors the stats committed by a successful walk.
type Receipt struct {
	LastExploreTime uint64 `json:"last_explore_time"`
	Reward          uint64 `json:"reward"`
	Nonce           uint64 `json:"nonce"`
	TotalReward     uint64 `json:"total_reward"`
	StartTile       uint64 `json:"start_tile"`
	EndTile         uint64 `json:"end_tile"`
}
