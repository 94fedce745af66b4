package status

import (
	"context"
	"errors"
	"strings"
	"time"

	"lootgrid/internal/app/ports"
	"lootgrid/internal/domain/expedition"
)

var ErrInvalidRequest = errors.New("invalid status request")

type Request struct {
	PlayerID string
}

type Response struct {
	Stats             expedition.PlayerStats `json:"stats"`
	CooldownRemaining uint64                 `json:"cooldown_remaining_seconds"`
}

type UseCase struct {
	StatsRepo ports.PlayerStatsRepository
	Grid      expedition.GridConfig
	Now       func() time.Time
}

// Execute reports a player's lifetime stats. Players that have never explored
// read back as all-zero stats rather than an error, matching the lazily
// created registry entry they would get on their first walk.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" {
		return Response{}, ErrInvalidRequest
	}

	stats, err := u.StatsRepo.GetByPlayerID(ctx, req.PlayerID)
	if errors.Is(err, ports.ErrNotFound) {
		stats = expedition.PlayerStats{PlayerID: req.PlayerID}
	} else if err != nil {
		return Response{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return Response{
		Stats:             stats,
		CooldownRemaining: stats.CooldownRemaining(u.Grid, uint64(nowFn().Unix())),
	}, nil
}
