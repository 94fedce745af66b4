package explore

import (
	"context"
	"errors"
	"strings"
	"time"

	"lootgrid/internal/app/ports"
	"lootgrid/internal/domain/expedition"
)

var ErrInvalidRequest = errors.New("invalid explore request")

type UseCase struct {
	TxManager ports.TxManager
	StatsRepo ports.PlayerStatsRepository
	EventRepo ports.EventRepository
	Metrics   ports.ExploreMetrics
	Grid      expedition.GridConfig
	Simulate  expedition.SimulationService
	Now       func() time.Time
}

// Execute runs one explore call end to end: load (or lazily create) the
// player's stats, replay the walk, and commit stats plus a journal entry in
// one transaction. Any failure leaves the player's stats untouched.
func (u UseCase) Execute(ctx context.Context, req Request) (Receipt, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" {
		return Receipt{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	var out Receipt
	err := u.TxManager.RunInPlayerTx(ctx, req.PlayerID, func(txCtx context.Context) error {
		stats, err := u.StatsRepo.GetByPlayerID(txCtx, req.PlayerID)
		if errors.Is(err, ports.ErrNotFound) {
			stats = expedition.PlayerStats{PlayerID: req.PlayerID}
		} else if err != nil {
			return err
		}

		result, err := u.Simulate.Explore(u.Grid, stats, req.MoveBuffer, uint64(now.Unix()))
		if err != nil {
			return err
		}

		updated := result.UpdatedStats
		updated.Version = stats.Version + 1
		if err := u.StatsRepo.SaveWithVersion(txCtx, updated, stats.Version); err != nil {
			return err
		}

		if u.EventRepo != nil {
			evt := expedition.NewExploreSettledEvent(req.PlayerID, result, now)
			if err := u.EventRepo.Append(txCtx, req.PlayerID, []expedition.DomainEvent{evt}); err != nil {
				return err
			}
		}

		out = Receipt{
			LastExploreTime: updated.LastExploreTime,
			Reward:          result.Reward,
			Nonce:           updated.Nonce,
			TotalReward:     updated.TotalReward,
			StartTile:       result.StartTile,
			EndTile:         result.EndTile,
		}
		return nil
	})
	if err != nil {
		u.recordFailure(err)
		return Receipt{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(out.Reward)
	}
	return out, nil
}

func (u UseCase) recordFailure(err error) {
	if u.Metrics == nil {
		return
	}
	switch {
	case errors.Is(err, expedition.ErrExhausted):
		u.Metrics.RecordExhausted()
	case errors.Is(err, expedition.ErrOutOfBounds):
		u.Metrics.RecordOutOfBounds()
	default:
		u.Metrics.RecordFailure()
	}
}
