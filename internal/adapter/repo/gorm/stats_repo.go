package gormrepo

import (
	"context"
	"errors"

	"lootgrid/internal/adapter/repo/gorm/model"
	"lootgrid/internal/app/ports"
	"lootgrid/internal/domain/expedition"

	"gorm.io/gorm"
)

type PlayerStatsRepo struct {
	db *gorm.DB
}

func NewPlayerStatsRepo(db *gorm.DB) PlayerStatsRepo {
	return PlayerStatsRepo{db: db}
}

func (r PlayerStatsRepo) GetByPlayerID(ctx context.Context, playerID string) (expedition.PlayerStats, error) {
	var m model.PlayerStats
	if err := getDBFromCtx(ctx, r.db).Where("player_id = ?", playerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return expedition.PlayerStats{}, ports.ErrNotFound
		}
		return expedition.PlayerStats{}, err
	}
	return expedition.PlayerStats{
		PlayerID:        m.PlayerID,
		LastExploreTime: uint64(m.LastExploreTime),
		TotalReward:     uint64(m.TotalReward),
		Nonce:           uint64(m.Nonce),
		Version:         m.Version,
	}, nil
}

func (r PlayerStatsRepo) SaveWithVersion(ctx context.Context, stats expedition.PlayerStats, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	if expectedVersion == 0 {
		m := model.PlayerStats{
			PlayerID:        stats.PlayerID,
			LastExploreTime: int64(stats.LastExploreTime),
			TotalReward:     int64(stats.TotalReward),
			Nonce:           int64(stats.Nonce),
			Version:         stats.Version,
		}
		if err := db.Create(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ports.ErrConflict
			}
			return err
		}
		return nil
	}

	updates := map[string]any{
		"last_explore_time": int64(stats.LastExploreTime),
		"total_reward":      int64(stats.TotalReward),
		"nonce":             int64(stats.Nonce),
		"version":           stats.Version,
	}
	res := db.Model(&model.PlayerStats{}).
		Where("player_id = ? AND version = ?", stats.PlayerID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
