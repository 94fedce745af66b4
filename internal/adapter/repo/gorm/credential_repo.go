package gormrepo

import (
	"context"
	"errors"

	"lootgrid/internal/adapter/repo/gorm/model"
	"lootgrid/internal/app/ports"

	"gorm.io/gorm"
)

type PlayerCredentialRepo struct {
	db *gorm.DB
}

func NewPlayerCredentialRepo(db *gorm.DB) PlayerCredentialRepo {
	return PlayerCredentialRepo{db: db}
}

func (r PlayerCredentialRepo) Create(ctx context.Context, credential ports.PlayerCredentialRecord) error {
	m := model.PlayerCredential{
		PlayerID:  credential.PlayerID,
		KeySalt:   credential.KeySalt,
		KeyHash:   credential.KeyHash,
		Status:    credential.Status,
		CreatedAt: credential.CreatedAt,
	}
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r PlayerCredentialRepo) GetByPlayerID(ctx context.Context, playerID string) (ports.PlayerCredentialRecord, error) {
	var m model.PlayerCredential
	if err := getDBFromCtx(ctx, r.db).Where("player_id = ?", playerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.PlayerCredentialRecord{}, ports.ErrNotFound
		}
		return ports.PlayerCredentialRecord{}, err
	}
	return ports.PlayerCredentialRecord{
		PlayerID:  m.PlayerID,
		KeySalt:   m.KeySalt,
		KeyHash:   m.KeyHash,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}, nil
}
