package gormrepo

import (
	"context"
	"encoding/json"

	"lootgrid/internal/adapter/repo/gorm/model"
	"lootgrid/internal/app/ports"
	"lootgrid/internal/domain/expedition"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, playerID string, events []expedition.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.ExploreEvent, 0, len(events))
	for _, e := range events {
		b, _ := json.Marshal(e.Payload)
		rows = append(rows, model.ExploreEvent{
			PlayerID:   playerID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r EventRepo) ListByPlayerID(ctx context.Context, playerID string, limit int) ([]expedition.DomainEvent, error) {
	rows := []model.ExploreEvent{}
	query := getDBFromCtx(ctx, r.db).
		Where(&model.ExploreEvent{PlayerID: playerID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "occurred_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]expedition.DomainEvent, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, expedition.DomainEvent{
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
