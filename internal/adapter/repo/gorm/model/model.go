package model

import "time"

type PlayerStats struct {
	PlayerID        string `gorm:"primaryKey;column:player_id"`
	LastExploreTime int64  `gorm:"column:last_explore_time"`
	TotalReward     int64  `gorm:"column:total_reward"`
	Nonce           int64  `gorm:"column:nonce"`
	Version         int64  `gorm:"column:version"`
}

func (PlayerStats) TableName() string { return "player_stats" }

type ExploreEvent struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	PlayerID   string    `gorm:"column:player_id;index"`
	Type       string    `gorm:"column:type"`
	OccurredAt time.Time `gorm:"column:occurred_at;index"`
	Payload    []byte    `gorm:"column:payload;type:jsonb"`
}

func (ExploreEvent) TableName() string { return "explore_events" }

type PlayerCredential struct {
	PlayerID  string    `gorm:"primaryKey;column:player_id"`
	KeySalt   []byte    `gorm:"column:key_salt"`
	KeyHash   []byte    `gorm:"column:key_hash"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (PlayerCredential) TableName() string { return "player_credentials" }
