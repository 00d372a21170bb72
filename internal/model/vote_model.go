package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One row per (user, location) pair; the unique index backs the ledger
// invariant. Flipping a vote updates the row in place.
type VoteModel struct {
	ID         string `gorm:"type:uuid;primary_key"`
	UserID     string `gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_location"`
	LocationID string `gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_location;index"`
	Direction  string `gorm:"type:varchar(10);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (VoteModel) TableName() string {
	return "votes"
}

func (v *VoteModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
