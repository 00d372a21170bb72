package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BadgeModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_badges_user_badge"`
	BadgeID   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_badges_user_badge"`
	GrantedAt time.Time `gorm:"autoCreateTime"`
}

func (BadgeModel) TableName() string {
	return "user_badges"
}

func (b *BadgeModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
