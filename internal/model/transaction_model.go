package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionModel struct {
	ID            string `gorm:"type:uuid;primary_key"`
	UserID        string `gorm:"type:uuid;not null;index"`
	LocationID    string `gorm:"type:uuid;index;default:null"`
	Type          string `gorm:"type:varchar(20);not null"`
	Amount        int    `gorm:"not null"`
	BalanceBefore int
	BalanceAfter  int
	CreatedAt     time.Time
}

func (TransactionModel) TableName() string {
	return "credit_transactions"
}

func (t *TransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
