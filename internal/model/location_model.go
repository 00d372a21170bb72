package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LocationModel struct {
	ID          string     `gorm:"type:uuid;primary_key"`
	CreatorID   string     `gorm:"type:uuid;not null;index"`
	Longitude   float64    `gorm:"not null"`
	Latitude    float64    `gorm:"not null"`
	Text        string     `gorm:"type:text"`
	Anonymous   bool       `gorm:"default:false"`
	Upvotes     int        `gorm:"default:0"`
	Downvotes   int        `gorm:"default:0"`
	TotalPoints int        `gorm:"default:0"`
	Status      string     `gorm:"type:varchar(20);default:'normal';index"`
	Credits     int        `gorm:"default:0"`
	AutoDelete  bool       `gorm:"default:false"`
	DeleteAt    *time.Time `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Media []MediaModel `gorm:"foreignKey:LocationID"`
}

func (LocationModel) TableName() string {
	return "locations"
}

func (l *LocationModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type MediaModel struct {
	ID         string `gorm:"type:uuid;primary_key"`
	LocationID string `gorm:"type:uuid;not null;index"`
	URL        string `gorm:"not null"`
	Type       string `gorm:"type:varchar(10);not null"`
	Order      int    `gorm:"column:media_order"`
	CreatedAt  time.Time
}

func (MediaModel) TableName() string {
	return "location_media"
}

func (m *MediaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
