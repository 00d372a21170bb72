package entity

import (
	"fmt"
	"time"
)

type Direction string

const (
	DirectionNone Direction = ""
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionUp:
		return DirectionUp, nil
	case DirectionDown:
		return DirectionDown, nil
	}
	return DirectionNone, fmt.Errorf("%w: direction must be up or down", ErrInvalidInput)
}

// Vote is one ledger entry: a single (user, location) pair. A user may flip
// an existing vote but never holds two votes on the same location.
type Vote struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	LocationID string    `json:"location_id"`
	Direction  Direction `json:"direction"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// VoteResult reports what a cast did: the direction the user held before,
// the one applied, and the location's counters and status after the cast.
type VoteResult struct {
	Previous    Direction          `json:"previous_direction"`
	Applied     Direction          `json:"applied_direction"`
	Upvotes     int                `json:"upvotes"`
	Downvotes   int                `json:"downvotes"`
	TotalPoints int                `json:"total_points"`
	Status      VerificationStatus `json:"status"`

	CreatorID      string `json:"-"`
	BecameVerified bool   `json:"-"`
	BecameFlagged  bool   `json:"-"`
}
