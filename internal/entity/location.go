package entity

import "time"

type VerificationStatus string

const (
	StatusNormal   VerificationStatus = "normal"
	StatusPending  VerificationStatus = "pending"
	StatusVerified VerificationStatus = "verified"
	StatusFlagged  VerificationStatus = "flagged"
)

func IsValidStatus(s VerificationStatus) bool {
	switch s {
	case StatusNormal, StatusPending, StatusVerified, StatusFlagged:
		return true
	}
	return false
}

type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
)

type MediaItem struct {
	ID         string    `json:"id"`
	LocationID string    `json:"location_id"`
	URL        string    `json:"url"`
	Type       MediaType `json:"type"`
	Order      int       `json:"order"`
	CreatedAt  time.Time `json:"created_at"`
}

// Location is a geotagged post. Coordinates are immutable after creation.
type Location struct {
	ID          string             `json:"id"`
	CreatorID   string             `json:"creator_id,omitempty"`
	Longitude   float64            `json:"longitude"`
	Latitude    float64            `json:"latitude"`
	Text        string             `json:"text"`
	Anonymous   bool               `json:"anonymous"`
	Upvotes     int                `json:"upvotes"`
	Downvotes   int                `json:"downvotes"`
	TotalPoints int                `json:"total_points"`
	Status      VerificationStatus `json:"status"`
	Credits     int                `json:"credits"`
	AutoDelete  bool               `json:"auto_delete"`
	DeleteAt    *time.Time         `json:"delete_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Media       []MediaItem        `json:"media,omitempty"`
}

// Recount re-derives the net score from the raw counters. TotalPoints is a
// materialized view over the vote ledger and must never be written on its
// own.
func (l *Location) Recount() {
	l.TotalPoints = l.Upvotes - l.Downvotes
}

// ApplyVote moves the counters from a previous vote direction to the applied
// one and recounts. Returns false when nothing changed (same direction, or no
// direction at all).
func (l *Location) ApplyVote(prev, next Direction) bool {
	if next == DirectionNone || prev == next {
		return false
	}

	switch prev {
	case DirectionUp:
		if l.Upvotes > 0 {
			l.Upvotes--
		}
	case DirectionDown:
		if l.Downvotes > 0 {
			l.Downvotes--
		}
	}

	switch next {
	case DirectionUp:
		l.Upvotes++
	case DirectionDown:
		l.Downvotes++
	}

	l.Recount()
	return true
}

// Thresholds are the score boundaries driving status transitions. They come
// from config, never from call sites.
type Thresholds struct {
	// Flag: points strictly below this flag the location.
	Flag int
	// Verify: points at or above this verify a normal or pending location.
	Verify int
}

func DefaultThresholds() Thresholds {
	return Thresholds{Flag: -5, Verify: 10}
}

// NextStatus derives a location's verification status after a point change.
// Flagging wins over verification. There is no automatic path back to normal
// from flagged or verified; only an admin override does that.
func NextStatus(current VerificationStatus, points int, t Thresholds) VerificationStatus {
	if points < t.Flag {
		return StatusFlagged
	}
	if (current == StatusNormal || current == StatusPending) && points >= t.Verify {
		return StatusVerified
	}
	return current
}
