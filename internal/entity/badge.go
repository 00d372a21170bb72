package entity

import "time"

// Badge is a one-time achievement grant. Append-only per user.
type Badge struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	BadgeID   string    `json:"badge_id"`
	GrantedAt time.Time `json:"granted_at"`
}

// Aggregates are a user's activity counters, recomputed from the store on
// every evaluation rather than maintained incrementally.
type Aggregates struct {
	LocationsCreated  int64
	VerifiedLocations int64
	UpvotesReceived   int64
	NetPointsReceived int64
	VotesCast         int64
	CreditsEarned     int64
}

// BadgeRule maps a badge identifier to a predicate over a user's aggregates.
// The table is static configuration; rules are never mutated at runtime.
type BadgeRule struct {
	ID          string
	Name        string
	Description string
	Satisfied   func(a Aggregates) bool
}

var badgeRules = []BadgeRule{
	{
		ID:          "locations_10",
		Name:        "Cartographer",
		Description: "Created 10 locations",
		Satisfied:   func(a Aggregates) bool { return a.LocationsCreated >= 10 },
	},
	{
		ID:          "locations_50",
		Name:        "Atlas",
		Description: "Created 50 locations",
		Satisfied:   func(a Aggregates) bool { return a.LocationsCreated >= 50 },
	},
	{
		ID:          "upvotes_50",
		Name:        "Crowd Favorite",
		Description: "Received 50 upvotes across your locations",
		Satisfied:   func(a Aggregates) bool { return a.UpvotesReceived >= 50 },
	},
	{
		ID:          "upvotes_250",
		Name:        "Local Legend",
		Description: "Received 250 upvotes across your locations",
		Satisfied:   func(a Aggregates) bool { return a.UpvotesReceived >= 250 },
	},
	{
		ID:          "votes_100",
		Name:        "Curator",
		Description: "Cast 100 votes",
		Satisfied:   func(a Aggregates) bool { return a.VotesCast >= 100 },
	},
	{
		ID:          "verified_1",
		Name:        "Verified Scout",
		Description: "Had a location verified",
		Satisfied:   func(a Aggregates) bool { return a.VerifiedLocations >= 1 },
	},
	{
		ID:          "verified_10",
		Name:        "Trusted Source",
		Description: "Had 10 locations verified",
		Satisfied:   func(a Aggregates) bool { return a.VerifiedLocations >= 10 },
	},
	{
		ID:          "credits_100",
		Name:        "Patron",
		Description: "Earned 100 credits",
		Satisfied:   func(a Aggregates) bool { return a.CreditsEarned >= 100 },
	},
}

// BadgeRules returns the static rule table.
func BadgeRules() []BadgeRule {
	return badgeRules
}

// RuleByID looks up a badge rule; ok is false for unknown identifiers.
func RuleByID(id string) (BadgeRule, bool) {
	for _, r := range badgeRules {
		if r.ID == id {
			return r, true
		}
	}
	return BadgeRule{}, false
}
