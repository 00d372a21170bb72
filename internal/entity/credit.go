package entity

import "time"

type TransactionType string

const (
	// TransactionTypeAssign: credits moved from a user onto a location at
	// creation time.
	TransactionTypeAssign TransactionType = "assign"
	// TransactionTypeEarn: credits awarded by the system, e.g. when a
	// location gets verified.
	TransactionTypeEarn TransactionType = "earn"
	// TransactionTypeTopUp: credits added explicitly by the user.
	TransactionTypeTopUp TransactionType = "topup"
)

type Transaction struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	LocationID    string          `json:"location_id,omitempty"`
	Type          TransactionType `json:"type"`
	Amount        int             `json:"amount"`
	BalanceBefore int             `json:"balance_before"`
	BalanceAfter  int             `json:"balance_after"`
	CreatedAt     time.Time       `json:"created_at"`
}
