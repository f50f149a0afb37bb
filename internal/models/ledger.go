package models

import "time"

type TransactionKind string

const (
	TransactionEarned TransactionKind = "earned"
	TransactionSpent  TransactionKind = "spent"
)

// PointTransaction is an immutable ledger entry. Amount is always
// positive; the kind carries the sign.
type PointTransaction struct {
	ID        string          `json:"id"`
	Amount    int             `json:"amount"`
	Kind      TransactionKind `json:"kind"`
	Reason    string          `json:"reason"`
	Timestamp time.Time       `json:"timestamp"`
}
