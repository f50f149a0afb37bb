package economy

import (
	"time"

	"github.com/google/uuid"

	"github.com/unrot/unrot/internal/models"
)

// Ledger is an append-only record of point transactions. Entries are kept
// newest-first; nothing ever mutates or removes a recorded transaction.
type Ledger struct {
	entries []models.PointTransaction
	now     func() time.Time
	newID   func() string
}

func NewLedger(entries []models.PointTransaction) *Ledger {
	return &Ledger{
		entries: entries,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// Record appends a transaction with a fresh identifier and the current
// timestamp. The newest entry is always first; callers and views rely on
// that ordering.
func (l *Ledger) Record(amount int, kind models.TransactionKind, reason string) models.PointTransaction {
	tx := models.PointTransaction{
		ID:        l.newID(),
		Amount:    amount,
		Kind:      kind,
		Reason:    reason,
		Timestamp: l.now().UTC(),
	}
	l.entries = append([]models.PointTransaction{tx}, l.entries...)
	return tx
}

// Balance returns earned minus spent across all recorded transactions.
func (l *Ledger) Balance() int {
	total := 0
	for _, tx := range l.entries {
		switch tx.Kind {
		case models.TransactionEarned:
			total += tx.Amount
		case models.TransactionSpent:
			total -= tx.Amount
		}
	}
	return total
}

// Entries returns a copy of the transaction history, newest first.
func (l *Ledger) Entries() []models.PointTransaction {
	out := make([]models.PointTransaction, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger) Len() int {
	return len(l.entries)
}
