package economy

import (
	"testing"

	"github.com/unrot/unrot/internal/models"
)

func TestLedgerRecordOrdering(t *testing.T) {
	l := NewLedger(nil)

	l.Record(5, models.TransactionEarned, "Task: First")
	l.Record(2, models.TransactionEarned, "Habit: Second")
	l.Record(4, models.TransactionSpent, "Reward: Third")

	entries := l.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Newest-first ordering is part of the contract, not a convenience.
	wantReasons := []string{"Reward: Third", "Habit: Second", "Task: First"}
	for i, want := range wantReasons {
		if entries[i].Reason != want {
			t.Errorf("entry %d: expected reason %q, got %q", i, want, entries[i].Reason)
		}
	}

	for _, tx := range entries {
		if tx.ID == "" {
			t.Error("expected every transaction to get an identifier")
		}
		if tx.Timestamp.IsZero() {
			t.Error("expected every transaction to get a timestamp")
		}
	}
}

func TestLedgerBalance(t *testing.T) {
	l := NewLedger(nil)

	if l.Balance() != 0 {
		t.Errorf("expected empty ledger balance 0, got %d", l.Balance())
	}

	l.Record(5, models.TransactionEarned, "Task: A")
	l.Record(2, models.TransactionEarned, "Habit: B")
	l.Record(4, models.TransactionSpent, "Reward: C")

	if got := l.Balance(); got != 3 {
		t.Errorf("expected balance 3, got %d", got)
	}
}

func TestLedgerBalanceFromLoadedEntries(t *testing.T) {
	seed := []models.PointTransaction{
		{ID: "t2", Amount: 10, Kind: models.TransactionSpent, Reason: "Reward: Coffee Treat"},
		{ID: "t1", Amount: 50, Kind: models.TransactionEarned, Reason: "Referral: FRIEND"},
	}

	l := NewLedger(seed)
	if got := l.Balance(); got != 40 {
		t.Errorf("expected balance 40, got %d", got)
	}

	l.Record(3, models.TransactionEarned, "Task: New")
	entries := l.Entries()
	if entries[0].Reason != "Task: New" {
		t.Errorf("expected new entry first, got %q", entries[0].Reason)
	}
	if got := l.Balance(); got != 43 {
		t.Errorf("expected balance 43, got %d", got)
	}
}

func TestLedgerEntriesReturnsCopy(t *testing.T) {
	l := NewLedger(nil)
	l.Record(1, models.TransactionEarned, "Task: A")

	entries := l.Entries()
	entries[0].Amount = 999

	if l.Entries()[0].Amount != 1 {
		t.Error("mutating the returned slice must not affect the ledger")
	}
}
