package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/unrot/unrot/internal/models"
)

func providersUnderTest(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	return map[string]Provider{
		"json":   NewJSONStore(filepath.Join(dir, "unrot.json")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "unrot.db")),
	}
}

func TestLoadMissingFallsBackToDefault(t *testing.T) {
	for name, store := range providersUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			snap, err := store.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if snap.Points != 0 {
				t.Errorf("expected zero points, got %d", snap.Points)
			}
			if len(snap.Rewards) != 2 {
				t.Errorf("expected seed reward catalog, got %d rewards", len(snap.Rewards))
			}
			if len(snap.Categories) != 5 {
				t.Errorf("expected seed category list, got %v", snap.Categories)
			}
			if snap.ReferralUsed {
				t.Error("expected referral unused in default state")
			}
			if err := store.Close(); err != nil {
				t.Errorf("Close: %v", err)
			}
		})
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	for name, store := range providersUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			snap := models.DefaultSnapshot()
			snap.Points = 42
			snap.ReferralUsed = true
			snap.Tasks = []models.Task{{
				ID:     "t1",
				Title:  "Write spec",
				Status: models.TaskStatusTodo,
				Points: 3,
			}}
			snap.History = []models.PointTransaction{{
				ID:     "tx1",
				Amount: 42,
				Kind:   models.TransactionEarned,
				Reason: "Task: Seed",
			}}

			if err := store.SaveSnapshot(snap); err != nil {
				t.Fatalf("SaveSnapshot: %v", err)
			}

			loaded, err := store.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if loaded.Points != 42 {
				t.Errorf("expected points 42, got %d", loaded.Points)
			}
			if !loaded.ReferralUsed {
				t.Error("expected referral flag persisted")
			}
			if len(loaded.Tasks) != 1 || loaded.Tasks[0].Title != "Write spec" {
				t.Errorf("unexpected tasks %+v", loaded.Tasks)
			}
			if len(loaded.History) != 1 || loaded.History[0].Reason != "Task: Seed" {
				t.Errorf("unexpected history %+v", loaded.History)
			}
			if err := store.Close(); err != nil {
				t.Errorf("Close: %v", err)
			}
		})
	}
}

func TestInitRefusesExistingStorage(t *testing.T) {
	for name, store := range providersUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err != nil {
				t.Fatalf("first Init: %v", err)
			}
			if err := store.Init(); err == nil {
				t.Error("expected second Init to fail")
			}
			store.Close()
		})
	}
}

func TestJSONLoadCorruptDocumentFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unrot.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Points != 0 || len(snap.Rewards) != 2 {
		t.Errorf("expected default snapshot on corrupt document, got %+v", snap)
	}
}

func TestSQLiteSaveOverwritesSingleRow(t *testing.T) {
	dir := t.TempDir()
	store := NewSQLiteStore(filepath.Join(dir, "unrot.db"))
	defer store.Close()

	first := models.DefaultSnapshot()
	first.Points = 1
	if err := store.SaveSnapshot(first); err != nil {
		t.Fatal(err)
	}

	second := models.DefaultSnapshot()
	second.Points = 2
	if err := store.SaveSnapshot(second); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Points != 2 {
		t.Errorf("expected latest snapshot, got points %d", loaded.Points)
	}
}
