package economy

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unrot/unrot/internal/constants"
	"github.com/unrot/unrot/internal/models"
)

// Persister receives the full workspace snapshot after every mutation.
// The engine treats it as an opaque persistence boundary.
type Persister interface {
	SaveSnapshot(models.Snapshot) error
}

// Engine owns the workspace state and exposes every mutating operation on
// it. Nothing outside this package can write points or the ledger directly.
//
// Every mutation runs under one mutex so the ledger and the registries
// update as a single step from an observer's perspective: the balance never
// reflects a partially applied transaction, and a redeem can never race
// between its affordability check and its write.
type Engine struct {
	mu sync.Mutex

	ledger       *Ledger
	points       int // mirrors ledger.Balance(), maintained together
	tasks        []models.Task
	habits       []models.Habit
	rewards      []models.Reward
	categories   []string
	referralUsed bool
	chat         []models.ChatMessage

	store Persister
	now   func() time.Time
	newID func() string
}

// NewEngine builds an engine from a loaded snapshot. A nil persister keeps
// the engine purely in-memory.
func NewEngine(snap models.Snapshot, store Persister) *Engine {
	e := &Engine{
		ledger:       NewLedger(snap.History),
		tasks:        snap.Tasks,
		habits:       snap.Habits,
		rewards:      snap.Rewards,
		categories:   snap.Categories,
		referralUsed: snap.ReferralUsed,
		chat:         snap.Chat,
		store:        store,
		now:          time.Now,
		newID:        func() string { return uuid.New().String() },
	}
	// The ledger stamps transactions through the engine's hooks, so
	// replacing e.now or e.newID covers the whole engine.
	e.ledger.now = func() time.Time { return e.now() }
	e.ledger.newID = func() string { return e.newID() }
	// The mirror is derived, not trusted: a hand-edited document could
	// disagree with its own ledger.
	e.points = e.ledger.Balance()
	return e
}

// persist writes the current snapshot through the store. Called at the end
// of every mutation, still under the lock. Memory state is already applied
// when this runs; a write failure surfaces to the caller but never rolls
// anything back.
func (e *Engine) persist() error {
	if e.store == nil {
		return nil
	}
	return e.store.SaveSnapshot(e.snapshotLocked())
}

func (e *Engine) snapshotLocked() models.Snapshot {
	snap := models.Snapshot{
		Version:      constants.SnapshotVersion,
		Points:       e.points,
		History:      e.ledger.Entries(),
		Tasks:        make([]models.Task, len(e.tasks)),
		Habits:       make([]models.Habit, len(e.habits)),
		Rewards:      make([]models.Reward, len(e.rewards)),
		Categories:   make([]string, len(e.categories)),
		ReferralUsed: e.referralUsed,
		Chat:         make([]models.ChatMessage, len(e.chat)),
	}
	copy(snap.Tasks, e.tasks)
	copy(snap.Habits, e.habits)
	copy(snap.Rewards, e.rewards)
	copy(snap.Categories, e.categories)
	copy(snap.Chat, e.chat)
	return snap
}

// Snapshot returns a copy of the full workspace state.
func (e *Engine) Snapshot() models.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Balance returns the current point balance.
func (e *Engine) Balance() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.points
}

// History returns the transaction history, newest first.
func (e *Engine) History() []models.PointTransaction {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Entries()
}

// award records an earned transaction and bumps the balance mirror.
// Callers must hold the lock.
func (e *Engine) award(amount int, reason string) models.PointTransaction {
	tx := e.ledger.Record(amount, models.TransactionEarned, reason)
	e.points += amount
	return tx
}

// spend records a spent transaction and lowers the balance mirror.
// Callers must hold the lock and have checked affordability.
func (e *Engine) spend(amount int, reason string) models.PointTransaction {
	tx := e.ledger.Record(amount, models.TransactionSpent, reason)
	e.points -= amount
	return tx
}

// AppendChat adds a message to the chat history. Chat is purely additive;
// it never touches points, tasks, or habits.
func (e *Engine) AppendChat(role models.ChatRole, content string) (models.ChatMessage, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	msg := models.ChatMessage{
		ID:        e.newID(),
		Role:      role,
		Content:   content,
		Timestamp: e.now().UTC(),
	}
	e.chat = append(e.chat, msg)
	return msg, e.persist()
}

// ChatHistory returns a copy of the chat log, oldest first.
func (e *Engine) ChatHistory() []models.ChatMessage {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.ChatMessage, len(e.chat))
	copy(out, e.chat)
	return out
}
