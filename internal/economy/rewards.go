package economy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/unrot/unrot/internal/constants"
	"github.com/unrot/unrot/internal/models"
)

type RewardDraft struct {
	Title       string
	Cost        int
	Description string
	Icon        string
}

// RedeemResult reports a redemption attempt. Redeemed is false when the
// reward is unknown or the balance cannot cover its cost; in either case
// no transaction was recorded.
type RedeemResult struct {
	Reward   models.Reward
	Redeemed bool
	Balance  int
}

// AddReward creates a catalog item. Costs below the floor are raised to it;
// there is no upper bound.
func (e *Engine) AddReward(draft RewardDraft) (models.Reward, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return models.Reward{}, errors.New("reward title is required")
	}

	cost := draft.Cost
	if cost < constants.RewardCostFloor {
		cost = constants.RewardCostFloor
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	reward := models.Reward{
		ID:          e.newID(),
		Title:       title,
		Cost:        cost,
		Description: strings.TrimSpace(draft.Description),
		Icon:        draft.Icon,
	}
	e.rewards = append(e.rewards, reward)
	return reward, e.persist()
}

// Redeem debits the ledger for a reward's cost if the balance covers it.
// The affordability check and the spend happen inside one critical section,
// so no interleaved mutation can drive the balance negative. The reward
// itself is never mutated.
func (e *Engine) Redeem(id string) (RedeemResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var reward models.Reward
	found := false
	for _, r := range e.rewards {
		if r.ID == id {
			reward = r
			found = true
			break
		}
	}
	if !found {
		return RedeemResult{Balance: e.points}, nil
	}
	if e.points < reward.Cost {
		return RedeemResult{Reward: reward, Balance: e.points}, nil
	}

	e.spend(reward.Cost, fmt.Sprintf("Reward: %s", reward.Title))
	return RedeemResult{Reward: reward, Redeemed: true, Balance: e.points}, e.persist()
}

// Rewards returns a copy of the catalog.
func (e *Engine) Rewards() []models.Reward {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Reward, len(e.rewards))
	copy(out, e.rewards)
	return out
}
