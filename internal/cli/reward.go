package cli

import (
	"fmt"

	"github.com/unrot/unrot/internal/constants"
	"github.com/unrot/unrot/internal/economy"
)

type RewardAddCmd struct {
	Title       string `arg:"" help:"Reward title."`
	Cost        int    `short:"c" help:"Point cost (floor applies)." required:""`
	Description string `short:"D" help:"Description."`
	Icon        string `help:"Display icon."`
}

func (c *RewardAddCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	reward, err := eng.AddReward(economy.RewardDraft{
		Title:       c.Title,
		Cost:        c.Cost,
		Description: c.Description,
		Icon:        c.Icon,
	})
	if err != nil {
		return err
	}

	if reward.Cost != c.Cost {
		fmt.Printf("Cost raised to the %d-point minimum.\n", constants.RewardCostFloor)
	}
	fmt.Printf("Added reward: %s (ID: %s, %d pts)\n", reward.Title, reward.ID, reward.Cost)
	return nil
}

type RewardListCmd struct{}

func (c *RewardListCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	rewards := eng.Rewards()
	if len(rewards) == 0 {
		fmt.Println("No rewards in the catalog.")
		return nil
	}

	balance := eng.Balance()
	fmt.Printf("Balance: %d points\n\n", balance)
	for _, r := range rewards {
		affordable := " "
		if balance >= r.Cost {
			affordable = "$"
		}
		fmt.Printf("%s %s %-30s %d pts\n", affordable, r.Icon, r.Title, r.Cost)
		if r.Description != "" {
			fmt.Printf("      %s\n", r.Description)
		}
		fmt.Printf("      ID: %s\n", r.ID)
	}
	return nil
}

type RedeemCmd struct {
	ID string `arg:"" help:"Reward identifier."`
}

func (c *RedeemCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	res, err := eng.Redeem(c.ID)
	if err != nil {
		return err
	}
	if !res.Redeemed {
		if res.Reward.ID == "" {
			fmt.Println("Reward not found.")
			return nil
		}
		fmt.Printf("Not enough points: %q costs %d, balance is %d.\n",
			res.Reward.Title, res.Reward.Cost, res.Balance)
		return nil
	}

	fmt.Printf("Redeemed %q for %d points. Balance: %d\n", res.Reward.Title, res.Reward.Cost, res.Balance)
	return nil
}
