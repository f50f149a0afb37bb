package cli

import (
	"fmt"

	"github.com/unrot/unrot/internal/models"
)

type PointsCmd struct{}

func (c *PointsCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}
	fmt.Printf("%d points\n", eng.Balance())
	return nil
}

type HistoryCmd struct {
	Limit int `short:"n" help:"Show at most N transactions." default:"20"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	history := eng.History()
	if len(history) == 0 {
		fmt.Println("No transactions yet.")
		return nil
	}

	fmt.Printf("Balance: %d points\n\n", eng.Balance())
	shown := 0
	for _, tx := range history {
		if c.Limit > 0 && shown >= c.Limit {
			remaining := len(history) - shown
			fmt.Printf("... and %d older transaction(s)\n", remaining)
			break
		}
		sign := "+"
		if tx.Kind == models.TransactionSpent {
			sign = "-"
		}
		fmt.Printf("%s  %s%-4d %s\n", tx.Timestamp.Local().Format("2006-01-02 15:04"), sign, tx.Amount, tx.Reason)
		shown++
	}
	return nil
}
