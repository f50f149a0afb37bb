package cli

import (
	"fmt"

	"github.com/unrot/unrot/internal/constants"
)

type ReferralCmd struct {
	Code string `arg:"" help:"Referral code."`
}

func (c *ReferralCmd) Run(ctx *Context) error {
	eng, err := ctx.engine()
	if err != nil {
		return err
	}

	applied, err := eng.ApplyReferral(c.Code)
	if err != nil {
		return err
	}
	if !applied {
		fmt.Println("Referral bonus already claimed.")
		return nil
	}

	fmt.Printf("Referral applied: +%d points. Balance: %d\n", constants.ReferralBonus, eng.Balance())
	return nil
}
