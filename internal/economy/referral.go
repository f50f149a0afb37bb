package economy

import (
	"fmt"

	"github.com/unrot/unrot/internal/constants"
)

// ApplyReferral awards the one-time referral bonus. The flag gates repeat
// calls, so applying the same (or any) code twice credits nothing further.
// Returns whether the bonus was applied by this call.
func (e *Engine) ApplyReferral(code string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.referralUsed {
		return false, nil
	}
	e.referralUsed = true
	e.award(constants.ReferralBonus, fmt.Sprintf("Referral: %s", code))
	return true, e.persist()
}

// ReferralUsed reports whether the referral bonus was already claimed.
func (e *Engine) ReferralUsed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.referralUsed
}
