package models

// Reward is a purchasable catalog item. Redemption never mutates the
// reward itself; it only debits the point ledger.
type Reward struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Cost        int    `json:"cost"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}
