package model

// PricingRule is the branch-level default daily rate, keyed by
// (branch, AC class). A room's own price_daily takes precedence.
type PricingRule struct {
	BranchID  uint64 // pricing_rules.branch_id
	IsAC      bool   // pricing_rules.is_ac
	DailyRate int64  // pricing_rules.daily_rate
}
