package domain

// Milestone describes a staged release of campaign funds with per-voter
// approval tracking. It is declared for contract compatibility but is not
// wired into any ledger operation: no milestone is ever created, voted on
// or released.
type Milestone struct {
	CampaignID    int64
	Index         int
	Description   string
	ReleaseAmount int64
	Approvals     map[string]bool // contributor identity -> approved
	Released      bool
}
