package domain

import "time"

// Contribution is a record of value pledged to a campaign. Records are
// append-only: multiple contributions from the same contributor are kept
// as separate entries and never merged or mutated.
type Contribution struct {
	ID          int64
	Token       string // receipt token returned to the contributor
	CampaignID  int64
	Contributor string
	Amount      int64
	CreatedAt   time.Time
}
