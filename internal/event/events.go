package event

import (
	"time"

	"fundledger/internal/core/domain"
)

// Notification types published by the ledger.
const (
	TypeCampaignCreated   Type = "ledger.campaign.created"
	TypeContributionMade  Type = "ledger.contribution.made"
	TypeCampaignFinalized Type = "ledger.campaign.finalized"
	// TypeFundsReleased is declared for contract compatibility but no
	// operation publishes it; there is no release path in this ledger.
	TypeFundsReleased Type = "ledger.funds.released"
)

// CampaignCreated is the payload of TypeCampaignCreated.
type CampaignCreated struct {
	CampaignID   int64
	Name         string
	TargetAmount int64
	Deadline     time.Time
}

// ContributionMade is the payload of TypeContributionMade.
type ContributionMade struct {
	CampaignID  int64
	Contributor string
	Amount      int64
}

// CampaignFinalized is the payload of TypeCampaignFinalized.
type CampaignFinalized struct {
	CampaignID int64
	Status     domain.Status
}

// FundsReleased is the payload of TypeFundsReleased. Never published; see
// TypeFundsReleased.
type FundsReleased struct {
	CampaignID     int64
	MilestoneIndex int
	Amount         int64
}
