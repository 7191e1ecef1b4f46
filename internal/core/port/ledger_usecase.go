package port

import (
	"context"
	"time"

	"fundledger/internal/core/domain"
)

// LedgerUseCase defines the business operations exposed by the campaign
// ledger. This interface is the primary port into the application domain.
// Caller identity is an explicit parameter on every mutating operation
// rather than ambient state, which keeps the core testable.
type LedgerUseCase interface {
	// CreateCampaign allocates a new campaign and returns its id. There
	// is no validation beyond type: zero targets and past deadlines are
	// accepted. A CampaignCreated notification is published.
	CreateCampaign(ctx context.Context, caller string, req CreateCampaignReq) (int64, error)

	// Contribute pledges amount to the campaign on behalf of caller. On
	// acceptance it returns a receipt and publishes ContributionMade; on
	// rejection it returns the contract reason error with no state
	// change.
	Contribute(ctx context.Context, caller string, campaignID, amount int64) (*ContributionReceipt, error)

	// Finalize settles the campaign as successful or failed. It is
	// callable by any identity; there is no creator-only restriction. A
	// CampaignFinalized notification is published on success.
	Finalize(ctx context.Context, caller string, campaignID int64) (domain.Status, error)

	// Read-only queries. Unknown ids yield zero/default values.
	GetCampaignDetails(ctx context.Context, campaignID int64) (domain.Campaign, error)
	GetContributorInfo(ctx context.Context, campaignID int64, contributor string) (int64, error)
	GetAllCampaigns(ctx context.Context) ([]int64, error)
	GetCampaignContributors(ctx context.Context, campaignID int64) ([]string, error)
	GetTotalContributions(ctx context.Context, campaignID int64) (int64, error)
}

// CreateCampaignReq carries the immutable campaign fields supplied at
// creation time. It is a DTO used by the HTTP layer and contains no
// domain behaviour.
type CreateCampaignReq struct {
	Name         string
	Description  string
	TargetAmount int64
	Deadline     time.Time
}

// ContributionReceipt is returned to a contributor after an accepted
// contribution. Token uniquely identifies the stored record.
type ContributionReceipt struct {
	Token      string
	CampaignID int64
	Amount     int64
}
