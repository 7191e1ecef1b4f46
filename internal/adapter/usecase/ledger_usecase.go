package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fundledger/internal/core/domain"
	"fundledger/internal/core/port"
	"fundledger/internal/event"
)

// LedgerUseCase provides business logic for the campaign ledger. It
// orchestrates the repository and publishes notifications after
// successful mutations, implementing the LedgerUseCase port.
type LedgerUseCase struct {
	repo port.LedgerRepository
	bus  *event.Bus

	// now supplies the ledger's current time. It is injected so
	// deadline and finalization races are testable with a fixed clock.
	now func() time.Time
}

// NewLedgerUseCase creates a new usecase with the provided repository and
// notification bus. A nil clock defaults to time.Now.
func NewLedgerUseCase(repo port.LedgerRepository, bus *event.Bus, clock func() time.Time) *LedgerUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &LedgerUseCase{repo: repo, bus: bus, now: clock}
}

// CreateCampaign allocates a new campaign owned by caller and returns its
// id. Inputs are accepted as-is: a zero target or a deadline already in
// the past is not rejected. On success a CampaignCreated notification is
// published.
func (u *LedgerUseCase) CreateCampaign(ctx context.Context, caller string, req port.CreateCampaignReq) (int64, error) {
	campaign := &domain.Campaign{
		Name:         req.Name,
		Description:  req.Description,
		Creator:      caller,
		TargetAmount: req.TargetAmount,
		Deadline:     req.Deadline,
		Status:       domain.StatusActive,
		CreatedAt:    u.now().UTC(),
	}
	id, err := u.repo.CreateCampaign(ctx, campaign)
	if err != nil {
		return 0, err
	}
	u.bus.Publish(event.TypeCampaignCreated, event.New(event.TypeCampaignCreated, event.CampaignCreated{
		CampaignID:   id,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Deadline:     req.Deadline,
	}))
	return id, nil
}

// Contribute pledges amount to the campaign on behalf of caller. The
// repository checks the ledger preconditions and applies the change in
// one atomic step; a rejection returns the contract reason error and
// leaves no trace. On acceptance a receipt is returned and a
// ContributionMade notification is published.
func (u *LedgerUseCase) Contribute(ctx context.Context, caller string, campaignID, amount int64) (*port.ContributionReceipt, error) {
	now := u.now()
	contribution := &domain.Contribution{
		Token:       uuid.NewString(),
		CampaignID:  campaignID,
		Contributor: caller,
		Amount:      amount,
		CreatedAt:   now.UTC(),
	}
	if err := u.repo.AddContribution(ctx, contribution, now); err != nil {
		return nil, err
	}
	u.bus.Publish(event.TypeContributionMade, event.New(event.TypeContributionMade, event.ContributionMade{
		CampaignID:  campaignID,
		Contributor: caller,
		Amount:      amount,
	}))
	return &port.ContributionReceipt{
		Token:      contribution.Token,
		CampaignID: campaignID,
		Amount:     amount,
	}, nil
}

// Finalize settles the campaign as successful or failed. Settlement is
// open-permission: any identity may finalize an eligible campaign, so
// caller is accepted but not checked. On success a CampaignFinalized
// notification is published.
func (u *LedgerUseCase) Finalize(ctx context.Context, caller string, campaignID int64) (domain.Status, error) {
	status, err := u.repo.FinalizeCampaign(ctx, campaignID, u.now())
	if err != nil {
		return "", err
	}
	u.bus.Publish(event.TypeCampaignFinalized, event.New(event.TypeCampaignFinalized, event.CampaignFinalized{
		CampaignID: campaignID,
		Status:     status,
	}))
	return status, nil
}

// GetCampaignDetails returns a full snapshot of the campaign, zero-valued
// for an unknown id.
func (u *LedgerUseCase) GetCampaignDetails(ctx context.Context, campaignID int64) (domain.Campaign, error) {
	return u.repo.GetCampaign(ctx, campaignID)
}

// GetContributorInfo returns the amount of the first contribution record
// matching the contributor, or 0 when none match. Multiple records from
// the same contributor are not summed.
func (u *LedgerUseCase) GetContributorInfo(ctx context.Context, campaignID int64, contributor string) (int64, error) {
	return u.repo.GetFirstContribution(ctx, campaignID, contributor)
}

// GetAllCampaigns returns every assigned campaign id in order.
func (u *LedgerUseCase) GetAllCampaigns(ctx context.Context) ([]int64, error) {
	return u.repo.ListCampaignIDs(ctx)
}

// GetCampaignContributors returns contributor identities in contribution
// order, duplicates preserved.
func (u *LedgerUseCase) GetCampaignContributors(ctx context.Context, campaignID int64) ([]string, error) {
	return u.repo.GetContributors(ctx, campaignID)
}

// GetTotalContributions returns the campaign's running total.
func (u *LedgerUseCase) GetTotalContributions(ctx context.Context, campaignID int64) (int64, error) {
	return u.repo.GetTotalContributed(ctx, campaignID)
}
