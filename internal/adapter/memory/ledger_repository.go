package memory

import (
	"context"
	"sync"
	"time"

	"fundledger/internal/core/domain"
)

// LedgerRepository implements port.LedgerRepository on in-process maps
// guarded by a single read-write lock. It serves single-process
// deployments and tests. Mutations hold the write lock for the whole
// check-and-apply step, which gives the same all-or-nothing semantics as
// the Postgres adapter's transactions; queries take the read lock and
// never observe a torn write.
type LedgerRepository struct {
	mu             sync.RWMutex
	campaigns      map[int64]*domain.Campaign
	contributions  map[int64][]domain.Contribution
	nextCampaignID int64
}

// NewLedgerRepository returns an empty ledger with the id counter at 1.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		campaigns:      make(map[int64]*domain.Campaign),
		contributions:  make(map[int64][]domain.Contribution),
		nextCampaignID: 1,
	}
}

// CreateCampaign stores the campaign under the next id and increments the
// counter.
func (r *LedgerRepository) CreateCampaign(ctx context.Context, campaign *domain.Campaign) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	id := r.nextCampaignID
	r.nextCampaignID++
	stored := *campaign
	stored.ID = id
	stored.TotalContributed = 0
	stored.Finalized = false
	stored.Status = domain.StatusActive
	r.campaigns[id] = &stored
	campaign.ID = id
	return id, nil
}

// AddContribution appends the contribution after checking the ledger
// preconditions. A campaign id that was never assigned is treated as an
// implicit zero-valued record, which always rejects with the deadline
// reason.
func (r *LedgerRepository) AddContribution(ctx context.Context, contribution *domain.Contribution, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	campaign, ok := r.campaigns[contribution.CampaignID]
	if !ok {
		campaign = &domain.Campaign{}
	}
	if err := campaign.CheckContribution(now, contribution.Amount); err != nil {
		return err
	}
	stored := *contribution
	stored.ID = int64(len(r.contributions[contribution.CampaignID]) + 1)
	r.contributions[contribution.CampaignID] = append(r.contributions[contribution.CampaignID], stored)
	campaign.TotalContributed += contribution.Amount
	contribution.ID = stored.ID
	return nil
}

// FinalizeCampaign performs the one-way settlement transition. Finalizing
// an unassigned id materializes a finalized, empty record under that id;
// it stays invisible to ListCampaignIDs, which derives from the counter.
func (r *LedgerRepository) FinalizeCampaign(ctx context.Context, campaignID int64, now time.Time) (domain.Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	campaign, ok := r.campaigns[campaignID]
	if !ok {
		campaign = &domain.Campaign{ID: campaignID, CreatedAt: now.UTC()}
	}
	status, err := campaign.Finalize(now)
	if err != nil {
		return "", err
	}
	if !ok {
		r.campaigns[campaignID] = campaign
	}
	return status, nil
}

// GetCampaign returns a snapshot of the campaign, zero-valued for an
// unknown id.
func (r *LedgerRepository) GetCampaign(ctx context.Context, campaignID int64) (domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	campaign, ok := r.campaigns[campaignID]
	if !ok {
		return domain.Campaign{}, nil
	}
	return *campaign, nil
}

// GetFirstContribution returns the amount of the first matching record in
// insertion order, or 0 when none match.
func (r *LedgerRepository) GetFirstContribution(ctx context.Context, campaignID int64, contributor string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.contributions[campaignID] {
		if c.Contributor == contributor {
			return c.Amount, nil
		}
	}
	return 0, nil
}

// ListCampaignIDs returns 1..nextCampaignId-1 in order.
func (r *LedgerRepository) ListCampaignIDs(ctx context.Context) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, r.nextCampaignID-1)
	for id := int64(1); id < r.nextCampaignID; id++ {
		ids = append(ids, id)
	}
	return ids, nil
}

// GetContributors returns contributor identities in contribution order,
// duplicates preserved.
func (r *LedgerRepository) GetContributors(ctx context.Context, campaignID int64) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := r.contributions[campaignID]
	contributors := make([]string, 0, len(records))
	for _, c := range records {
		contributors = append(contributors, c.Contributor)
	}
	return contributors, nil
}

// GetTotalContributed returns the campaign's running total, 0 for an
// unknown id.
func (r *LedgerRepository) GetTotalContributed(ctx context.Context, campaignID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	campaign, ok := r.campaigns[campaignID]
	if !ok {
		return 0, nil
	}
	return campaign.TotalContributed, nil
}
