package port

import (
	"context"
	"time"

	"fundledger/internal/core/domain"
)

// LedgerRepository defines the persistence layer for the campaign ledger.
// It is an outbound port in hexagonal architecture. Implementations must
// apply each mutating operation atomically: the precondition check and the
// state change happen inside one critical section (a serializable
// transaction or a write lock), so a rejected operation leaves no trace.
//
// Absent campaign ids are not errors. Reads against an unknown id return
// zero values, and mutations operate against an implicit zero-valued
// campaign record, mirroring the original ledger's behavior.
type LedgerRepository interface {
	// CreateCampaign stores the campaign under the next monotonic id,
	// increments the id counter and returns the assigned id.
	CreateCampaign(ctx context.Context, campaign *domain.Campaign) (int64, error)

	// AddContribution appends the contribution and increments the
	// campaign's running total, after checking the ledger preconditions
	// at the given time. On rejection the contract reason error is
	// returned and nothing is written.
	AddContribution(ctx context.Context, contribution *domain.Contribution, now time.Time) error

	// FinalizeCampaign performs the one-way Active -> Successful/Failed
	// transition at the given time and returns the resulting status.
	FinalizeCampaign(ctx context.Context, campaignID int64, now time.Time) (domain.Status, error)

	// GetCampaign returns a snapshot of the campaign, or a zero-valued
	// campaign when the id is unknown.
	GetCampaign(ctx context.Context, campaignID int64) (domain.Campaign, error)
	// GetFirstContribution returns the amount of the first contribution
	// record matching the contributor, in insertion order, or 0 when none
	// match. It never sums multiple entries.
	GetFirstContribution(ctx context.Context, campaignID int64, contributor string) (int64, error)
	// ListCampaignIDs returns every assigned campaign id in order,
	// 1..nextCampaignId-1.
	ListCampaignIDs(ctx context.Context) ([]int64, error)
	// GetContributors returns contributor identities in contribution
	// order, one per record, duplicates preserved.
	GetContributors(ctx context.Context, campaignID int64) ([]string, error)
	// GetTotalContributed returns the campaign's running total, 0 for an
	// unknown id.
	GetTotalContributed(ctx context.Context, campaignID int64) (int64, error)
}
