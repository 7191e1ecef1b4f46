package memory

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"fundledger/internal/core/domain"
)

func newCampaign(creator string, target int64, deadline time.Time) *domain.Campaign {
	return &domain.Campaign{
		Name:         "test",
		Creator:      creator,
		TargetAmount: target,
		Deadline:     deadline,
		Status:       domain.StatusActive,
	}
}

func contribution(campaignID int64, contributor string, amount int64) *domain.Contribution {
	return &domain.Contribution{
		Token:       uuid.NewString(),
		CampaignID:  campaignID,
		Contributor: contributor,
		Amount:      amount,
	}
}

// TestFundingScenario walks the reference sequence: target 100, partial
// fill, rejected overshoot, exact fill, early finalization, rejected
// repeat finalization.
func TestFundingScenario(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := start.Add(10 * time.Minute)

	id, err := repo.CreateCampaign(ctx, newCampaign("alice", 100, deadline))
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	require.NoError(t, repo.AddContribution(ctx, contribution(id, "bob", 40), start))

	err = repo.AddContribution(ctx, contribution(id, "carol", 70), start)
	require.ErrorIs(t, err, domain.ErrTargetReached)
	total, err := repo.GetTotalContributed(ctx, id)
	require.NoError(t, err)
	require.Equal(t, int64(40), total, "rejected contribution must leave no trace")

	require.NoError(t, repo.AddContribution(ctx, contribution(id, "carol", 60), start))
	total, err = repo.GetTotalContributed(ctx, id)
	require.NoError(t, err)
	require.Equal(t, int64(100), total)

	// finalize one minute in: before the deadline but the target is met
	status, err := repo.FinalizeCampaign(ctx, id, start.Add(time.Minute))
	require.NoError(t, err)
	require.Equal(t, domain.StatusSuccessful, status)

	_, err = repo.FinalizeCampaign(ctx, id, start.Add(2*time.Minute))
	require.ErrorIs(t, err, domain.ErrAlreadyFinalized)
}

// TestHugeContributionRejected guards the headroom arithmetic: a pledge
// near MaxInt64 against a partially funded campaign must be rejected as
// overshoot, not wrap the total negative.
func TestHugeContributionRejected(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	id, err := repo.CreateCampaign(ctx, newCampaign("alice", 100, start.Add(time.Hour)))
	require.NoError(t, err)
	require.NoError(t, repo.AddContribution(ctx, contribution(id, "bob", 40), start))

	err = repo.AddContribution(ctx, contribution(id, "mallory", math.MaxInt64), start)
	require.ErrorIs(t, err, domain.ErrTargetReached)

	total, err := repo.GetTotalContributed(ctx, id)
	require.NoError(t, err)
	require.Equal(t, int64(40), total)
	contributors, err := repo.GetContributors(ctx, id)
	require.NoError(t, err)
	require.Equal(t, []string{"bob"}, contributors)
}

func TestFinalizeFailedAfterDeadline(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := start.Add(10 * time.Minute)

	id, err := repo.CreateCampaign(ctx, newCampaign("alice", 100, deadline))
	require.NoError(t, err)
	require.NoError(t, repo.AddContribution(ctx, contribution(id, "bob", 50), start))

	_, err = repo.FinalizeCampaign(ctx, id, start)
	require.ErrorIs(t, err, domain.ErrStillActive)

	status, err := repo.FinalizeCampaign(ctx, id, start.Add(11*time.Minute))
	require.NoError(t, err)
	require.Equal(t, domain.StatusFailed, status)

	campaign, err := repo.GetCampaign(ctx, id)
	require.NoError(t, err)
	require.True(t, campaign.Finalized)
	require.Equal(t, domain.StatusFailed, campaign.Status)
	require.Equal(t, int64(50), campaign.TotalContributed)
}

func TestContributionAfterDeadline(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	id, err := repo.CreateCampaign(ctx, newCampaign("alice", 100, start.Add(time.Minute)))
	require.NoError(t, err)

	err = repo.AddContribution(ctx, contribution(id, "bob", 10), start.Add(time.Minute))
	require.ErrorIs(t, err, domain.ErrDeadlinePassed)
	contributors, err := repo.GetContributors(ctx, id)
	require.NoError(t, err)
	require.Empty(t, contributors)
}

func TestFirstContributionNotSummed(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	id, err := repo.CreateCampaign(ctx, newCampaign("alice", 1000, start.Add(time.Hour)))
	require.NoError(t, err)
	require.NoError(t, repo.AddContribution(ctx, contribution(id, "bob", 30), start))
	require.NoError(t, repo.AddContribution(ctx, contribution(id, "carol", 5), start))
	require.NoError(t, repo.AddContribution(ctx, contribution(id, "bob", 70), start))

	amount, err := repo.GetFirstContribution(ctx, id, "bob")
	require.NoError(t, err)
	require.Equal(t, int64(30), amount, "first record wins, entries are not summed")

	amount, err = repo.GetFirstContribution(ctx, id, "dave")
	require.NoError(t, err)
	require.Zero(t, amount)

	contributors, err := repo.GetContributors(ctx, id)
	require.NoError(t, err)
	require.Equal(t, []string{"bob", "carol", "bob"}, contributors, "duplicates preserved in order")
}

func TestListCampaignIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ids, err := repo.ListCampaignIDs(ctx)
	require.NoError(t, err)
	require.Empty(t, ids)

	for i := 0; i < 3; i++ {
		_, err = repo.CreateCampaign(ctx, newCampaign("alice", 100, start.Add(time.Hour)))
		require.NoError(t, err)
	}
	ids, err = repo.ListCampaignIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, ids)
}

// TestZeroRecordSemantics covers operations against ids that were never
// assigned: queries return defaults, contributions are rejected on the
// zero deadline, and finalization materializes a finalized empty record
// that stays invisible to the id listing.
func TestZeroRecordSemantics(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	campaign, err := repo.GetCampaign(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, domain.Campaign{}, campaign)

	total, err := repo.GetTotalContributed(ctx, 42)
	require.NoError(t, err)
	require.Zero(t, total)

	err = repo.AddContribution(ctx, contribution(42, "bob", 10), now)
	require.ErrorIs(t, err, domain.ErrDeadlinePassed)

	status, err := repo.FinalizeCampaign(ctx, 42, now)
	require.NoError(t, err)
	require.Equal(t, domain.StatusSuccessful, status)

	_, err = repo.FinalizeCampaign(ctx, 42, now)
	require.ErrorIs(t, err, domain.ErrAlreadyFinalized)

	ids, err := repo.ListCampaignIDs(ctx)
	require.NoError(t, err)
	require.Empty(t, ids, "phantom record must not appear in the id listing")
}
