package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fundledger/internal/core/domain"
	"fundledger/internal/core/port"
	"fundledger/internal/core/port/mocks"
	"fundledger/internal/event"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func receiveEvent(t *testing.T, ch <-chan event.Event) event.Event {
	t.Helper()
	select {
	case evt := <-ch:
		return evt
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for event")
		return event.Event{}
	}
}

func TestCreateCampaignPublishesEvent(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	bus := event.NewBus(nil, nil)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(time.Hour)

	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(ctx context.Context, campaign *domain.Campaign) {
			require.Equal(t, "alice", campaign.Creator)
			require.Equal(t, domain.StatusActive, campaign.Status)
			require.Zero(t, campaign.TotalContributed)
		}).
		Return(int64(7), nil)

	svc := NewLedgerUseCase(repo, bus, fixedClock(now))
	_, evtCh := bus.Subscribe(event.TypeCampaignCreated)

	id, err := svc.CreateCampaign(context.Background(), "alice", port.CreateCampaignReq{
		Name:         "garden",
		TargetAmount: 100,
		Deadline:     deadline,
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), id)

	evt := receiveEvent(t, evtCh)
	data, ok := evt.Data.(event.CampaignCreated)
	require.True(t, ok, "unexpected payload type %T", evt.Data)
	require.Equal(t, int64(7), data.CampaignID)
	require.Equal(t, "garden", data.Name)
	require.Equal(t, int64(100), data.TargetAmount)
	require.Equal(t, deadline, data.Deadline)
}

func TestContributeUsesInjectedClock(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	bus := event.NewBus(nil, nil)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo.EXPECT().
		AddContribution(mock.Anything, mock.AnythingOfType("*domain.Contribution"), now).
		Run(func(ctx context.Context, contribution *domain.Contribution, at time.Time) {
			require.Equal(t, "bob", contribution.Contributor)
			require.Equal(t, int64(40), contribution.Amount)
			require.NotEmpty(t, contribution.Token)
		}).
		Return(nil)

	svc := NewLedgerUseCase(repo, bus, fixedClock(now))
	_, evtCh := bus.Subscribe(event.TypeContributionMade)

	receipt, err := svc.Contribute(context.Background(), "bob", 1, 40)
	require.NoError(t, err)
	require.Equal(t, int64(1), receipt.CampaignID)
	require.Equal(t, int64(40), receipt.Amount)
	require.NotEmpty(t, receipt.Token)

	evt := receiveEvent(t, evtCh)
	data := evt.Data.(event.ContributionMade)
	require.Equal(t, event.ContributionMade{CampaignID: 1, Contributor: "bob", Amount: 40}, data)
}

func TestContributeRejectionPublishesNothing(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	bus := event.NewBus(nil, nil)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo.EXPECT().
		AddContribution(mock.Anything, mock.AnythingOfType("*domain.Contribution"), now).
		Return(domain.ErrTargetReached)

	svc := NewLedgerUseCase(repo, bus, fixedClock(now))
	_, evtCh := bus.Subscribe(event.TypeContributionMade)

	receipt, err := svc.Contribute(context.Background(), "bob", 1, 70)
	require.ErrorIs(t, err, domain.ErrTargetReached)
	require.Nil(t, receipt)

	// Publish is synchronous with the mutation, so once Contribute has
	// returned an empty channel proves no event was published.
	select {
	case evt := <-evtCh:
		t.Fatalf("unexpected event after rejection: %+v", evt)
	default:
	}
}

func TestFinalizePublishesStatus(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	bus := event.NewBus(nil, nil)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo.EXPECT().
		FinalizeCampaign(mock.Anything, int64(3), now).
		Return(domain.StatusFailed, nil)

	svc := NewLedgerUseCase(repo, bus, fixedClock(now))
	_, evtCh := bus.Subscribe(event.TypeCampaignFinalized)

	status, err := svc.Finalize(context.Background(), "anyone", 3)
	require.NoError(t, err)
	require.Equal(t, domain.StatusFailed, status)

	evt := receiveEvent(t, evtCh)
	data := evt.Data.(event.CampaignFinalized)
	require.Equal(t, event.CampaignFinalized{CampaignID: 3, Status: domain.StatusFailed}, data)
}

func TestFinalizeErrorPassthrough(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	bus := event.NewBus(nil, nil)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo.EXPECT().
		FinalizeCampaign(mock.Anything, int64(3), now).
		Return(domain.Status(""), domain.ErrStillActive)

	svc := NewLedgerUseCase(repo, bus, fixedClock(now))

	_, err := svc.Finalize(context.Background(), "anyone", 3)
	require.ErrorIs(t, err, domain.ErrStillActive)
}

func TestQueriesDelegate(t *testing.T) {
	repo := mocks.NewMockLedgerRepository(t)
	bus := event.NewBus(nil, nil)
	svc := NewLedgerUseCase(repo, bus, nil)
	ctx := context.Background()

	repo.EXPECT().GetFirstContribution(mock.Anything, int64(1), "bob").Return(int64(30), nil)
	repo.EXPECT().ListCampaignIDs(mock.Anything).Return([]int64{1, 2}, nil)
	repo.EXPECT().GetContributors(mock.Anything, int64(1)).Return([]string{"bob", "bob"}, nil)
	repo.EXPECT().GetTotalContributed(mock.Anything, int64(1)).Return(int64(100), nil)

	amount, err := svc.GetContributorInfo(ctx, 1, "bob")
	require.NoError(t, err)
	require.Equal(t, int64(30), amount)

	ids, err := svc.GetAllCampaigns(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, ids)

	contributors, err := svc.GetCampaignContributors(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"bob", "bob"}, contributors)

	total, err := svc.GetTotalContributions(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(100), total)
}
