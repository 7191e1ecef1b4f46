package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundledger/internal/core/domain"
)

// LedgerRepository implements port.LedgerRepository using pgxpool for
// PostgreSQL. Every mutating operation runs in a serializable transaction
// that locks the campaign row, so precondition check and state change are
// one atomic step.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

const campaignColumns = `id, name, description, creator, target_amount, deadline, total_contributed, finalized, status, created_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Creator,
		&c.TargetAmount,
		&c.Deadline,
		&c.TotalContributed,
		&c.Finalized,
		&c.Status,
		&c.CreatedAt,
	)
	return c, err
}

// CreateCampaign assigns the next campaign id from the ledger counter and
// inserts the campaign row in the same transaction.
func (r *LedgerRepository) CreateCampaign(ctx context.Context, campaign *domain.Campaign) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()
	// lock the counter row
	var id int64
	err = tx.QueryRow(ctx, `SELECT next_campaign_id FROM ledger_state FOR UPDATE`).Scan(&id)
	if err != nil {
		return 0, err
	}
	_, err = tx.Exec(ctx, `UPDATE ledger_state SET next_campaign_id = next_campaign_id + 1`)
	if err != nil {
		return 0, err
	}
	_, err = tx.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		id, campaign.Name, campaign.Description, campaign.Creator, campaign.TargetAmount,
		campaign.Deadline, int64(0), false, domain.StatusActive, campaign.CreatedAt)
	if err != nil {
		return 0, err
	}
	campaign.ID = id
	return id, nil
}

// AddContribution appends the contribution and increments the campaign
// total after checking the ledger preconditions under a row lock. A
// missing campaign row behaves as an implicit zero-valued record, whose
// zero deadline always rejects the contribution.
func (r *LedgerRepository) AddContribution(ctx context.Context, contribution *domain.Contribution, now time.Time) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()
	campaign, err := scanCampaign(tx.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, contribution.CampaignID))
	if errors.Is(err, pgx.ErrNoRows) {
		campaign, err = domain.Campaign{}, nil
	}
	if err != nil {
		return err
	}
	if err = campaign.CheckContribution(now, contribution.Amount); err != nil {
		return err
	}
	err = tx.QueryRow(ctx, `INSERT INTO contributions (token, campaign_id, contributor, amount, created_at)
		VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		contribution.Token, contribution.CampaignID, contribution.Contributor,
		contribution.Amount, contribution.CreatedAt).Scan(&contribution.ID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET total_contributed = total_contributed + $1 WHERE id = $2`,
		contribution.Amount, contribution.CampaignID)
	return err
}

// FinalizeCampaign performs the one-way settlement transition under a row
// lock. Finalizing an id that was never assigned materializes a
// finalized, empty campaign row, matching the ledger's implicit
// zero-record semantics.
func (r *LedgerRepository) FinalizeCampaign(ctx context.Context, campaignID int64, now time.Time) (domain.Status, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()
	found := true
	campaign, err := scanCampaign(tx.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, campaignID))
	if errors.Is(err, pgx.ErrNoRows) {
		campaign, err = domain.Campaign{}, nil
		found = false
	}
	if err != nil {
		return "", err
	}
	status, err := campaign.Finalize(now)
	if err != nil {
		return "", err
	}
	if found {
		_, err = tx.Exec(ctx, `UPDATE campaigns SET status = $1, finalized = TRUE WHERE id = $2`,
			status, campaignID)
	} else {
		_, err = tx.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
			campaignID, "", "", "", int64(0), campaign.Deadline, int64(0), true, status, now.UTC())
	}
	if err != nil {
		return "", err
	}
	return status, nil
}

// GetCampaign returns a campaign snapshot, zero-valued when the id is
// unknown.
func (r *LedgerRepository) GetCampaign(ctx context.Context, campaignID int64) (domain.Campaign, error) {
	campaign, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, campaignID))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, nil
	}
	if err != nil {
		return domain.Campaign{}, err
	}
	return campaign, nil
}

// GetFirstContribution returns the amount of the first matching
// contribution in insertion order, or 0 when none match.
func (r *LedgerRepository) GetFirstContribution(ctx context.Context, campaignID int64, contributor string) (int64, error) {
	var amount int64
	err := r.pool.QueryRow(ctx,
		`SELECT amount FROM contributions WHERE campaign_id = $1 AND contributor = $2 ORDER BY id LIMIT 1`,
		campaignID, contributor).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return amount, nil
}

// ListCampaignIDs returns 1..nextCampaignId-1 in order, derived from the
// ledger counter rather than the campaign rows so phantom finalized
// records stay invisible.
func (r *LedgerRepository) ListCampaignIDs(ctx context.Context) ([]int64, error) {
	var next int64
	if err := r.pool.QueryRow(ctx, `SELECT next_campaign_id FROM ledger_state`).Scan(&next); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, next-1)
	for id := int64(1); id < next; id++ {
		ids = append(ids, id)
	}
	return ids, nil
}

// GetContributors returns contributor identities in contribution order,
// duplicates preserved.
func (r *LedgerRepository) GetContributors(ctx context.Context, campaignID int64) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT contributor FROM contributions WHERE campaign_id = $1 ORDER BY id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var contributor string
		err := row.Scan(&contributor)
		return contributor, err
	})
}

// GetTotalContributed returns the campaign's running total, 0 for an
// unknown id.
func (r *LedgerRepository) GetTotalContributed(ctx context.Context, campaignID int64) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT total_contributed FROM campaigns WHERE id = $1`, campaignID).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return total, nil
}
