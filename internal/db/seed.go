package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// demoToken derives a stable receipt token for the i-th demo
// contribution. Reruns of Seed produce the same tokens, so the unique
// token constraint turns the insert into a no-op instead of a duplicate.
func demoToken(i int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("fundledger.seed.contribution.%d", i))).String()
}

// Seed inserts demo ledger data: a handful of campaigns in different
// lifecycle states plus contributions against the open ones. It is
// idempotent and safe to run on a database that was already seeded.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	now := time.Now().UTC()

	type demoCampaign struct {
		name        string
		description string
		creator     string
		target      int64
		deadline    time.Time
	}
	campaigns := []demoCampaign{
		{"Community Garden", "Raised beds and tooling for the north lot", "alice", 50_000, now.AddDate(0, 1, 0)},
		{"Open Hardware Router", "First production run of the rev-B board", "bob", 250_000, now.AddDate(0, 2, 0)},
		{"Neighborhood Mesh", "Rooftop antennas for the mesh backbone", "carol", 120_000, now.AddDate(0, 0, 14)},
		{"Archive Digitization", "Scanning the 1960-1980 print archive", "alice", 80_000, now.AddDate(0, 0, -7)},
	}

	for i, c := range campaigns {
		id := int64(i + 1)
		_, err := pool.Exec(ctx, `INSERT INTO campaigns
    (id, name, description, creator, target_amount, deadline, total_contributed, finalized, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,0,FALSE,'active',now()) ON CONFLICT DO NOTHING`,
			id, c.name, c.description, c.creator, c.target, c.deadline)
		if err != nil {
			return err
		}
	}
	// keep the id counter ahead of the seeded rows
	_, err := pool.Exec(ctx, `UPDATE ledger_state SET next_campaign_id = $1 WHERE next_campaign_id < $1`,
		int64(len(campaigns)+1))
	if err != nil {
		return err
	}

	// contributions against the open campaigns
	contributors := []string{"dave", "erin", "frank", "grace"}
	for i := 0; i < 12; i++ {
		campaignID := int64(i%3 + 1)
		contributor := contributors[i%len(contributors)]
		amount := int64(1000 + 500*i)
		tag, err := pool.Exec(ctx, `INSERT INTO contributions
    (token, campaign_id, contributor, amount, created_at)
VALUES ($1,$2,$3,$4,now()) ON CONFLICT DO NOTHING`,
			demoToken(i), campaignID, contributor, amount)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			continue
		}
		_, err = pool.Exec(ctx, `UPDATE campaigns SET total_contributed = total_contributed + $1 WHERE id = $2`,
			amount, campaignID)
		if err != nil {
			return err
		}
	}
	return nil
}
