package domain

import (
	"errors"
	"time"
)

// Status is the lifecycle state of a campaign. A campaign stays active
// until it is finalized, at which point it becomes successful or failed
// and never changes again.
type Status string

const (
	StatusActive     Status = "active"
	StatusSuccessful Status = "successful"
	StatusFailed     Status = "failed"
)

// Rejection reasons returned by the ledger. The strings are part of the
// observable contract and must not be reworded.
var (
	ErrDeadlinePassed   = errors.New("Campaign deadline has passed")
	ErrTargetReached    = errors.New("Campaign target reached")
	ErrNotActive        = errors.New("Campaign is not active")
	ErrStillActive      = errors.New("Campaign is still active")
	ErrAlreadyFinalized = errors.New("Campaign already finalized")
)

// Campaign represents a crowdfunding campaign.
// Amounts are stored in integer units (e.g. cents). TotalContributed is
// monotonically non-decreasing until finalization and doubles as the
// escrow balance: contributed value is held by the ledger itself and
// there is no withdrawal path.
type Campaign struct {
	ID               int64
	Name             string
	Description      string
	Creator          string
	TargetAmount     int64
	Deadline         time.Time
	TotalContributed int64
	Finalized        bool
	Status           Status
	CreatedAt        time.Time
}

// CheckContribution reports whether a contribution of amount may be
// accepted at the given time. The checks run in a fixed order and the
// first violated one wins:
//
//  1. the deadline must not have passed,
//  2. the contribution must fit exactly within the remaining headroom
//     (an overshoot is rejected outright, never capped),
//  3. the campaign must be active.
//
// A nil return means the contribution is acceptable; the caller applies
// it atomically with this check.
func (c *Campaign) CheckContribution(now time.Time, amount int64) error {
	if !now.Before(c.Deadline) {
		return ErrDeadlinePassed
	}
	// Compare against the remaining headroom instead of summing:
	// TotalContributed never exceeds TargetAmount and both are
	// non-negative, so the subtraction cannot wrap, while the sum could.
	if amount > c.TargetAmount-c.TotalContributed {
		return ErrTargetReached
	}
	if c.Status != StatusActive {
		return ErrNotActive
	}
	return nil
}

// Finalize closes the campaign. It is allowed once the deadline has
// passed, or earlier only when the target is fully met. The resulting
// status is successful iff the target was met at this moment. The
// transition is one-way: a second call always fails with
// ErrAlreadyFinalized.
func (c *Campaign) Finalize(now time.Time) (Status, error) {
	if now.Before(c.Deadline) && c.TotalContributed < c.TargetAmount {
		return "", ErrStillActive
	}
	if c.Finalized {
		return "", ErrAlreadyFinalized
	}
	if c.TotalContributed >= c.TargetAmount {
		c.Status = StatusSuccessful
	} else {
		c.Status = StatusFailed
	}
	c.Finalized = true
	return c.Status, nil
}
