package engine

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/cpamm-go/math"
	"github.com/krazyTry/cpamm-go/shared"
	"github.com/krazyTry/cpamm-go/state"
)

type InitializeRewardParams struct {
	Pool  *state.Pool
	Index int

	Mint     solanago.PublicKey
	Vault    solanago.PublicKey
	Funder   solanago.PublicKey
	Duration uint64

	TokenFlag  shared.TokenFlag
	TokenBadge *state.TokenBadge
}

// InitializeReward occupies one of the pool's emission slots. Allowed for the
// admin or the pool creator.
func (e *Engine) InitializeReward(sender solanago.PublicKey, p InitializeRewardParams) error {
	if !e.isAdmin(sender) && !sender.Equals(p.Pool.Creator) {
		return shared.ErrUnauthorized
	}
	if err := validateTokenBadge(p.Mint, p.TokenFlag, p.TokenBadge); err != nil {
		return err
	}
	return p.Pool.InitializeReward(p.Index, p.Mint, p.Vault, p.Funder, p.TokenFlag, p.Duration)
}

// FundReward starts (or extends, with carryForward) an emission window.
// Funder only; the host moves amount into the reward vault on success.
func (e *Engine) FundReward(sender solanago.PublicKey, pool *state.Pool, index int, amount uint64, carryForward bool, clock Clock) error {
	if index < 0 || index >= shared.NumRewards {
		return shared.ErrInvalidRewardIndex
	}
	if !sender.Equals(pool.RewardInfos[index].Funder) {
		return shared.ErrUnauthorized
	}
	return pool.FundReward(index, amount, carryForward, clock.Timestamp)
}

// ClaimReward settles the position and drains one slot's pending rewards.
// Owner only.
func (e *Engine) ClaimReward(sender solanago.PublicKey, pool *state.Pool, position *state.Position, index int, clock Clock) (uint64, error) {
	if !sender.Equals(position.Owner) {
		return 0, shared.ErrUnauthorized
	}
	if err := pool.SettlePosition(position, clock.Timestamp); err != nil {
		return 0, err
	}
	return position.ClaimReward(index)
}

// WithdrawIneligibleReward recovers the funded slice that was emitted against
// an empty pool, once the farming window has elapsed. Funder only.
func (e *Engine) WithdrawIneligibleReward(sender solanago.PublicKey, pool *state.Pool, index int, clock Clock) (uint64, error) {
	if index < 0 || index >= shared.NumRewards {
		return 0, shared.ErrInvalidRewardIndex
	}
	if !sender.Equals(pool.RewardInfos[index].Funder) {
		return 0, shared.ErrUnauthorized
	}
	amount, err := pool.WithdrawIneligibleReward(index, clock.Timestamp)
	if err != nil {
		return 0, err
	}
	return math.CheckedU64(amount)
}

// UpdateRewardFunder reassigns a slot's funding authority. Admin or current
// funder.
func (e *Engine) UpdateRewardFunder(sender solanago.PublicKey, pool *state.Pool, index int, newFunder solanago.PublicKey) error {
	if index < 0 || index >= shared.NumRewards {
		return shared.ErrInvalidRewardIndex
	}
	if !e.isAdmin(sender) && !sender.Equals(pool.RewardInfos[index].Funder) {
		return shared.ErrUnauthorized
	}
	if newFunder.IsZero() {
		return shared.ErrInvalidParameters
	}
	return pool.UpdateRewardFunder(index, newFunder)
}

// UpdateRewardDuration changes a slot's window length for future fundings.
// Admin or funder; refused while a window is running.
func (e *Engine) UpdateRewardDuration(sender solanago.PublicKey, pool *state.Pool, index int, newDuration uint64, clock Clock) error {
	if index < 0 || index >= shared.NumRewards {
		return shared.ErrInvalidRewardIndex
	}
	if !e.isAdmin(sender) && !sender.Equals(pool.RewardInfos[index].Funder) {
		return shared.ErrUnauthorized
	}
	return pool.UpdateRewardDuration(index, newDuration, clock.Timestamp)
}
