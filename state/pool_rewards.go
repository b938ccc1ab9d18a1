package state

import (
	"math/big"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/cpamm-go/shared"
)

// InitializeReward occupies the reward slot at index. Reusing an occupied
// slot fails; the slot stays unfunded until FundReward sets a rate.
func (p *Pool) InitializeReward(index int, mint, vault, funder solanago.PublicKey, tokenFlag shared.TokenFlag, duration uint64) error {
	if index < 0 || index >= shared.NumRewards {
		return shared.ErrInvalidRewardIndex
	}
	if duration < shared.MinRewardDuration || duration > shared.MaxRewardDuration {
		return shared.ErrInvalidRewardDuration
	}
	if p.RewardInfos[index].IsInitialized() {
		return shared.ErrRewardSlotAlreadyInitialized
	}
	p.RewardInfos[index].initialize(mint, vault, funder, tokenFlag, duration)
	return nil
}

// FundReward settles the slot's accumulator with the old rate up to now, then
// opens a fresh duration window at the new rate.
func (p *Pool) FundReward(index int, amount uint64, carryForward bool, currentTime uint64) error {
	if index < 0 || index >= shared.NumRewards {
		return shared.ErrInvalidRewardIndex
	}
	reward := &p.RewardInfos[index]
	if !reward.IsInitialized() {
		return shared.ErrRewardUninitialized
	}
	if err := reward.updateRewards(p.Liquidity.BigInt(), currentTime); err != nil {
		return err
	}
	return reward.fund(amount, carryForward, currentTime)
}

// WithdrawIneligibleReward recovers the slice of the funded amount that was
// emitted against an empty pool. Only valid once the farming window has fully
// elapsed; resets the banked seconds so nothing is recovered twice.
func (p *Pool) WithdrawIneligibleReward(index int, currentTime uint64) (*big.Int, error) {
	if index < 0 || index >= shared.NumRewards {
		return nil, shared.ErrInvalidRewardIndex
	}
	reward := &p.RewardInfos[index]
	if !reward.IsInitialized() {
		return nil, shared.ErrRewardUninitialized
	}
	if currentTime < reward.RewardDurationEnd {
		return nil, shared.ErrRewardDurationNotElapsed
	}
	if err := reward.updateRewards(p.Liquidity.BigInt(), currentTime); err != nil {
		return nil, err
	}
	amount, err := reward.ineligibleAmount()
	if err != nil {
		return nil, err
	}
	reward.CumulativeSecondsWithEmptyLiquidityReward = 0
	return amount, nil
}

// UpdateRewardDuration changes the slot's duration for the next funding
// window. Rejected while a window is still running so past accrual can never
// be rewritten.
func (p *Pool) UpdateRewardDuration(index int, newDuration, currentTime uint64) error {
	if index < 0 || index >= shared.NumRewards {
		return shared.ErrInvalidRewardIndex
	}
	if newDuration < shared.MinRewardDuration || newDuration > shared.MaxRewardDuration {
		return shared.ErrInvalidRewardDuration
	}
	reward := &p.RewardInfos[index]
	if !reward.IsInitialized() {
		return shared.ErrRewardUninitialized
	}
	if currentTime < reward.RewardDurationEnd {
		return shared.ErrInvalidRewardDuration
	}
	reward.RewardDuration = newDuration
	return nil
}

// UpdateRewardFunder reassigns who may fund and recover from the slot.
func (p *Pool) UpdateRewardFunder(index int, newFunder solanago.PublicKey) error {
	if index < 0 || index >= shared.NumRewards {
		return shared.ErrInvalidRewardIndex
	}
	reward := &p.RewardInfos[index]
	if !reward.IsInitialized() {
		return shared.ErrRewardUninitialized
	}
	reward.Funder = newFunder
	return nil
}

// SettlePosition advances the pool's reward clocks, then the position's fee
// and reward checkpoints, up to currentTime. Claim paths call this before
// draining pendings.
func (p *Pool) SettlePosition(position *Position, currentTime uint64) error {
	return p.settlePosition(position, currentTime)
}
