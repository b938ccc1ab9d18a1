package state

import (
	"math/big"

	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/cpamm-go/math"
	"github.com/krazyTry/cpamm-go/shared"
)

// RewardInfo is one of the pool's emission slots. The accumulator is reward
// per unit of liquidity scaled by 2^192 (Q64 rate times the 2^128 liquidity
// scale); the rate itself is Q64 tokens per second.
type RewardInfo struct {
	Initialized          uint8
	RewardTokenFlag      shared.TokenFlag
	Mint                 solanago.PublicKey
	Vault                solanago.PublicKey
	Funder               solanago.PublicKey
	RewardDuration       uint64
	RewardDurationEnd    uint64
	RewardRate           binary.Uint128
	RewardPerTokenStored [32]uint8
	LastUpdateTime       uint64
	// Seconds the emission ran against an empty pool; that slice of the funded
	// amount was never owed to anyone and stays recoverable by the funder.
	CumulativeSecondsWithEmptyLiquidityReward uint64
}

func (r *RewardInfo) IsInitialized() bool {
	return r.Initialized != 0
}

func (r *RewardInfo) initialize(mint, vault, funder solanago.PublicKey, tokenFlag shared.TokenFlag, duration uint64) {
	r.Initialized = 1
	r.RewardTokenFlag = tokenFlag
	r.Mint = mint
	r.Vault = vault
	r.Funder = funder
	r.RewardDuration = duration
}

// updateRewards advances the accumulator to currentTime using the current
// rate. Elapsed time against zero liquidity is banked as ineligible seconds
// instead of being divided away.
func (r *RewardInfo) updateRewards(poolLiquidity *big.Int, currentTime uint64) error {
	if !r.IsInitialized() {
		return nil
	}
	lastApplicable := currentTime
	if r.RewardDurationEnd < lastApplicable {
		lastApplicable = r.RewardDurationEnd
	}
	if lastApplicable <= r.LastUpdateTime {
		return nil
	}
	elapsed := lastApplicable - r.LastUpdateTime
	if poolLiquidity.Sign() == 0 {
		r.CumulativeSecondsWithEmptyLiquidityReward += elapsed
		r.LastUpdateTime = lastApplicable
		return nil
	}
	emitted := new(big.Int).Mul(new(big.Int).SetUint64(elapsed), r.RewardRate.BigInt())
	perToken := new(big.Int).Lsh(emitted, shared.LiquidityScale)
	perToken.Div(perToken, poolLiquidity)

	total := new(big.Int).Add(math.LeBytesToBig(r.RewardPerTokenStored[:]), perToken)
	stored, err := math.BigToLeBytes32(total)
	if err != nil {
		return err
	}
	r.RewardPerTokenStored = stored
	r.LastUpdateTime = lastApplicable
	return nil
}

// fund recomputes the emission rate for a fresh duration window. With
// carryForward the still-unemitted remainder of the running window is folded
// into the new rate; the accumulator must already be settled to currentTime.
func (r *RewardInfo) fund(amount uint64, carryForward bool, currentTime uint64) error {
	total := new(big.Int).SetUint64(amount)
	if carryForward && currentTime < r.RewardDurationEnd {
		remaining := new(big.Int).SetUint64(r.RewardDurationEnd - currentTime)
		leftover := new(big.Int).Mul(r.RewardRate.BigInt(), remaining)
		leftover.Rsh(leftover, shared.RewardRateScale)
		total.Add(total, leftover)
	}
	if total.Sign() == 0 {
		return shared.ErrAmountIsZero
	}
	rate := new(big.Int).Lsh(total, shared.RewardRateScale)
	rate.Div(rate, new(big.Int).SetUint64(r.RewardDuration))
	rr, err := math.U128FromBig(rate)
	if err != nil {
		return err
	}
	r.RewardRate = rr
	r.RewardDurationEnd = currentTime + r.RewardDuration
	r.LastUpdateTime = currentTime
	return nil
}

// ineligibleAmount converts the banked empty-liquidity seconds into tokens.
func (r *RewardInfo) ineligibleAmount() (*big.Int, error) {
	amount := new(big.Int).Mul(new(big.Int).SetUint64(r.CumulativeSecondsWithEmptyLiquidityReward), r.RewardRate.BigInt())
	amount.Rsh(amount, shared.RewardRateScale)
	return amount, nil
}

// UserRewardInfo is a position's per-slot checkpoint.
type UserRewardInfo struct {
	RewardPerTokenCheckpoint [32]uint8
	RewardPendings           uint64
}

// accrue settles the newly earned reward against the slot accumulator and
// advances the checkpoint so nothing is counted twice.
func (u *UserRewardInfo) accrue(rewardPerTokenStored [32]uint8, positionLiquidity *big.Int) error {
	acc := math.LeBytesToBig(rewardPerTokenStored[:])
	delta := new(big.Int).Sub(acc, math.LeBytesToBig(u.RewardPerTokenCheckpoint[:]))
	if delta.Sign() < 0 {
		return shared.ErrArithmeticUnderflow
	}
	newReward := new(big.Int).Mul(delta, positionLiquidity)
	newReward.Rsh(newReward, shared.LiquidityScale+shared.RewardRateScale)

	pending := new(big.Int).Add(new(big.Int).SetUint64(u.RewardPendings), newReward)
	pendingU64, err := math.CheckedU64(pending)
	if err != nil {
		return err
	}
	u.RewardPendings = pendingU64
	u.RewardPerTokenCheckpoint = rewardPerTokenStored
	return nil
}
