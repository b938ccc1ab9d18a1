package state

import (
	"math/big"

	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/cpamm-go/math"
	"github.com/krazyTry/cpamm-go/shared"
)

// Position is one owner's liquidity in one pool. Total liquidity is the sum
// of the three buckets; only the unlocked bucket is directly removable.
type Position struct {
	Pool  solanago.PublicKey
	Owner solanago.PublicKey

	UnlockedLiquidity        binary.Uint128
	VestedLiquidity          binary.Uint128
	PermanentLockedLiquidity binary.Uint128

	FeeAPerTokenCheckpoint [32]uint8
	FeeBPerTokenCheckpoint [32]uint8
	FeeAPending            uint64
	FeeBPending            uint64

	RewardInfos [shared.NumRewards]UserRewardInfo
}

func NewPosition(pool, owner solanago.PublicKey) *Position {
	return &Position{Pool: pool, Owner: owner}
}

func (p *Position) GetTotalLiquidity() *big.Int {
	total := new(big.Int).Add(p.UnlockedLiquidity.BigInt(), p.VestedLiquidity.BigInt())
	return total.Add(total, p.PermanentLockedLiquidity.BigInt())
}

func (p *Position) IsEmpty() bool {
	return p.GetTotalLiquidity().Sign() == 0 && p.FeeAPending == 0 && p.FeeBPending == 0
}

// UpdateFees settles pending fees against the pool accumulators and advances
// both checkpoints. Every liquidity change runs through here first.
func (p *Position) UpdateFees(feeAPerLiquidity, feeBPerLiquidity [32]uint8) error {
	totalLiquidity := p.GetTotalLiquidity()

	deltaA := new(big.Int).Sub(math.LeBytesToBig(feeAPerLiquidity[:]), math.LeBytesToBig(p.FeeAPerTokenCheckpoint[:]))
	deltaB := new(big.Int).Sub(math.LeBytesToBig(feeBPerLiquidity[:]), math.LeBytesToBig(p.FeeBPerTokenCheckpoint[:]))
	if deltaA.Sign() < 0 || deltaB.Sign() < 0 {
		return shared.ErrArithmeticUnderflow
	}

	feeA := math.SafeShr(new(big.Int).Mul(totalLiquidity, deltaA), shared.LiquidityScale)
	feeB := math.SafeShr(new(big.Int).Mul(totalLiquidity, deltaB), shared.LiquidityScale)

	pendingA, err := math.CheckedU64(new(big.Int).Add(new(big.Int).SetUint64(p.FeeAPending), feeA))
	if err != nil {
		return err
	}
	pendingB, err := math.CheckedU64(new(big.Int).Add(new(big.Int).SetUint64(p.FeeBPending), feeB))
	if err != nil {
		return err
	}

	p.FeeAPending = pendingA
	p.FeeBPending = pendingB
	p.FeeAPerTokenCheckpoint = feeAPerLiquidity
	p.FeeBPerTokenCheckpoint = feeBPerLiquidity
	return nil
}

// UpdateRewards settles every initialized reward slot for this position.
func (p *Position) UpdateRewards(pool *Pool) error {
	totalLiquidity := p.GetTotalLiquidity()
	for i := range pool.RewardInfos {
		if !pool.RewardInfos[i].IsInitialized() {
			continue
		}
		if err := p.RewardInfos[i].accrue(pool.RewardInfos[i].RewardPerTokenStored, totalLiquidity); err != nil {
			return err
		}
	}
	return nil
}

func (p *Position) addLiquidity(delta *big.Int) error {
	next, err := math.U128FromBig(new(big.Int).Add(p.UnlockedLiquidity.BigInt(), delta))
	if err != nil {
		return err
	}
	p.UnlockedLiquidity = next
	return nil
}

func (p *Position) removeUnlockedLiquidity(delta *big.Int) error {
	if delta.Cmp(p.UnlockedLiquidity.BigInt()) > 0 {
		return shared.ErrInsufficientLiquidity
	}
	next, err := math.U128FromBig(new(big.Int).Sub(p.UnlockedLiquidity.BigInt(), delta))
	if err != nil {
		return err
	}
	p.UnlockedLiquidity = next
	return nil
}

// Lock moves liquidity from the unlocked to the vested bucket when a vesting
// schedule is attached.
func (p *Position) Lock(totalLockLiquidity *big.Int) error {
	if totalLockLiquidity.Cmp(p.UnlockedLiquidity.BigInt()) > 0 {
		return shared.ErrInsufficientLiquidity
	}
	unlocked, err := math.U128FromBig(new(big.Int).Sub(p.UnlockedLiquidity.BigInt(), totalLockLiquidity))
	if err != nil {
		return err
	}
	vested, err := math.U128FromBig(new(big.Int).Add(p.VestedLiquidity.BigInt(), totalLockLiquidity))
	if err != nil {
		return err
	}
	p.UnlockedLiquidity = unlocked
	p.VestedLiquidity = vested
	return nil
}

// ReleaseVestedLiquidity moves newly unlockable liquidity back to the
// unlocked bucket after a vesting refresh.
func (p *Position) ReleaseVestedLiquidity(released *big.Int) error {
	if released.Cmp(p.VestedLiquidity.BigInt()) > 0 {
		return shared.ErrInsufficientLiquidity
	}
	vested, err := math.U128FromBig(new(big.Int).Sub(p.VestedLiquidity.BigInt(), released))
	if err != nil {
		return err
	}
	unlocked, err := math.U128FromBig(new(big.Int).Add(p.UnlockedLiquidity.BigInt(), released))
	if err != nil {
		return err
	}
	p.VestedLiquidity = vested
	p.UnlockedLiquidity = unlocked
	return nil
}

// PermanentLock irreversibly moves unlocked liquidity into the permanent
// bucket. The pool-side counter is mirrored by the caller in the same
// operation.
func (p *Position) PermanentLock(amount *big.Int) error {
	if amount.Cmp(p.UnlockedLiquidity.BigInt()) > 0 {
		return shared.ErrInsufficientLiquidity
	}
	unlocked, err := math.U128FromBig(new(big.Int).Sub(p.UnlockedLiquidity.BigInt(), amount))
	if err != nil {
		return err
	}
	permanent, err := math.U128FromBig(new(big.Int).Add(p.PermanentLockedLiquidity.BigInt(), amount))
	if err != nil {
		return err
	}
	p.UnlockedLiquidity = unlocked
	p.PermanentLockedLiquidity = permanent
	return nil
}

// ClaimFees zeroes the pending fee counters and returns the claimed amounts.
func (p *Position) ClaimFees() (uint64, uint64) {
	feeA, feeB := p.FeeAPending, p.FeeBPending
	p.FeeAPending = 0
	p.FeeBPending = 0
	return feeA, feeB
}

// ClaimReward zeroes one slot's pending counter and returns the amount.
func (p *Position) ClaimReward(index int) (uint64, error) {
	if index < 0 || index >= shared.NumRewards {
		return 0, shared.ErrInvalidRewardIndex
	}
	amount := p.RewardInfos[index].RewardPendings
	p.RewardInfos[index].RewardPendings = 0
	return amount, nil
}
