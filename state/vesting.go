package state

import (
	"math/big"

	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/cpamm-go/math"
)

// Vesting is a cliff-plus-periodic unlock schedule attached to one position.
// It is never deleted, only exhausted; TotalReleasedLiquidity is monotone.
type Vesting struct {
	Position solanago.PublicKey

	CliffPoint           uint64
	PeriodFrequency      uint64
	CliffUnlockLiquidity binary.Uint128
	LiquidityPerPeriod   binary.Uint128
	NumberOfPeriod       uint16

	TotalReleasedLiquidity binary.Uint128
}

func NewVesting(position solanago.PublicKey, cliffPoint, periodFrequency uint64, cliffUnlockLiquidity, liquidityPerPeriod *big.Int, numberOfPeriod uint16) (*Vesting, error) {
	cliff, err := math.U128FromBig(cliffUnlockLiquidity)
	if err != nil {
		return nil, err
	}
	perPeriod, err := math.U128FromBig(liquidityPerPeriod)
	if err != nil {
		return nil, err
	}
	return &Vesting{
		Position:             position,
		CliffPoint:           cliffPoint,
		PeriodFrequency:      periodFrequency,
		CliffUnlockLiquidity: cliff,
		LiquidityPerPeriod:   perPeriod,
		NumberOfPeriod:       numberOfPeriod,
	}, nil
}

func (v *Vesting) GetTotalLockAmount() *big.Int {
	perPeriods := new(big.Int).Mul(v.LiquidityPerPeriod.BigInt(), big.NewInt(int64(v.NumberOfPeriod)))
	return perPeriods.Add(perPeriods, v.CliffUnlockLiquidity.BigInt())
}

// GetNewReleaseLiquidity computes how much becomes unlockable as of
// currentPoint beyond what was already released: the cliff amount plus whole
// elapsed periods, capped at the schedule total. Idempotent at a fixed point.
func (v *Vesting) GetNewReleaseLiquidity(currentPoint uint64) *big.Int {
	if currentPoint < v.CliffPoint {
		return big.NewInt(0)
	}
	unlocked := new(big.Int).Set(v.CliffUnlockLiquidity.BigInt())
	if v.PeriodFrequency > 0 {
		passedPeriod := new(big.Int).SetUint64((currentPoint - v.CliffPoint) / v.PeriodFrequency)
		maxPeriods := big.NewInt(int64(v.NumberOfPeriod))
		if passedPeriod.Cmp(maxPeriods) > 0 {
			passedPeriod = maxPeriods
		}
		unlocked.Add(unlocked, new(big.Int).Mul(passedPeriod, v.LiquidityPerPeriod.BigInt()))
	}
	released := new(big.Int).Sub(unlocked, v.TotalReleasedLiquidity.BigInt())
	if released.Sign() < 0 {
		return big.NewInt(0)
	}
	return released
}

func (v *Vesting) AccumulateReleasedLiquidity(released *big.Int) error {
	next, err := math.U128FromBig(new(big.Int).Add(v.TotalReleasedLiquidity.BigInt(), released))
	if err != nil {
		return err
	}
	v.TotalReleasedLiquidity = next
	return nil
}

// IsDone reports whether the whole schedule has been released.
func (v *Vesting) IsDone() bool {
	return v.TotalReleasedLiquidity.BigInt().Cmp(v.GetTotalLockAmount()) >= 0
}
