package params

import (
	"math/big"

	"github.com/krazyTry/cpamm-go/math/pool_fees"
	"github.com/krazyTry/cpamm-go/shared"
)

// BaseFeeParameters configures the decaying base fee schedule. All-zero
// schedule fields mean a constant fee at the cliff numerator.
type BaseFeeParameters struct {
	CliffFeeNumerator uint64
	NumberOfPeriod    uint16
	PeriodFrequency   uint64
	ReductionFactor   uint64
	FeeSchedulerMode  shared.BaseFeeMode
}

func (b BaseFeeParameters) Validate() error {
	return pool_fees.ValidateFeeScheduler(
		new(big.Int).SetUint64(b.CliffFeeNumerator),
		b.NumberOfPeriod,
		new(big.Int).SetUint64(b.PeriodFrequency),
		new(big.Int).SetUint64(b.ReductionFactor),
		b.FeeSchedulerMode,
	)
}

// PoolFeeParameters is the full fee surface of a config or customizable pool.
type PoolFeeParameters struct {
	BaseFee            BaseFeeParameters
	ProtocolFeePercent uint8
	PartnerFeePercent  uint8
	ReferralFeePercent uint8
	DynamicFee         *pool_fees.DynamicFeeParameters
}

func (p PoolFeeParameters) Validate() error {
	if p.ProtocolFeePercent > 100 || p.PartnerFeePercent > 100 || p.ReferralFeePercent > 100 {
		return shared.ErrInvalidParameters
	}
	if err := p.BaseFee.Validate(); err != nil {
		return err
	}
	if p.DynamicFee != nil {
		return pool_fees.ValidateDynamicFee(
			p.DynamicFee.BinStep,
			p.DynamicFee.BinStepU128,
			p.DynamicFee.FilterPeriod,
			p.DynamicFee.DecayPeriod,
			p.DynamicFee.ReductionFactor,
			p.DynamicFee.MaxVolatilityAccumulator,
			p.DynamicFee.VariableFeeControl,
		)
	}
	return nil
}

// VestingParameters describes a lock-position schedule. A nil CliffPoint
// starts vesting immediately.
type VestingParameters struct {
	CliffPoint           *uint64
	PeriodFrequency      uint64
	CliffUnlockLiquidity *big.Int
	LiquidityPerPeriod   *big.Int
	NumberOfPeriod       uint16
}

func (v VestingParameters) GetCliffPoint(currentPoint uint64) uint64 {
	if v.CliffPoint != nil {
		return *v.CliffPoint
	}
	return currentPoint
}

func (v VestingParameters) cliffUnlockLiquidity() *big.Int {
	if v.CliffUnlockLiquidity == nil {
		return big.NewInt(0)
	}
	return v.CliffUnlockLiquidity
}

func (v VestingParameters) liquidityPerPeriod() *big.Int {
	if v.LiquidityPerPeriod == nil {
		return big.NewInt(0)
	}
	return v.LiquidityPerPeriod
}

func (v VestingParameters) GetTotalLockAmount() *big.Int {
	total := new(big.Int).Mul(v.liquidityPerPeriod(), big.NewInt(int64(v.NumberOfPeriod)))
	return total.Add(total, v.cliffUnlockLiquidity())
}

// Validate enforces the vesting invariants: a cliff no earlier than now, a
// positive schedule whenever periods are configured, a bounded total
// duration, and a non-zero lock amount.
func (v VestingParameters) Validate(currentPoint, maxVestingDuration uint64) error {
	cliffPoint := v.GetCliffPoint(currentPoint)
	if cliffPoint < currentPoint {
		return shared.ErrInvalidVestingInfo
	}
	if v.NumberOfPeriod > 0 {
		if v.PeriodFrequency == 0 || v.liquidityPerPeriod().Sign() == 0 {
			return shared.ErrInvalidVestingInfo
		}
	}
	periodDuration := new(big.Int).Mul(
		new(big.Int).SetUint64(v.PeriodFrequency),
		big.NewInt(int64(v.NumberOfPeriod)),
	)
	vestingDuration := new(big.Int).SetUint64(cliffPoint - currentPoint)
	vestingDuration.Add(vestingDuration, periodDuration)
	if vestingDuration.Cmp(new(big.Int).SetUint64(maxVestingDuration)) > 0 {
		return shared.ErrInvalidVestingInfo
	}
	if v.GetTotalLockAmount().Sign() == 0 {
		return shared.ErrInvalidVestingInfo
	}
	return nil
}
