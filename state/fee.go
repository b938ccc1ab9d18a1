package state

import (
	"math/big"

	binary "github.com/gagliardetto/binary"

	"github.com/krazyTry/cpamm-go/math"
	"github.com/krazyTry/cpamm-go/math/pool_fees"
	"github.com/krazyTry/cpamm-go/shared"
)

// BaseFeeStruct is the pool's copy of the base fee schedule.
type BaseFeeStruct struct {
	CliffFeeNumerator uint64
	FeeSchedulerMode  shared.BaseFeeMode
	NumberOfPeriod    uint16
	PeriodFrequency   uint64
	ReductionFactor   uint64
}

func (b BaseFeeStruct) Handler() pool_fees.BaseFeeHandler {
	return pool_fees.FeeScheduler{
		CliffFeeNumerator: new(big.Int).SetUint64(b.CliffFeeNumerator),
		NumberOfPeriod:    b.NumberOfPeriod,
		PeriodFrequency:   new(big.Int).SetUint64(b.PeriodFrequency),
		ReductionFactor:   new(big.Int).SetUint64(b.ReductionFactor),
		Mode:              b.FeeSchedulerMode,
	}
}

// DynamicFeeStruct carries the volatility-fee configuration and its mutable
// tracking state.
type DynamicFeeStruct struct {
	Initialized              uint8
	MaxVolatilityAccumulator uint32
	VariableFeeControl       uint32
	BinStep                  uint16
	FilterPeriod             uint16
	DecayPeriod              uint16
	ReductionFactor          uint16
	LastUpdateTimestamp      uint64
	BinStepU128              binary.Uint128
	SqrtPriceReference       binary.Uint128
	VolatilityAccumulator    binary.Uint128
	VolatilityReference      binary.Uint128
}

func (d *DynamicFeeStruct) IsEnabled() bool {
	return d.Initialized != 0
}

// UpdateReferences refreshes the price reference and decays the volatility
// reference once the filter period has passed. Called before the swap price
// moves so one elapsed interval never mixes two references.
func (d *DynamicFeeStruct) UpdateReferences(sqrtPrice *big.Int, currentTimestamp uint64) error {
	if currentTimestamp < d.LastUpdateTimestamp {
		return shared.ErrInvalidParameters
	}
	elapsed := currentTimestamp - d.LastUpdateTimestamp
	if elapsed < uint64(d.FilterPeriod) {
		return nil
	}
	ref, err := math.U128FromBig(sqrtPrice)
	if err != nil {
		return err
	}
	d.SqrtPriceReference = ref
	if elapsed >= uint64(d.DecayPeriod) {
		d.VolatilityReference = binary.Uint128{}
	} else {
		decayed := new(big.Int).Mul(d.VolatilityAccumulator.BigInt(), big.NewInt(int64(d.ReductionFactor)))
		decayed.Div(decayed, big.NewInt(shared.BasisPointMax))
		vr, err := math.U128FromBig(decayed)
		if err != nil {
			return err
		}
		d.VolatilityReference = vr
	}
	return nil
}

// UpdateVolatilityAccumulator folds the movement to nextSqrtPrice into the
// accumulator, capped at the configured maximum.
func (d *DynamicFeeStruct) UpdateVolatilityAccumulator(nextSqrtPrice *big.Int) error {
	deltaBinId := pool_fees.GetDeltaBinId(d.BinStepU128.BigInt(), d.SqrtPriceReference.BigInt(), nextSqrtPrice)
	accumulator := pool_fees.GetVolatilityAccumulator(
		d.VolatilityReference.BigInt(),
		deltaBinId,
		new(big.Int).SetUint64(uint64(d.MaxVolatilityAccumulator)),
	)
	va, err := math.U128FromBig(accumulator)
	if err != nil {
		return err
	}
	d.VolatilityAccumulator = va
	return nil
}

func (d *DynamicFeeStruct) GetVariableFeeNumerator() *big.Int {
	if !d.IsEnabled() {
		return big.NewInt(0)
	}
	return pool_fees.GetDynamicFeeNumerator(
		d.VolatilityAccumulator.BigInt(),
		big.NewInt(int64(d.BinStep)),
		new(big.Int).SetUint64(uint64(d.VariableFeeControl)),
	)
}

// PoolFeesStruct is the fee configuration a pool copies from its config at
// creation, plus the dynamic-fee runtime state.
type PoolFeesStruct struct {
	BaseFee            BaseFeeStruct
	ProtocolFeePercent uint8
	PartnerFeePercent  uint8
	ReferralFeePercent uint8
	DynamicFee         DynamicFeeStruct
}

// GetTotalTradingFee returns the combined base and variable fee numerator,
// capped so the total can never reach 100%.
func (p *PoolFeesStruct) GetTotalTradingFee(currentPoint, activationPoint *big.Int) (*big.Int, error) {
	baseFeeNumerator, err := p.BaseFee.Handler().GetBaseFeeNumerator(currentPoint, activationPoint)
	if err != nil {
		return nil, err
	}
	totalFee := new(big.Int).Add(p.DynamicFee.GetVariableFeeNumerator(), baseFeeNumerator)
	if totalFee.Cmp(big.NewInt(shared.MaxFeeNumerator)) > 0 {
		return big.NewInt(shared.MaxFeeNumerator), nil
	}
	return totalFee, nil
}

func (p *PoolFeesStruct) GetFeeOnAmount(amount, tradeFeeNumerator *big.Int, hasReferral, hasPartner bool) (shared.FeeOnAmountResult, error) {
	return math.GetFeeOnAmount(amount, tradeFeeNumerator, p.ProtocolFeePercent, p.PartnerFeePercent, p.ReferralFeePercent, hasReferral, hasPartner)
}
