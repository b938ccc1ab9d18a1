package pool_fees

import (
	"math/big"

	"github.com/krazyTry/cpamm-go/shared"
)

// BaseFeeHandler is the closed set of base-fee behaviours a pool can carry.
// Handlers are constructed per invocation from the pool snapshot; they hold no
// mutable state of their own.
type BaseFeeHandler interface {
	Validate(collectFeeMode shared.CollectFeeMode, activationType shared.ActivationType) error
	GetBaseFeeNumerator(currentPoint, activationPoint *big.Int) (*big.Int, error)
	GetMinBaseFeeNumerator() *big.Int
	GetMaxBaseFeeNumerator() *big.Int
}

// FeeScheduler implements BaseFeeHandler: a constant fee when no schedule is
// configured, otherwise a cliff numerator decaying toward a floor over elapsed
// periods since activation.
type FeeScheduler struct {
	CliffFeeNumerator *big.Int
	NumberOfPeriod    uint16
	PeriodFrequency   *big.Int
	ReductionFactor   *big.Int
	Mode              shared.BaseFeeMode
}

func (f FeeScheduler) Validate(_ shared.CollectFeeMode, _ shared.ActivationType) error {
	return ValidateFeeScheduler(f.CliffFeeNumerator, f.NumberOfPeriod, f.PeriodFrequency, f.ReductionFactor, f.Mode)
}

func (f FeeScheduler) GetBaseFeeNumerator(currentPoint, activationPoint *big.Int) (*big.Int, error) {
	return GetBaseFeeNumerator(f.CliffFeeNumerator, f.NumberOfPeriod, f.PeriodFrequency, f.ReductionFactor, f.Mode, currentPoint, activationPoint)
}

func (f FeeScheduler) GetMinBaseFeeNumerator() *big.Int {
	minFee, _ := GetMinBaseFeeNumerator(f.CliffFeeNumerator, f.NumberOfPeriod, f.ReductionFactor, f.Mode)
	return minFee
}

func (f FeeScheduler) GetMaxBaseFeeNumerator() *big.Int {
	return GetMaxBaseFeeNumerator(f.CliffFeeNumerator)
}
