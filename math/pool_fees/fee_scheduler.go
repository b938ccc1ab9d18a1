package pool_fees

import (
	"math/big"

	"github.com/krazyTry/cpamm-go/math"
	"github.com/krazyTry/cpamm-go/shared"
)

func GetFeeNumeratorOnLinearFeeScheduler(cliffFeeNumerator, reductionFactor *big.Int, period uint16) *big.Int {
	reduction := new(big.Int).Mul(big.NewInt(int64(period)), reductionFactor)
	if reduction.Cmp(cliffFeeNumerator) > 0 {
		return big.NewInt(0)
	}
	return new(big.Int).Sub(cliffFeeNumerator, reduction)
}

func GetFeeNumeratorOnExponentialFeeScheduler(cliffFeeNumerator, reductionFactor *big.Int, period uint16) *big.Int {
	if period == 0 {
		return new(big.Int).Set(cliffFeeNumerator)
	}
	// base = 1 - reductionFactor/10000 in Q64
	bps := new(big.Int).Lsh(reductionFactor, shared.ScaleOffset)
	bps.Div(bps, big.NewInt(shared.BasisPointMax))
	base := new(big.Int).Sub(shared.OneQ64, bps)
	result := math.Pow(base, big.NewInt(int64(period)))
	return new(big.Int).Div(new(big.Int).Mul(cliffFeeNumerator, result), shared.OneQ64)
}

func GetBaseFeeNumeratorByPeriod(cliffFeeNumerator *big.Int, numberOfPeriod uint16, period, reductionFactor *big.Int, mode shared.BaseFeeMode) (*big.Int, error) {
	periodValue := new(big.Int).Set(period)
	maxPeriod := big.NewInt(int64(numberOfPeriod))
	if periodValue.Cmp(maxPeriod) > 0 {
		periodValue = maxPeriod
	}
	periodNumber := periodValue.Uint64()
	if periodNumber > shared.U16Max {
		return nil, shared.ErrArithmeticOverflow
	}
	switch mode {
	case shared.BaseFeeModeFeeSchedulerLinear:
		return GetFeeNumeratorOnLinearFeeScheduler(cliffFeeNumerator, reductionFactor, uint16(periodNumber)), nil
	case shared.BaseFeeModeFeeSchedulerExponential:
		return GetFeeNumeratorOnExponentialFeeScheduler(cliffFeeNumerator, reductionFactor, uint16(periodNumber)), nil
	default:
		return nil, shared.ErrInvalidParameters
	}
}

// GetBaseFeeNumerator interpolates the decaying base fee for the number of
// whole periods elapsed since activation. Before activation the floor fee
// applies, the same value reached after the schedule is exhausted.
func GetBaseFeeNumerator(cliffFeeNumerator *big.Int, numberOfPeriod uint16, periodFrequency, reductionFactor *big.Int, mode shared.BaseFeeMode, currentPoint, activationPoint *big.Int) (*big.Int, error) {
	if periodFrequency.Sign() == 0 {
		return new(big.Int).Set(cliffFeeNumerator), nil
	}
	var period *big.Int
	if currentPoint.Cmp(activationPoint) < 0 {
		period = big.NewInt(int64(numberOfPeriod))
	} else {
		period = new(big.Int).Sub(currentPoint, activationPoint)
		period.Div(period, periodFrequency)
		if period.Cmp(big.NewInt(int64(numberOfPeriod))) > 0 {
			period = big.NewInt(int64(numberOfPeriod))
		}
	}
	return GetBaseFeeNumeratorByPeriod(cliffFeeNumerator, numberOfPeriod, period, reductionFactor, mode)
}

func GetMinBaseFeeNumerator(cliffFeeNumerator *big.Int, numberOfPeriod uint16, reductionFactor *big.Int, mode shared.BaseFeeMode) (*big.Int, error) {
	return GetBaseFeeNumeratorByPeriod(cliffFeeNumerator, numberOfPeriod, big.NewInt(int64(numberOfPeriod)), reductionFactor, mode)
}

func GetMaxBaseFeeNumerator(cliffFeeNumerator *big.Int) *big.Int {
	return new(big.Int).Set(cliffFeeNumerator)
}
