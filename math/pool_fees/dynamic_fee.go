package pool_fees

import (
	"math/big"

	"github.com/krazyTry/cpamm-go/shared"
)

// Dynamic (volatility) fee surcharge, DLMM style: a volatility accumulator
// grows with recent sqrt-price movement measured in bin steps and decays over
// idle time; the surcharge is quadratic in the accumulated movement.

func GetDynamicFeeNumerator(volatilityAccumulator, binStep, variableFeeControl *big.Int) *big.Int {
	squareVfaBin := new(big.Int).Mul(volatilityAccumulator, binStep)
	squareVfaBin.Mul(squareVfaBin, squareVfaBin)
	vFee := new(big.Int).Mul(variableFeeControl, squareVfaBin)
	vFee.Add(vFee, shared.DynamicFeeRoundingOffset)
	return vFee.Div(vFee, shared.DynamicFeeScalingFactor)
}

// GetDeltaBinId measures the price movement between two sqrt prices in bin
// steps. binStepU128 is the bin step as a Q64 ratio increment.
func GetDeltaBinId(binStepU128, sqrtPriceA, sqrtPriceB *big.Int) *big.Int {
	upper, lower := sqrtPriceA, sqrtPriceB
	if upper.Cmp(lower) < 0 {
		upper, lower = lower, upper
	}
	if lower.Sign() == 0 || binStepU128.Sign() == 0 {
		return big.NewInt(0)
	}
	priceRatio := new(big.Int).Lsh(upper, shared.ScaleOffset)
	priceRatio.Div(priceRatio, lower)
	deltaBinId := new(big.Int).Sub(priceRatio, shared.OneQ64)
	deltaBinId.Div(deltaBinId, binStepU128)
	return deltaBinId.Mul(deltaBinId, big.NewInt(2))
}

// GetVolatilityAccumulator folds a new price movement into the reference
// volatility, capped at the configured maximum.
func GetVolatilityAccumulator(volatilityReference, deltaBinId, maxVolatilityAccumulator *big.Int) *big.Int {
	accumulator := new(big.Int).Mul(deltaBinId, big.NewInt(shared.BasisPointMax))
	accumulator.Add(accumulator, volatilityReference)
	if accumulator.Cmp(maxVolatilityAccumulator) > 0 {
		return new(big.Int).Set(maxVolatilityAccumulator)
	}
	return accumulator
}
