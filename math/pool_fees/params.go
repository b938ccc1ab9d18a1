package pool_fees

import (
	"math/big"

	"github.com/krazyTry/cpamm-go/shared"
)

// DynamicFeeParameters is the configuration surface of the volatility fee.
type DynamicFeeParameters struct {
	BinStep                  uint16
	BinStepU128              *big.Int
	FilterPeriod             uint16
	DecayPeriod              uint16
	ReductionFactor          uint16
	MaxVolatilityAccumulator uint32
	VariableFeeControl       uint32
}

// GetDynamicFeeParams derives the default dynamic-fee configuration from the
// base fee and the largest price change the surcharge should saturate at. The
// variable fee control is sized so the surcharge tops out at 20% of the base fee.
func GetDynamicFeeParams(baseFeeBps uint16, maxPriceChangeBps uint16) (DynamicFeeParameters, error) {
	if maxPriceChangeBps == 0 {
		maxPriceChangeBps = shared.MaxPriceChangeBpsDefault
	}
	if maxPriceChangeBps > shared.MaxPriceChangeBpsDefault {
		return DynamicFeeParameters{}, shared.ErrInvalidParameters
	}

	priceRatio := new(big.Float).SetPrec(256).SetFloat64(float64(maxPriceChangeBps)/float64(shared.BasisPointMax) + 1)
	sqrtPriceRatio := new(big.Float).SetPrec(256).Sqrt(priceRatio)
	sqrtPriceRatio.Mul(sqrtPriceRatio, new(big.Float).SetInt(shared.OneQ64))
	sqrtPriceRatioQ64, _ := sqrtPriceRatio.Int(nil)

	deltaBinId := new(big.Int).Sub(sqrtPriceRatioQ64, shared.OneQ64)
	deltaBinId.Div(deltaBinId, shared.BinStepBpsU128Default)
	deltaBinId.Mul(deltaBinId, big.NewInt(2))

	maxVolatilityAccumulator := new(big.Int).Mul(deltaBinId, big.NewInt(shared.BasisPointMax))
	squareVfaBin := new(big.Int).Mul(maxVolatilityAccumulator, big.NewInt(shared.BinStepBpsDefault))
	squareVfaBin.Mul(squareVfaBin, squareVfaBin)
	if squareVfaBin.Sign() == 0 {
		return DynamicFeeParameters{}, shared.ErrInvalidParameters
	}

	baseFeeNumerator := toNumerator(big.NewInt(int64(baseFeeBps)))
	maxDynamicFeeNumerator := new(big.Int).Mul(baseFeeNumerator, big.NewInt(20))
	maxDynamicFeeNumerator.Div(maxDynamicFeeNumerator, big.NewInt(100))
	vFee := new(big.Int).Mul(maxDynamicFeeNumerator, shared.DynamicFeeScalingFactor)
	vFee.Sub(vFee, shared.DynamicFeeRoundingOffset)
	variableFeeControl := new(big.Int).Div(vFee, squareVfaBin)

	return DynamicFeeParameters{
		BinStep:                  shared.BinStepBpsDefault,
		BinStepU128:              new(big.Int).Set(shared.BinStepBpsU128Default),
		FilterPeriod:             shared.DynamicFeeFilterPeriodDefault,
		DecayPeriod:              shared.DynamicFeeDecayPeriodDefault,
		ReductionFactor:          shared.DynamicFeeReductionFactorDefault,
		MaxVolatilityAccumulator: uint32(maxVolatilityAccumulator.Uint64()),
		VariableFeeControl:       uint32(variableFeeControl.Uint64()),
	}, nil
}
