package pool_fees

import (
	"math/big"

	"github.com/krazyTry/cpamm-go/shared"
)

func ValidateFeeFraction(numerator, denominator *big.Int) error {
	if denominator.Sign() == 0 || numerator.Cmp(denominator) >= 0 {
		return shared.ErrInvalidParameters
	}
	return nil
}

func ValidateFeeScheduler(cliffFeeNumerator *big.Int, numberOfPeriod uint16, periodFrequency, reductionFactor *big.Int, mode shared.BaseFeeMode) error {
	if mode > shared.BaseFeeModeFeeSchedulerExponential {
		return shared.ErrInvalidParameters
	}
	// schedule fields are all-zero or all-set
	if periodFrequency.Sign() != 0 || numberOfPeriod != 0 || reductionFactor.Sign() != 0 {
		if numberOfPeriod == 0 || periodFrequency.Sign() == 0 || reductionFactor.Sign() == 0 {
			return shared.ErrInvalidParameters
		}
	}
	minFeeNumerator, err := GetMinBaseFeeNumerator(cliffFeeNumerator, numberOfPeriod, reductionFactor, mode)
	if err != nil {
		return err
	}
	maxFeeNumerator := GetMaxBaseFeeNumerator(cliffFeeNumerator)
	if err := ValidateFeeFraction(minFeeNumerator, big.NewInt(shared.FeeDenominator)); err != nil {
		return err
	}
	if err := ValidateFeeFraction(maxFeeNumerator, big.NewInt(shared.FeeDenominator)); err != nil {
		return err
	}
	if minFeeNumerator.Cmp(big.NewInt(shared.MinFeeNumerator)) < 0 {
		return shared.ErrInvalidParameters
	}
	if maxFeeNumerator.Cmp(big.NewInt(shared.MaxFeeNumerator)) > 0 {
		return shared.ErrInvalidParameters
	}
	return nil
}

func ValidateDynamicFee(binStep uint16, binStepU128 *big.Int, filterPeriod, decayPeriod uint16, reductionFactor uint16, maxVolatilityAccumulator, variableFeeControl uint32) error {
	if binStep == 0 || binStepU128.Sign() == 0 {
		return shared.ErrInvalidParameters
	}
	if filterPeriod >= decayPeriod {
		return shared.ErrInvalidParameters
	}
	if reductionFactor > shared.BasisPointMax {
		return shared.ErrInvalidParameters
	}
	if maxVolatilityAccumulator == 0 || variableFeeControl == 0 {
		return shared.ErrInvalidParameters
	}
	return nil
}
