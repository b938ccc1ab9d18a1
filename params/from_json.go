package params

import (
	"github.com/tidwall/gjson"

	"github.com/krazyTry/cpamm-go/math/pool_fees"
	"github.com/krazyTry/cpamm-go/shared"
	"github.com/krazyTry/cpamm-go/u128"
)

// PoolFeeParametersFromJSON parses a fee-parameter document of the shape
// produced by the admin tooling:
//
//	{
//	  "baseFee": {"cliffFeeNumerator": ..., "numberOfPeriod": ...,
//	              "periodFrequency": ..., "reductionFactor": ...,
//	              "feeSchedulerMode": 0|1},
//	  "protocolFeePercent": ..., "partnerFeePercent": ..., "referralFeePercent": ...,
//	  "dynamicFee": {"binStep": ..., "binStepU128": "...", "filterPeriod": ...,
//	                 "decayPeriod": ..., "reductionFactor": ...,
//	                 "maxVolatilityAccumulator": ..., "variableFeeControl": ...}
//	}
//
// The dynamicFee block is optional. The result is validated before return.
func PoolFeeParametersFromJSON(data []byte) (PoolFeeParameters, error) {
	if !gjson.ValidBytes(data) {
		return PoolFeeParameters{}, shared.ErrInvalidParameters
	}
	root := gjson.ParseBytes(data)

	baseFee := root.Get("baseFee")
	out := PoolFeeParameters{
		BaseFee: BaseFeeParameters{
			CliffFeeNumerator: baseFee.Get("cliffFeeNumerator").Uint(),
			NumberOfPeriod:    uint16(baseFee.Get("numberOfPeriod").Uint()),
			PeriodFrequency:   baseFee.Get("periodFrequency").Uint(),
			ReductionFactor:   baseFee.Get("reductionFactor").Uint(),
			FeeSchedulerMode:  shared.BaseFeeMode(baseFee.Get("feeSchedulerMode").Uint()),
		},
		ProtocolFeePercent: uint8(root.Get("protocolFeePercent").Uint()),
		PartnerFeePercent:  uint8(root.Get("partnerFeePercent").Uint()),
		ReferralFeePercent: uint8(root.Get("referralFeePercent").Uint()),
	}

	if dynamicFee := root.Get("dynamicFee"); dynamicFee.Exists() {
		binStepU128, err := u128.FromString(dynamicFee.Get("binStepU128").String())
		if err != nil {
			return PoolFeeParameters{}, shared.ErrInvalidParameters
		}
		out.DynamicFee = &pool_fees.DynamicFeeParameters{
			BinStep:                  uint16(dynamicFee.Get("binStep").Uint()),
			BinStepU128:              binStepU128.BigInt(),
			FilterPeriod:             uint16(dynamicFee.Get("filterPeriod").Uint()),
			DecayPeriod:              uint16(dynamicFee.Get("decayPeriod").Uint()),
			ReductionFactor:          uint16(dynamicFee.Get("reductionFactor").Uint()),
			MaxVolatilityAccumulator: uint32(dynamicFee.Get("maxVolatilityAccumulator").Uint()),
			VariableFeeControl:       uint32(dynamicFee.Get("variableFeeControl").Uint()),
		}
	}

	if err := out.Validate(); err != nil {
		return PoolFeeParameters{}, err
	}
	return out, nil
}
