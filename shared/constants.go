package shared

import "math/big"

const (
	LiquidityScale = 128
	ScaleOffset    = 64

	BasisPointMax  = 10_000
	FeeDenominator = 1_000_000_000

	MinFeeNumerator = 100_000     // 0.01%
	MaxFeeNumerator = 500_000_000 // 50%

	NumRewards        = 2
	MinRewardDuration = 1
	MaxRewardDuration = 31_536_000 // one year in seconds
	RewardRateScale   = 64         // reward rate is Q64

	// Activation buffers: the pre-activation window the whitelisted vault may
	// trade inside, expressed per activation type.
	SlotBuffer = 9000
	TimeBuffer = 3600

	MaxActivationSlotDuration = SlotBuffer * 24 * 31
	MaxActivationTimeDuration = TimeBuffer * 24 * 31

	MaxVestingSlotDuration = SlotBuffer * 24 * 365 * 10
	MaxVestingTimeDuration = TimeBuffer * 24 * 365 * 10

	DynamicFeeFilterPeriodDefault    = 10
	DynamicFeeDecayPeriodDefault     = 120
	DynamicFeeReductionFactorDefault = 5000 // 50%
	BinStepBpsDefault                = 1
	MaxPriceChangeBpsDefault         = 1500 // 15%

	U16Max = 65535
)

var (
	OneQ64         = new(big.Int).Lsh(big.NewInt(1), ScaleOffset)
	MaxExponential = big.NewInt(0x80000)

	MinSqrtPrice = bigIntFromString("4295048016")
	MaxSqrtPrice = bigIntFromString("79226673521066979257578248091")

	DynamicFeeScalingFactor  = bigIntFromString("100000000000")
	DynamicFeeRoundingOffset = bigIntFromString("99999999999")

	BinStepBpsU128Default = bigIntFromString("1844674407370955")

	U128Max = bigIntFromString("340282366920938463463374607431768211455")
	U64Max  = bigIntFromString("18446744073709551615")
)

func bigIntFromString(v string) *big.Int {
	out, ok := new(big.Int).SetString(v, 10)
	if !ok {
		panic("invalid big integer literal")
	}
	return out
}
