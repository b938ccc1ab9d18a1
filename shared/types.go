package shared

import "math/big"

// Enums and common types shared by math, state and the engine.
type Rounding uint8

const (
	RoundingUp   Rounding = 0
	RoundingDown Rounding = 1
)

type BaseFeeMode uint8

const (
	BaseFeeModeFeeSchedulerLinear      BaseFeeMode = 0
	BaseFeeModeFeeSchedulerExponential BaseFeeMode = 1
)

type CollectFeeMode uint8

const (
	CollectFeeModeBothToken CollectFeeMode = 0
	CollectFeeModeOnlyB     CollectFeeMode = 1
)

type TradeDirection uint8

const (
	TradeDirectionAtoB TradeDirection = 0
	TradeDirectionBtoA TradeDirection = 1
)

type ActivationType uint8

const (
	ActivationTypeSlot      ActivationType = 0
	ActivationTypeTimestamp ActivationType = 1
)

type PoolStatus uint8

const (
	PoolStatusEnable  PoolStatus = 0
	PoolStatusDisable PoolStatus = 1
)

type PoolType uint8

const (
	PoolTypePermissionless PoolType = 0
	PoolTypeCustomizable   PoolType = 1
)

type TokenFlag uint8

const (
	TokenFlagStandard  TokenFlag = 0
	TokenFlagToken2022 TokenFlag = 1
)

// FeeMode resolves which side of a trade fees are charged on.
type FeeMode struct {
	FeesOnInput  bool
	FeesOnTokenA bool
	HasReferral  bool
}

type SplitFees struct {
	LpFee       *big.Int
	ProtocolFee *big.Int
	PartnerFee  *big.Int
	ReferralFee *big.Int
}

type FeeOnAmountResult struct {
	Amount      *big.Int
	LpFee       *big.Int
	ProtocolFee *big.Int
	PartnerFee  *big.Int
	ReferralFee *big.Int
}

// SwapResult carries the state deltas of one swap before they are applied.
type SwapResult struct {
	OutputAmount  *big.Int
	NextSqrtPrice *big.Int
	LpFee         *big.Int
	ProtocolFee   *big.Int
	PartnerFee    *big.Int
	ReferralFee   *big.Int
}

type ModifyLiquidityResult struct {
	AmountA *big.Int
	AmountB *big.Int
}
