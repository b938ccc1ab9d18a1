package shared

import "errors"

// Error taxonomy of the engine. Every failure surfaced by a component maps onto
// exactly one of these, so a host can branch on the kind with errors.Is.
var (
	ErrInvalidPriceRange            = errors.New("invalid price range")
	ErrInvalidParameters            = errors.New("invalid parameters")
	ErrAmountIsZero                 = errors.New("amount is zero")
	ErrExceededSlippage             = errors.New("exceeded slippage tolerance")
	ErrInvalidTokenBadge            = errors.New("invalid token badge")
	ErrPoolDisabled                 = errors.New("pool disabled")
	ErrInvalidVestingInfo           = errors.New("invalid vesting info")
	ErrInsufficientLiquidity        = errors.New("insufficient liquidity")
	ErrArithmeticOverflow           = errors.New("arithmetic overflow")
	ErrArithmeticUnderflow          = errors.New("arithmetic underflow")
	ErrDivisionByZero               = errors.New("division by zero")
	ErrUnauthorized                 = errors.New("unauthorized")
	ErrRewardSlotAlreadyInitialized = errors.New("reward slot already initialized")
	ErrRewardUninitialized          = errors.New("reward slot uninitialized")
	ErrRewardDurationNotElapsed     = errors.New("reward duration not elapsed")
	ErrInvalidRewardIndex           = errors.New("invalid reward index")
	ErrInvalidRewardDuration        = errors.New("invalid reward duration")
	ErrPositionNotEmpty             = errors.New("position is not empty")
	ErrConfigReferenced             = errors.New("config still referenced by pools")
)
