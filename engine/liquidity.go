package engine

import (
	"math/big"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/cpamm-go/access"
	"github.com/krazyTry/cpamm-go/math"
	"github.com/krazyTry/cpamm-go/shared"
	"github.com/krazyTry/cpamm-go/state"
)

// CreatePosition opens an empty position for owner in the pool.
func (e *Engine) CreatePosition(pool *state.Pool, poolKey, owner solanago.PublicKey, clock Clock) (*state.Position, error) {
	if !access.NewPoolAccessValidator(pool, clock).CanCreatePosition() {
		return nil, shared.ErrPoolDisabled
	}
	pool.Metrics.TotalPosition++
	return state.NewPosition(poolKey, owner), nil
}

// ClosePosition retires a fully drained position.
func (e *Engine) ClosePosition(sender solanago.PublicKey, pool *state.Pool, position *state.Position) error {
	if !sender.Equals(position.Owner) {
		return shared.ErrUnauthorized
	}
	if !position.IsEmpty() {
		return shared.ErrPositionNotEmpty
	}
	if pool.Metrics.TotalPosition > 0 {
		pool.Metrics.TotalPosition--
	}
	return nil
}

type AddLiquidityParams struct {
	Pool     *state.Pool
	Position *state.Position

	LiquidityDelta *big.Int

	// Deposit caps, compared against transfer-fee-included amounts.
	TokenAAmountThreshold uint64
	TokenBAmountThreshold uint64

	TokenATransferFee *math.TransferFeeConfig
	TokenBTransferFee *math.TransferFeeConfig
}

// ModifyLiquidityResult is the token movement of one add or remove, grossed
// up (adds) or netted down (removals) by the mints' transfer fees.
type ModifyLiquidityResult struct {
	TokenAAmount uint64
	TokenBAmount uint64
}

// AddLiquidity deposits both sides at the current price. The position's
// accruals are settled before its liquidity grows.
func (e *Engine) AddLiquidity(sender solanago.PublicKey, p AddLiquidityParams, clock Clock) (ModifyLiquidityResult, error) {
	if !sender.Equals(p.Position.Owner) {
		return ModifyLiquidityResult{}, shared.ErrUnauthorized
	}
	if p.LiquidityDelta == nil || p.LiquidityDelta.Sign() == 0 {
		return ModifyLiquidityResult{}, shared.ErrAmountIsZero
	}
	if !access.NewPoolAccessValidator(p.Pool, clock).CanAddLiquidity() {
		return ModifyLiquidityResult{}, shared.ErrPoolDisabled
	}

	amounts, err := p.Pool.GetAmountsForModifyLiquidity(p.LiquidityDelta, shared.RoundingUp)
	if err != nil {
		return ModifyLiquidityResult{}, err
	}
	if amounts.AmountA.Sign() == 0 && amounts.AmountB.Sign() == 0 {
		return ModifyLiquidityResult{}, shared.ErrAmountIsZero
	}

	totalAmountA := math.CalculateTransferFeeIncludedAmount(amounts.AmountA, p.TokenATransferFee).Amount
	totalAmountB := math.CalculateTransferFeeIncludedAmount(amounts.AmountB, p.TokenBTransferFee).Amount
	amountA, err := math.CheckedU64(totalAmountA)
	if err != nil {
		return ModifyLiquidityResult{}, err
	}
	amountB, err := math.CheckedU64(totalAmountB)
	if err != nil {
		return ModifyLiquidityResult{}, err
	}
	if amountA > p.TokenAAmountThreshold || amountB > p.TokenBAmountThreshold {
		return ModifyLiquidityResult{}, shared.ErrExceededSlippage
	}

	if err := p.Pool.ApplyAddLiquidity(p.Position, p.LiquidityDelta, clock.Timestamp); err != nil {
		return ModifyLiquidityResult{}, err
	}
	return ModifyLiquidityResult{TokenAAmount: amountA, TokenBAmount: amountB}, nil
}

type RemoveLiquidityParams struct {
	Pool     *state.Pool
	Position *state.Position

	LiquidityDelta *big.Int

	// Withdrawal floors, compared against transfer-fee-excluded amounts.
	TokenAAmountThreshold uint64
	TokenBAmountThreshold uint64

	TokenATransferFee *math.TransferFeeConfig
	TokenBTransferFee *math.TransferFeeConfig
}

// RemoveLiquidity withdraws both sides at the current price from the
// position's unlocked bucket.
func (e *Engine) RemoveLiquidity(sender solanago.PublicKey, p RemoveLiquidityParams, clock Clock) (ModifyLiquidityResult, error) {
	if !sender.Equals(p.Position.Owner) {
		return ModifyLiquidityResult{}, shared.ErrUnauthorized
	}
	if p.LiquidityDelta == nil || p.LiquidityDelta.Sign() == 0 {
		return ModifyLiquidityResult{}, shared.ErrAmountIsZero
	}
	if !access.NewPoolAccessValidator(p.Pool, clock).CanRemoveLiquidity() {
		return ModifyLiquidityResult{}, shared.ErrPoolDisabled
	}

	amounts, err := p.Pool.GetAmountsForModifyLiquidity(p.LiquidityDelta, shared.RoundingDown)
	if err != nil {
		return ModifyLiquidityResult{}, err
	}
	if amounts.AmountA.Sign() == 0 && amounts.AmountB.Sign() == 0 {
		return ModifyLiquidityResult{}, shared.ErrAmountIsZero
	}

	outAmountA := math.CalculateTransferFeeExcludedAmount(amounts.AmountA, p.TokenATransferFee).Amount
	outAmountB := math.CalculateTransferFeeExcludedAmount(amounts.AmountB, p.TokenBTransferFee).Amount
	amountA, err := math.CheckedU64(outAmountA)
	if err != nil {
		return ModifyLiquidityResult{}, err
	}
	amountB, err := math.CheckedU64(outAmountB)
	if err != nil {
		return ModifyLiquidityResult{}, err
	}
	if amountA < p.TokenAAmountThreshold || amountB < p.TokenBAmountThreshold {
		return ModifyLiquidityResult{}, shared.ErrExceededSlippage
	}

	if err := p.Pool.ApplyRemoveLiquidity(p.Position, p.LiquidityDelta, clock.Timestamp); err != nil {
		return ModifyLiquidityResult{}, err
	}
	return ModifyLiquidityResult{TokenAAmount: amountA, TokenBAmount: amountB}, nil
}
