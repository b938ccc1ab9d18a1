package engine

import (
	"math/big"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/krazyTry/cpamm-go/access"
	"github.com/krazyTry/cpamm-go/math"
	"github.com/krazyTry/cpamm-go/shared"
	"github.com/krazyTry/cpamm-go/state"
)

type SwapParams struct {
	Pool *state.Pool

	AmountIn         uint64
	MinimumAmountOut uint64
	TradeDirection   shared.TradeDirection

	// Non-zero when a referral context is attached; the referral share of the
	// protocol fee is paid to this account.
	Referral solanago.PublicKey

	TokenATransferFee *math.TransferFeeConfig
	TokenBTransferFee *math.TransferFeeConfig
}

// SwapResult is the settled outcome of one exact-input trade. AmountOut is
// net of the output mint's transfer fee; the fee fields are denominated in
// the token the fee mode selected.
type SwapResult struct {
	AmountOut     uint64
	NextSqrtPrice *big.Int
	LpFee         *big.Int
	ProtocolFee   *big.Int
	PartnerFee    *big.Int
	ReferralFee   *big.Int
}

// Swap executes an exact-input trade: resolves the fee mode, refreshes the
// dynamic-fee references, prices the trade, enforces the output floor and
// commits the deltas.
func (e *Engine) Swap(sender solanago.PublicKey, p SwapParams, clock Clock) (SwapResult, error) {
	if p.AmountIn == 0 {
		return SwapResult{}, shared.ErrAmountIsZero
	}
	if !access.NewPoolAccessValidator(p.Pool, clock).CanSwap(sender) {
		return SwapResult{}, shared.ErrPoolDisabled
	}

	inTransferFee, outTransferFee := p.TokenATransferFee, p.TokenBTransferFee
	if p.TradeDirection == shared.TradeDirectionBtoA {
		inTransferFee, outTransferFee = p.TokenBTransferFee, p.TokenATransferFee
	}
	actualAmountIn := math.CalculateTransferFeeExcludedAmount(new(big.Int).SetUint64(p.AmountIn), inTransferFee).Amount
	if actualAmountIn.Sign() == 0 {
		return SwapResult{}, shared.ErrAmountIsZero
	}

	feeMode := math.GetFeeMode(p.Pool.CollectFeeMode, p.TradeDirection, !p.Referral.IsZero())

	if err := p.Pool.UpdatePreSwap(clock.Timestamp); err != nil {
		return SwapResult{}, err
	}
	currentPoint := access.CurrentPoint(p.Pool.ActivationType, clock)
	result, err := p.Pool.GetSwapResult(actualAmountIn, feeMode, p.TradeDirection, new(big.Int).SetUint64(currentPoint))
	if err != nil {
		return SwapResult{}, err
	}

	actualAmountOut := math.CalculateTransferFeeExcludedAmount(result.OutputAmount, outTransferFee).Amount
	amountOut, err := math.CheckedU64(actualAmountOut)
	if err != nil {
		return SwapResult{}, err
	}
	if amountOut < p.MinimumAmountOut {
		return SwapResult{}, shared.ErrExceededSlippage
	}

	if err := p.Pool.ApplySwapResult(result, feeMode, clock.Timestamp); err != nil {
		return SwapResult{}, err
	}
	return SwapResult{
		AmountOut:     amountOut,
		NextSqrtPrice: result.NextSqrtPrice,
		LpFee:         result.LpFee,
		ProtocolFee:   result.ProtocolFee,
		PartnerFee:    result.PartnerFee,
		ReferralFee:   result.ReferralFee,
	}, nil
}

// Quote prices a trade against a snapshot without mutating it. Hosts use it
// to derive a MinimumAmountOut before submitting the real swap.
func (e *Engine) Quote(pool *state.Pool, amountIn uint64, tradeDirection shared.TradeDirection, hasReferral bool, clock Clock) (shared.SwapResult, error) {
	if amountIn == 0 {
		return shared.SwapResult{}, shared.ErrAmountIsZero
	}
	feeMode := math.GetFeeMode(pool.CollectFeeMode, tradeDirection, hasReferral)
	currentPoint := access.CurrentPoint(pool.ActivationType, clock)
	return pool.GetSwapResult(new(big.Int).SetUint64(amountIn), feeMode, tradeDirection, new(big.Int).SetUint64(currentPoint))
}

// QuoteWithImpact prices a trade like Quote and additionally reports the
// price impact in percent, given the two mints' decimals.
func (e *Engine) QuoteWithImpact(pool *state.Pool, amountIn uint64, tradeDirection shared.TradeDirection, hasReferral bool, tokenADecimal, tokenBDecimal uint8, clock Clock) (shared.SwapResult, decimal.Decimal, error) {
	result, err := e.Quote(pool, amountIn, tradeDirection, hasReferral, clock)
	if err != nil {
		return shared.SwapResult{}, decimal.Zero, err
	}
	impact, err := math.GetPriceImpact(
		new(big.Int).SetUint64(amountIn),
		result.OutputAmount,
		pool.SqrtPrice.BigInt(),
		tradeDirection == shared.TradeDirectionAtoB,
		tokenADecimal,
		tokenBDecimal,
	)
	if err != nil {
		return shared.SwapResult{}, decimal.Zero, err
	}
	return result, impact, nil
}
