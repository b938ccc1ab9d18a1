package state

import (
	"math/big"

	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/cpamm-go/math"
	"github.com/krazyTry/cpamm-go/shared"
)

// PoolMetrics tracks lifetime fee totals. Purely informational; no settlement
// path reads them back.
type PoolMetrics struct {
	TotalLpAFee       binary.Uint128
	TotalLpBFee       binary.Uint128
	TotalProtocolAFee uint64
	TotalProtocolBFee uint64
	TotalPartnerAFee  uint64
	TotalPartnerBFee  uint64
	TotalPosition     uint64
}

func (m *PoolMetrics) accumulateFee(split shared.SplitFees, onTokenA bool) error {
	if onTokenA {
		lp, err := math.U128FromBig(new(big.Int).Add(m.TotalLpAFee.BigInt(), split.LpFee))
		if err != nil {
			return err
		}
		protocol, err := math.CheckedU64(new(big.Int).Add(new(big.Int).SetUint64(m.TotalProtocolAFee), split.ProtocolFee))
		if err != nil {
			return err
		}
		partner, err := math.CheckedU64(new(big.Int).Add(new(big.Int).SetUint64(m.TotalPartnerAFee), split.PartnerFee))
		if err != nil {
			return err
		}
		m.TotalLpAFee = lp
		m.TotalProtocolAFee = protocol
		m.TotalPartnerAFee = partner
		return nil
	}
	lp, err := math.U128FromBig(new(big.Int).Add(m.TotalLpBFee.BigInt(), split.LpFee))
	if err != nil {
		return err
	}
	protocol, err := math.CheckedU64(new(big.Int).Add(new(big.Int).SetUint64(m.TotalProtocolBFee), split.ProtocolFee))
	if err != nil {
		return err
	}
	partner, err := math.CheckedU64(new(big.Int).Add(new(big.Int).SetUint64(m.TotalPartnerBFee), split.PartnerFee))
	if err != nil {
		return err
	}
	m.TotalLpBFee = lp
	m.TotalProtocolBFee = protocol
	m.TotalPartnerBFee = partner
	return nil
}

// Pool is the central mutable entity. All 128-bit fields are pod Uint128s;
// fee accumulators are 256-bit little-endian, reward per unit of liquidity
// scaled by 2^128.
type Pool struct {
	PoolFees PoolFeesStruct

	TokenAMint  solanago.PublicKey
	TokenBMint  solanago.PublicKey
	TokenAVault solanago.PublicKey
	TokenBVault solanago.PublicKey

	// WhitelistedVault may trade inside the pre-activation buffer window.
	WhitelistedVault solanago.PublicKey
	Partner          solanago.PublicKey
	Creator          solanago.PublicKey
	Config           solanago.PublicKey

	Liquidity binary.Uint128

	ProtocolAFee uint64
	ProtocolBFee uint64
	PartnerAFee  uint64
	PartnerBFee  uint64

	SqrtMinPrice binary.Uint128
	SqrtMaxPrice binary.Uint128
	SqrtPrice    binary.Uint128

	ActivationPoint uint64
	ActivationType  shared.ActivationType
	PoolStatus      shared.PoolStatus
	TokenAFlag      shared.TokenFlag
	TokenBFlag      shared.TokenFlag
	CollectFeeMode  shared.CollectFeeMode
	PoolType        shared.PoolType

	FeeAPerLiquidity       [32]uint8
	FeeBPerLiquidity       [32]uint8
	PermanentLockLiquidity binary.Uint128

	Metrics     PoolMetrics
	RewardInfos [shared.NumRewards]RewardInfo
}

func (p *Pool) HasPartner() bool {
	return !p.Partner.IsZero()
}

func (p *Pool) IsEnabled() bool {
	return p.PoolStatus == shared.PoolStatusEnable
}

func (p *Pool) setLiquidity(v *big.Int) error {
	liquidity, err := math.U128FromBig(v)
	if err != nil {
		return err
	}
	p.Liquidity = liquidity
	return nil
}

// UpdatePreSwap refreshes the dynamic-fee references before the price moves.
func (p *Pool) UpdatePreSwap(currentTimestamp uint64) error {
	if !p.PoolFees.DynamicFee.IsEnabled() {
		return nil
	}
	return p.PoolFees.DynamicFee.UpdateReferences(p.SqrtPrice.BigInt(), currentTimestamp)
}

// GetSwapResult prices an exact-input trade against the current snapshot
// without mutating it. ApplySwapResult commits the returned deltas.
func (p *Pool) GetSwapResult(amountIn *big.Int, feeMode shared.FeeMode, tradeDirection shared.TradeDirection, currentPoint *big.Int) (shared.SwapResult, error) {
	tradeFeeNumerator, err := p.PoolFees.GetTotalTradingFee(currentPoint, new(big.Int).SetUint64(p.ActivationPoint))
	if err != nil {
		return shared.SwapResult{}, err
	}

	actualProtocolFee := big.NewInt(0)
	actualLpFee := big.NewInt(0)
	actualReferralFee := big.NewInt(0)
	actualPartnerFee := big.NewInt(0)

	actualAmountIn := new(big.Int).Set(amountIn)
	if feeMode.FeesOnInput {
		feeResult, err := p.PoolFees.GetFeeOnAmount(amountIn, tradeFeeNumerator, feeMode.HasReferral, p.HasPartner())
		if err != nil {
			return shared.SwapResult{}, err
		}
		actualProtocolFee = feeResult.ProtocolFee
		actualLpFee = feeResult.LpFee
		actualReferralFee = feeResult.ReferralFee
		actualPartnerFee = feeResult.PartnerFee
		actualAmountIn = feeResult.Amount
	}

	var outputAmount, nextSqrtPrice *big.Int
	if tradeDirection == shared.TradeDirectionAtoB {
		outputAmount, nextSqrtPrice, err = p.calculateAtoB(actualAmountIn)
	} else {
		outputAmount, nextSqrtPrice, err = p.calculateBtoA(actualAmountIn)
	}
	if err != nil {
		return shared.SwapResult{}, err
	}

	actualAmountOut := outputAmount
	if !feeMode.FeesOnInput {
		feeResult, err := p.PoolFees.GetFeeOnAmount(outputAmount, tradeFeeNumerator, feeMode.HasReferral, p.HasPartner())
		if err != nil {
			return shared.SwapResult{}, err
		}
		actualProtocolFee = feeResult.ProtocolFee
		actualLpFee = feeResult.LpFee
		actualReferralFee = feeResult.ReferralFee
		actualPartnerFee = feeResult.PartnerFee
		actualAmountOut = feeResult.Amount
	}

	return shared.SwapResult{
		OutputAmount:  actualAmountOut,
		NextSqrtPrice: nextSqrtPrice,
		LpFee:         actualLpFee,
		ProtocolFee:   actualProtocolFee,
		PartnerFee:    actualPartnerFee,
		ReferralFee:   actualReferralFee,
	}, nil
}

func (p *Pool) calculateAtoB(amountIn *big.Int) (*big.Int, *big.Int, error) {
	nextSqrtPrice, err := math.GetNextSqrtPriceFromInput(p.SqrtPrice.BigInt(), p.Liquidity.BigInt(), amountIn, true)
	if err != nil {
		return nil, nil, err
	}
	if nextSqrtPrice.Cmp(p.SqrtMinPrice.BigInt()) < 0 {
		return nil, nil, shared.ErrInvalidPriceRange
	}
	outputAmount, err := math.GetAmountBFromLiquidityDelta(nextSqrtPrice, p.SqrtPrice.BigInt(), p.Liquidity.BigInt(), shared.RoundingDown)
	if err != nil {
		return nil, nil, err
	}
	return outputAmount, nextSqrtPrice, nil
}

func (p *Pool) calculateBtoA(amountIn *big.Int) (*big.Int, *big.Int, error) {
	nextSqrtPrice, err := math.GetNextSqrtPriceFromInput(p.SqrtPrice.BigInt(), p.Liquidity.BigInt(), amountIn, false)
	if err != nil {
		return nil, nil, err
	}
	if nextSqrtPrice.Cmp(p.SqrtMaxPrice.BigInt()) > 0 {
		return nil, nil, shared.ErrInvalidPriceRange
	}
	outputAmount, err := math.GetAmountAFromLiquidityDelta(p.SqrtPrice.BigInt(), nextSqrtPrice, p.Liquidity.BigInt(), shared.RoundingDown)
	if err != nil {
		return nil, nil, err
	}
	return outputAmount, nextSqrtPrice, nil
}

// ApplySwapResult commits a priced swap: moves the price, credits the LP fee
// into the growth accumulator and banks protocol/partner fees. Liquidity is
// untouched; only the price moves.
func (p *Pool) ApplySwapResult(result shared.SwapResult, feeMode shared.FeeMode, currentTimestamp uint64) error {
	split := shared.SplitFees{
		LpFee:       result.LpFee,
		ProtocolFee: result.ProtocolFee,
		PartnerFee:  result.PartnerFee,
		ReferralFee: result.ReferralFee,
	}
	if err := p.accumulateTradingFee(split, feeMode.FeesOnTokenA); err != nil {
		return err
	}
	if err := p.Metrics.accumulateFee(split, feeMode.FeesOnTokenA); err != nil {
		return err
	}

	if p.PoolFees.DynamicFee.IsEnabled() {
		if err := p.PoolFees.DynamicFee.UpdateVolatilityAccumulator(result.NextSqrtPrice); err != nil {
			return err
		}
		p.PoolFees.DynamicFee.LastUpdateTimestamp = currentTimestamp
	}

	sqrtPrice, err := math.U128FromBig(result.NextSqrtPrice)
	if err != nil {
		return err
	}
	p.SqrtPrice = sqrtPrice
	return nil
}

func (p *Pool) accumulateTradingFee(split shared.SplitFees, onTokenA bool) error {
	if p.Liquidity.BigInt().Sign() > 0 && split.LpFee.Sign() > 0 {
		perLiquidity := new(big.Int).Lsh(split.LpFee, shared.LiquidityScale)
		perLiquidity.Div(perLiquidity, p.Liquidity.BigInt())
		if onTokenA {
			next, err := math.BigToLeBytes32(new(big.Int).Add(math.LeBytesToBig(p.FeeAPerLiquidity[:]), perLiquidity))
			if err != nil {
				return err
			}
			p.FeeAPerLiquidity = next
		} else {
			next, err := math.BigToLeBytes32(new(big.Int).Add(math.LeBytesToBig(p.FeeBPerLiquidity[:]), perLiquidity))
			if err != nil {
				return err
			}
			p.FeeBPerLiquidity = next
		}
	}

	if onTokenA {
		protocol, err := math.CheckedU64(new(big.Int).Add(new(big.Int).SetUint64(p.ProtocolAFee), split.ProtocolFee))
		if err != nil {
			return err
		}
		partner, err := math.CheckedU64(new(big.Int).Add(new(big.Int).SetUint64(p.PartnerAFee), split.PartnerFee))
		if err != nil {
			return err
		}
		p.ProtocolAFee = protocol
		p.PartnerAFee = partner
		return nil
	}
	protocol, err := math.CheckedU64(new(big.Int).Add(new(big.Int).SetUint64(p.ProtocolBFee), split.ProtocolFee))
	if err != nil {
		return err
	}
	partner, err := math.CheckedU64(new(big.Int).Add(new(big.Int).SetUint64(p.PartnerBFee), split.PartnerFee))
	if err != nil {
		return err
	}
	p.ProtocolBFee = protocol
	p.PartnerBFee = partner
	return nil
}

// GetAmountsForModifyLiquidity prices a liquidity delta at the current sqrt
// price. Adds round up, removals round down.
func (p *Pool) GetAmountsForModifyLiquidity(liquidityDelta *big.Int, rounding shared.Rounding) (shared.ModifyLiquidityResult, error) {
	amountA, err := math.GetAmountAFromLiquidityDelta(p.SqrtPrice.BigInt(), p.SqrtMaxPrice.BigInt(), liquidityDelta, rounding)
	if err != nil {
		return shared.ModifyLiquidityResult{}, err
	}
	amountB, err := math.GetAmountBFromLiquidityDelta(p.SqrtMinPrice.BigInt(), p.SqrtPrice.BigInt(), liquidityDelta, rounding)
	if err != nil {
		return shared.ModifyLiquidityResult{}, err
	}
	return shared.ModifyLiquidityResult{AmountA: amountA, AmountB: amountB}, nil
}

// ApplyAddLiquidity settles the position's accruals, then grows both sides.
func (p *Pool) ApplyAddLiquidity(position *Position, liquidityDelta *big.Int, currentTime uint64) error {
	if err := p.settlePosition(position, currentTime); err != nil {
		return err
	}
	if err := position.addLiquidity(liquidityDelta); err != nil {
		return err
	}
	return p.setLiquidity(new(big.Int).Add(p.Liquidity.BigInt(), liquidityDelta))
}

// ApplyRemoveLiquidity settles, then shrinks both sides. Locked liquidity is
// never removable here.
func (p *Pool) ApplyRemoveLiquidity(position *Position, liquidityDelta *big.Int, currentTime uint64) error {
	if err := p.settlePosition(position, currentTime); err != nil {
		return err
	}
	if err := position.removeUnlockedLiquidity(liquidityDelta); err != nil {
		return err
	}
	next, err := math.SafeSub(p.Liquidity.BigInt(), liquidityDelta)
	if err != nil {
		return err
	}
	return p.setLiquidity(next)
}

// settlePosition runs the settle-then-mutate rule: fee and reward accruals
// advance to now before any liquidity change.
func (p *Pool) settlePosition(position *Position, currentTime uint64) error {
	if err := p.UpdateRewards(currentTime); err != nil {
		return err
	}
	if err := position.UpdateFees(p.FeeAPerLiquidity, p.FeeBPerLiquidity); err != nil {
		return err
	}
	return position.UpdateRewards(p)
}

// UpdateRewards advances every initialized reward slot to currentTime.
func (p *Pool) UpdateRewards(currentTime uint64) error {
	liquidity := p.Liquidity.BigInt()
	for i := range p.RewardInfos {
		if err := p.RewardInfos[i].updateRewards(liquidity, currentTime); err != nil {
			return err
		}
	}
	return nil
}

// ApplyPermanentLock mirrors a position's permanent lock onto the pool
// counter inside the same operation.
func (p *Pool) ApplyPermanentLock(position *Position, amount *big.Int) error {
	if err := position.PermanentLock(amount); err != nil {
		return err
	}
	next, err := math.U128FromBig(new(big.Int).Add(p.PermanentLockLiquidity.BigInt(), amount))
	if err != nil {
		return err
	}
	p.PermanentLockLiquidity = next
	return nil
}

// ClaimProtocolFee drains the accrued protocol fee balances up to the caps.
func (p *Pool) ClaimProtocolFee(maxAmountA, maxAmountB uint64) (uint64, uint64) {
	amountA := min(p.ProtocolAFee, maxAmountA)
	amountB := min(p.ProtocolBFee, maxAmountB)
	p.ProtocolAFee -= amountA
	p.ProtocolBFee -= amountB
	return amountA, amountB
}

// ClaimPartnerFee drains the accrued partner fee balances up to the caps.
func (p *Pool) ClaimPartnerFee(maxAmountA, maxAmountB uint64) (uint64, uint64) {
	amountA := min(p.PartnerAFee, maxAmountA)
	amountB := min(p.PartnerBFee, maxAmountB)
	p.PartnerAFee -= amountA
	p.PartnerBFee -= amountB
	return amountA, amountB
}
