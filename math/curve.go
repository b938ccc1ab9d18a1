package math

import (
	"math/big"

	"github.com/krazyTry/cpamm-go/shared"
)

// Liquidity curve in Q64.64 sqrt-price space.
//
// amount_a = L * (1/sqrt(p) - 1/sqrt(p_max))
// amount_b = L * (sqrt(p) - sqrt(p_min))

func GetNextSqrtPriceFromAmountInBRoundingDown(sqrtPrice, liquidity, amount *big.Int) (*big.Int, error) {
	if liquidity.Sign() == 0 {
		return nil, shared.ErrDivisionByZero
	}
	quotient := new(big.Int).Lsh(amount, shared.ScaleOffset*2)
	quotient.Div(quotient, liquidity)
	return new(big.Int).Add(sqrtPrice, quotient), nil
}

func GetNextSqrtPriceFromAmountInARoundingUp(sqrtPrice, liquidity, amount *big.Int) (*big.Int, error) {
	if amount.Sign() == 0 {
		return new(big.Int).Set(sqrtPrice), nil
	}
	product := new(big.Int).Mul(amount, sqrtPrice)
	denominator := new(big.Int).Add(liquidity, product)
	return MulDiv(liquidity, sqrtPrice, denominator, shared.RoundingUp)
}

func GetNextSqrtPriceFromInput(sqrtPrice, liquidity, amountIn *big.Int, aForB bool) (*big.Int, error) {
	if sqrtPrice.Sign() <= 0 || liquidity.Sign() <= 0 {
		return nil, shared.ErrInvalidParameters
	}
	if aForB {
		return GetNextSqrtPriceFromAmountInARoundingUp(sqrtPrice, liquidity, amountIn)
	}
	return GetNextSqrtPriceFromAmountInBRoundingDown(sqrtPrice, liquidity, amountIn)
}

// GetAmountAFromLiquidityDelta returns delta_a = L * (upper - lower) / (upper * lower).
func GetAmountAFromLiquidityDelta(lowerSqrtPrice, upperSqrtPrice, liquidity *big.Int, rounding shared.Rounding) (*big.Int, error) {
	numerator := new(big.Int).Sub(upperSqrtPrice, lowerSqrtPrice)
	if numerator.Sign() < 0 {
		return nil, shared.ErrInvalidPriceRange
	}
	denominator := new(big.Int).Mul(lowerSqrtPrice, upperSqrtPrice)
	return MulDiv(liquidity, numerator, denominator, rounding)
}

// GetAmountBFromLiquidityDelta returns delta_b = L * (upper - lower) >> 128.
func GetAmountBFromLiquidityDelta(lowerSqrtPrice, upperSqrtPrice, liquidity *big.Int, rounding shared.Rounding) (*big.Int, error) {
	deltaSqrtPrice := new(big.Int).Sub(upperSqrtPrice, lowerSqrtPrice)
	if deltaSqrtPrice.Sign() < 0 {
		return nil, shared.ErrInvalidPriceRange
	}
	prod := new(big.Int).Mul(liquidity, deltaSqrtPrice)
	shift := uint(shared.ScaleOffset * 2)
	if rounding == shared.RoundingUp {
		denominator := new(big.Int).Lsh(big.NewInt(1), shift)
		result := new(big.Int).Add(prod, new(big.Int).Sub(denominator, big.NewInt(1)))
		return result.Div(result, denominator), nil
	}
	return prod.Rsh(prod, shift), nil
}

func GetLiquidityDeltaFromAmountA(amountA, lowerSqrtPrice, upperSqrtPrice *big.Int) (*big.Int, error) {
	product := new(big.Int).Mul(amountA, lowerSqrtPrice)
	product.Mul(product, upperSqrtPrice)
	denominator := new(big.Int).Sub(upperSqrtPrice, lowerSqrtPrice)
	if denominator.Sign() <= 0 {
		return nil, shared.ErrInvalidPriceRange
	}
	return product.Div(product, denominator), nil
}

func GetLiquidityDeltaFromAmountB(amountB, lowerSqrtPrice, upperSqrtPrice *big.Int) (*big.Int, error) {
	denominator := new(big.Int).Sub(upperSqrtPrice, lowerSqrtPrice)
	if denominator.Sign() <= 0 {
		return nil, shared.ErrInvalidPriceRange
	}
	product := new(big.Int).Lsh(amountB, shared.LiquidityScale)
	return product.Div(product, denominator), nil
}

// GetInitializeAmounts computes the deposit required to seed a pool with the
// given liquidity at sqrtPrice inside [sqrtMinPrice, sqrtMaxPrice]. Rounds up
// on both sides so the pool can never be under-collateralized at creation.
func GetInitializeAmounts(sqrtMinPrice, sqrtMaxPrice, sqrtPrice, liquidity *big.Int) (*big.Int, *big.Int, error) {
	if sqrtPrice.Cmp(sqrtMinPrice) < 0 || sqrtPrice.Cmp(sqrtMaxPrice) > 0 {
		return nil, nil, shared.ErrInvalidPriceRange
	}
	amountA, err := GetAmountAFromLiquidityDelta(sqrtPrice, sqrtMaxPrice, liquidity, shared.RoundingUp)
	if err != nil {
		return nil, nil, err
	}
	amountB, err := GetAmountBFromLiquidityDelta(sqrtMinPrice, sqrtPrice, liquidity, shared.RoundingUp)
	if err != nil {
		return nil, nil, err
	}
	return amountA, amountB, nil
}
