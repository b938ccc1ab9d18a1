package math

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/krazyTry/cpamm-go/shared"
)

// GetPriceFromSqrtPrice converts a Q64.64 sqrt price into the price of token A
// denominated in token B, adjusted for the mints' decimals.
func GetPriceFromSqrtPrice(sqrtPrice *big.Int, tokenADecimal, tokenBDecimal uint8) decimal.Decimal {
	decSqrt := Q64ToDecimal(sqrtPrice, -1)
	return decSqrt.Mul(decSqrt).Mul(decimal.New(1, int32(tokenADecimal)-int32(tokenBDecimal)))
}

// GetSqrtPriceFromPrice is the inverse conversion. The result floors to the
// nearest representable Q64.64 value.
func GetSqrtPriceFromPrice(price decimal.Decimal, tokenADecimal, tokenBDecimal uint8) *big.Int {
	adjusted := price.Div(decimal.New(1, int32(tokenADecimal)-int32(tokenBDecimal)))
	return Sqrt(SafeShl(DecimalToQ64(adjusted), shared.ScaleOffset))
}

// GetPriceImpact reports, in percent, how far a quote's execution price sits
// from the pool's spot price.
func GetPriceImpact(amountIn, amountOut, currentSqrtPrice *big.Int, aToB bool, tokenADecimal, tokenBDecimal uint8) (decimal.Decimal, error) {
	if amountIn.Sign() == 0 {
		return decimal.Zero, nil
	}
	if amountOut.Sign() == 0 {
		return decimal.Zero, shared.ErrAmountIsZero
	}
	spotPrice := GetPriceFromSqrtPrice(currentSqrtPrice, tokenADecimal, tokenBDecimal)
	executionPrice := decimal.NewFromBigInt(amountIn, 0).Div(decimal.NewFromBigInt(amountOut, 0))
	if aToB {
		executionPrice = decimal.NewFromInt(1).Div(executionPrice)
	}
	return executionPrice.Sub(spotPrice).Abs().Div(spotPrice).Mul(decimal.NewFromInt(100)), nil
}
