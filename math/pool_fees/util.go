package pool_fees

import (
	"math/big"

	"github.com/krazyTry/cpamm-go/shared"
)

func mulDiv(x, y, denominator *big.Int, rounding shared.Rounding) *big.Int {
	if denominator.Sign() == 0 {
		return big.NewInt(0)
	}
	mul := new(big.Int).Mul(x, y)
	div, mod := new(big.Int).QuoRem(mul, denominator, new(big.Int))
	if rounding == shared.RoundingUp && mod.Sign() != 0 {
		return div.Add(div, big.NewInt(1))
	}
	return div
}

func toNumerator(bps *big.Int) *big.Int {
	return mulDiv(bps, big.NewInt(shared.FeeDenominator), big.NewInt(shared.BasisPointMax), shared.RoundingDown)
}
