package math

import (
	"math/big"

	"github.com/krazyTry/cpamm-go/shared"
)

// Safe arithmetic kernel. All engine math runs on non-negative big integers;
// these helpers enforce the unsigned 64/128-bit ranges of the wire types and
// surface the taxonomy errors instead of wrapping or truncating.

func SafeSub(a, b *big.Int) (*big.Int, error) {
	if b.Cmp(a) > 0 {
		return nil, shared.ErrArithmeticUnderflow
	}
	return new(big.Int).Sub(a, b), nil
}

func SafeDiv(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, shared.ErrDivisionByZero
	}
	return new(big.Int).Div(a, b), nil
}

func SafeShl(a *big.Int, n uint) *big.Int {
	return new(big.Int).Lsh(a, n)
}

func SafeShr(a *big.Int, n uint) *big.Int {
	return new(big.Int).Rsh(a, n)
}

// MulDiv computes a*b/denominator at full precision with an explicit rounding
// direction. Callers pick the direction that cannot leak value to the caller.
func MulDiv(a, b, denominator *big.Int, rounding shared.Rounding) (*big.Int, error) {
	if denominator.Sign() == 0 {
		return nil, shared.ErrDivisionByZero
	}
	mul := new(big.Int).Mul(a, b)
	div, mod := new(big.Int).QuoRem(mul, denominator, new(big.Int))
	if rounding == shared.RoundingUp && mod.Sign() != 0 {
		div.Add(div, big.NewInt(1))
	}
	return div, nil
}

// CheckedU64 validates that v fits the unsigned 64-bit wire range.
func CheckedU64(v *big.Int) (uint64, error) {
	if v.Sign() < 0 {
		return 0, shared.ErrArithmeticUnderflow
	}
	if v.Cmp(shared.U64Max) > 0 {
		return 0, shared.ErrArithmeticOverflow
	}
	return v.Uint64(), nil
}

// CheckedU128 validates that v fits the unsigned 128-bit wire range.
func CheckedU128(v *big.Int) (*big.Int, error) {
	if v.Sign() < 0 {
		return nil, shared.ErrArithmeticUnderflow
	}
	if v.Cmp(shared.U128Max) > 0 {
		return nil, shared.ErrArithmeticOverflow
	}
	return v, nil
}
