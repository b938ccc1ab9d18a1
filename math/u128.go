package math

import (
	"math/big"

	binary "github.com/gagliardetto/binary"

	"github.com/krazyTry/cpamm-go/shared"
)

func U128FromBig(v *big.Int) (binary.Uint128, error) {
	if v == nil {
		return binary.Uint128{}, nil
	}
	if _, err := CheckedU128(v); err != nil {
		return binary.Uint128{}, err
	}
	lo := new(big.Int).And(v, new(big.Int).SetUint64(^uint64(0))).Uint64()
	hi := new(big.Int).Rsh(v, 64).Uint64()
	return binary.Uint128{Lo: lo, Hi: hi}, nil
}

// LeBytesToBig decodes a little-endian unsigned integer, the layout used by the
// 32-byte fee and reward accumulators.
func LeBytesToBig(b []uint8) *big.Int {
	buf := make([]byte, len(b))
	for i := range b {
		buf[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(buf)
}

// BigToLeBytes32 encodes v into a 32-byte little-endian array. v must fit 256 bits.
func BigToLeBytes32(v *big.Int) ([32]uint8, error) {
	var out [32]uint8
	if v.Sign() < 0 {
		return out, shared.ErrArithmeticUnderflow
	}
	if v.BitLen() > 256 {
		return out, shared.ErrArithmeticOverflow
	}
	be := v.Bytes()
	for i := range be {
		out[i] = be[len(be)-1-i]
	}
	return out, nil
}
