// Package u128 parses decimal literals into the little-endian Uint128 pods
// the pool state carries for liquidity and Q64.64 prices.
package u128

import (
	"errors"
	"fmt"
	"math/big"

	binary "github.com/gagliardetto/binary"
)

type Uint128 binary.Uint128

func (u *Uint128) Scan(s fmt.ScanState, ch rune) error {
	i := new(big.Int)
	if err := i.Scan(s, ch); err != nil {
		return err
	} else if i.Sign() < 0 {
		return errors.New("value cannot be negative")
	} else if i.BitLen() > 128 {
		return errors.New("value overflows Uint128")
	}
	u.Lo = i.Uint64()
	u.Hi = i.Rsh(i, 64).Uint64()
	return nil
}

// FromString parses a non-negative decimal literal. Untrusted input (JSON
// parameter documents) comes through here.
func FromString(num string) (binary.Uint128, error) {
	u := binary.NewUint128LittleEndian()
	if _, err := fmt.Sscan(num, (*Uint128)(u)); err != nil {
		return binary.Uint128{}, err
	}
	return *u, nil
}

// GenUint128FromString is FromString for literals known at compile time;
// it panics on a malformed value.
func GenUint128FromString(num string) binary.Uint128 {
	u, err := FromString(num)
	if err != nil {
		panic(err)
	}
	return u
}
