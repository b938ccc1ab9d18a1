package math

import (
	"errors"
	"math/big"
	"testing"

	"github.com/krazyTry/cpamm-go/shared"
)

func TestMulDivRounding(t *testing.T) {
	down, err := MulDiv(big.NewInt(7), big.NewInt(3), big.NewInt(2), shared.RoundingDown)
	if err != nil {
		t.Fatal(err)
	}
	if down.Int64() != 10 {
		t.Fatalf("rounding down: got %v, want 10", down)
	}
	up, err := MulDiv(big.NewInt(7), big.NewInt(3), big.NewInt(2), shared.RoundingUp)
	if err != nil {
		t.Fatal(err)
	}
	if up.Int64() != 11 {
		t.Fatalf("rounding up: got %v, want 11", up)
	}
	exact, err := MulDiv(big.NewInt(6), big.NewInt(3), big.NewInt(2), shared.RoundingUp)
	if err != nil {
		t.Fatal(err)
	}
	if exact.Int64() != 9 {
		t.Fatalf("exact division must not round: got %v, want 9", exact)
	}
}

func TestMulDivByZero(t *testing.T) {
	if _, err := MulDiv(big.NewInt(1), big.NewInt(1), big.NewInt(0), shared.RoundingDown); !errors.Is(err, shared.ErrDivisionByZero) {
		t.Fatalf("got %v, want ErrDivisionByZero", err)
	}
}

func TestSafeSubUnderflow(t *testing.T) {
	out, err := SafeSub(big.NewInt(5), big.NewInt(3))
	if err != nil {
		t.Fatal(err)
	}
	if out.Int64() != 2 {
		t.Fatalf("got %v, want 2", out)
	}
	if _, err := SafeSub(big.NewInt(3), big.NewInt(5)); !errors.Is(err, shared.ErrArithmeticUnderflow) {
		t.Fatalf("got %v, want ErrArithmeticUnderflow", err)
	}
}

func TestSafeDivByZero(t *testing.T) {
	if _, err := SafeDiv(big.NewInt(1), big.NewInt(0)); !errors.Is(err, shared.ErrDivisionByZero) {
		t.Fatalf("got %v, want ErrDivisionByZero", err)
	}
}

func TestCheckedU64Bounds(t *testing.T) {
	v, err := CheckedU64(new(big.Int).Set(shared.U64Max))
	if err != nil {
		t.Fatal(err)
	}
	if v != ^uint64(0) {
		t.Fatalf("got %v, want max uint64", v)
	}
	over := new(big.Int).Add(shared.U64Max, big.NewInt(1))
	if _, err := CheckedU64(over); !errors.Is(err, shared.ErrArithmeticOverflow) {
		t.Fatalf("got %v, want ErrArithmeticOverflow", err)
	}
	if _, err := CheckedU64(big.NewInt(-1)); !errors.Is(err, shared.ErrArithmeticUnderflow) {
		t.Fatalf("got %v, want ErrArithmeticUnderflow", err)
	}
}

func TestCheckedU128Bounds(t *testing.T) {
	if _, err := CheckedU128(new(big.Int).Set(shared.U128Max)); err != nil {
		t.Fatal(err)
	}
	over := new(big.Int).Add(shared.U128Max, big.NewInt(1))
	if _, err := CheckedU128(over); !errors.Is(err, shared.ErrArithmeticOverflow) {
		t.Fatalf("got %v, want ErrArithmeticOverflow", err)
	}
}

func TestU128RoundTrip(t *testing.T) {
	want, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	u, err := U128FromBig(want)
	if err != nil {
		t.Fatal(err)
	}
	if u.BigInt().Cmp(want) != 0 {
		t.Fatalf("got %v, want %v", u.BigInt(), want)
	}
}

func TestLeBytes32RoundTrip(t *testing.T) {
	want := new(big.Int).Lsh(big.NewInt(12345), 130)
	raw, err := BigToLeBytes32(want)
	if err != nil {
		t.Fatal(err)
	}
	if got := LeBytesToBig(raw[:]); got.Cmp(want) != 0 {
		t.Fatalf("got %v, want %v", got, want)
	}
}
