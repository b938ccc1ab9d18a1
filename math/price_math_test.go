package math

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/krazyTry/cpamm-go/shared"
)

func TestPriceFromSqrtPrice(t *testing.T) {
	// sqrt price 2.0 in Q64.64 means price 4 for equal-decimal mints
	sqrtPrice := new(big.Int).Lsh(big.NewInt(2), shared.ScaleOffset)
	price := GetPriceFromSqrtPrice(sqrtPrice, 6, 6)
	if !price.Equal(decimal.NewFromInt(4)) {
		t.Fatalf("price: got %v, want 4", price)
	}

	// a 9-decimal A against a 6-decimal B scales the price by 10^3
	price = GetPriceFromSqrtPrice(new(big.Int).Set(shared.OneQ64), 9, 6)
	if !price.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("decimal-adjusted price: got %v, want 1000", price)
	}
}

func TestSqrtPriceFromPriceRoundTrip(t *testing.T) {
	sqrtPrice := GetSqrtPriceFromPrice(decimal.NewFromInt(4), 6, 6)
	want := new(big.Int).Lsh(big.NewInt(2), shared.ScaleOffset)
	if sqrtPrice.Cmp(want) != 0 {
		t.Fatalf("sqrt price: got %v, want %v", sqrtPrice, want)
	}

	sqrtPrice = GetSqrtPriceFromPrice(decimal.NewFromInt(1), 6, 6)
	if sqrtPrice.Cmp(shared.OneQ64) != 0 {
		t.Fatalf("sqrt price at 1: got %v, want %v", sqrtPrice, shared.OneQ64)
	}

	back := GetPriceFromSqrtPrice(sqrtPrice, 6, 6)
	if !back.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("round trip: got %v, want 1", back)
	}
}

func TestGetPriceImpact(t *testing.T) {
	spot := new(big.Int).Set(shared.OneQ64)

	// perfect execution at spot has no impact
	impact, err := GetPriceImpact(big.NewInt(1000), big.NewInt(1000), spot, false, 6, 6)
	if err != nil {
		t.Fatal(err)
	}
	if !impact.IsZero() {
		t.Fatalf("impact at spot: got %v, want 0", impact)
	}

	// paying 1000 for 990 against a spot of 1 is close to a 1% move
	impact, err = GetPriceImpact(big.NewInt(1000), big.NewInt(990), spot, false, 6, 6)
	if err != nil {
		t.Fatal(err)
	}
	if impact.LessThan(decimal.NewFromInt(1)) || impact.GreaterThan(decimal.NewFromInt(2)) {
		t.Fatalf("impact: got %v, want within [1, 2]", impact)
	}

	// the A-to-B direction inverts the execution price before comparing
	aImpact, err := GetPriceImpact(big.NewInt(990), big.NewInt(1000), spot, true, 6, 6)
	if err != nil {
		t.Fatal(err)
	}
	if !aImpact.Equal(impact) {
		t.Fatalf("directional symmetry: got %v, want %v", aImpact, impact)
	}

	// zero output cannot price
	if _, err := GetPriceImpact(big.NewInt(1000), big.NewInt(0), spot, false, 6, 6); err == nil {
		t.Fatal("zero output must be rejected")
	}

	// zero input is a no-op quote
	impact, err = GetPriceImpact(big.NewInt(0), big.NewInt(0), spot, false, 6, 6)
	if err != nil || !impact.IsZero() {
		t.Fatalf("zero input: got %v, %v", impact, err)
	}
}
