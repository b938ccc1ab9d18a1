package state

import (
	"errors"
	"math/big"
	"testing"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/cpamm-go/math"
	"github.com/krazyTry/cpamm-go/shared"
)

func newTestVesting(t *testing.T) *Vesting {
	t.Helper()
	// cliff 1000 at point 100, then 100 per 10 points for 5 periods
	vesting, err := NewVesting(solanago.PublicKey{7}, 100, 10, big.NewInt(1000), big.NewInt(100), 5)
	if err != nil {
		t.Fatal(err)
	}
	return vesting
}

func TestVestingReleaseSchedule(t *testing.T) {
	vesting := newTestVesting(t)
	if vesting.GetTotalLockAmount().Int64() != 1500 {
		t.Fatalf("total lock: got %v, want 1500", vesting.GetTotalLockAmount())
	}

	if got := vesting.GetNewReleaseLiquidity(99); got.Sign() != 0 {
		t.Fatalf("before cliff: got %v, want 0", got)
	}
	if got := vesting.GetNewReleaseLiquidity(100); got.Int64() != 1000 {
		t.Fatalf("at cliff: got %v, want 1000", got)
	}
	if got := vesting.GetNewReleaseLiquidity(125); got.Int64() != 1200 {
		t.Fatalf("two periods in: got %v, want 1200", got)
	}
	// the schedule caps at its configured total
	if got := vesting.GetNewReleaseLiquidity(100_000); got.Int64() != 1500 {
		t.Fatalf("far future: got %v, want 1500", got)
	}
}

func TestVestingReleaseIdempotent(t *testing.T) {
	vesting := newTestVesting(t)

	first := vesting.GetNewReleaseLiquidity(125)
	if err := vesting.AccumulateReleasedLiquidity(first); err != nil {
		t.Fatal(err)
	}
	// refreshing again at the same point releases nothing more
	if got := vesting.GetNewReleaseLiquidity(125); got.Sign() != 0 {
		t.Fatalf("second refresh at the same point: got %v, want 0", got)
	}
	// and the released total only ever grows
	second := vesting.GetNewReleaseLiquidity(135)
	if second.Int64() != 100 {
		t.Fatalf("next period: got %v, want 100", second)
	}
	if err := vesting.AccumulateReleasedLiquidity(second); err != nil {
		t.Fatal(err)
	}
	if vesting.TotalReleasedLiquidity.BigInt().Int64() != 1300 {
		t.Fatalf("released total: got %v, want 1300", vesting.TotalReleasedLiquidity.BigInt())
	}
	if vesting.IsDone() {
		t.Fatal("schedule is not exhausted yet")
	}

	rest := vesting.GetNewReleaseLiquidity(100_000)
	if err := vesting.AccumulateReleasedLiquidity(rest); err != nil {
		t.Fatal(err)
	}
	if !vesting.IsDone() {
		t.Fatal("schedule must be exhausted after releasing the total")
	}
}

func TestPositionLockAndRelease(t *testing.T) {
	position := NewPosition(solanago.PublicKey{}, solanago.PublicKey{})
	var err error
	if position.UnlockedLiquidity, err = math.U128FromBig(big.NewInt(2000)); err != nil {
		t.Fatal(err)
	}

	if err := position.Lock(big.NewInt(1500)); err != nil {
		t.Fatal(err)
	}
	if position.UnlockedLiquidity.BigInt().Int64() != 500 || position.VestedLiquidity.BigInt().Int64() != 1500 {
		t.Fatalf("buckets after lock: unlocked=%v vested=%v", position.UnlockedLiquidity.BigInt(), position.VestedLiquidity.BigInt())
	}
	if position.GetTotalLiquidity().Int64() != 2000 {
		t.Fatal("locking must not change total liquidity")
	}

	// vested liquidity is not removable
	if err := position.removeUnlockedLiquidity(big.NewInt(501)); !errors.Is(err, shared.ErrInsufficientLiquidity) {
		t.Fatalf("got %v, want ErrInsufficientLiquidity", err)
	}

	if err := position.ReleaseVestedLiquidity(big.NewInt(1000)); err != nil {
		t.Fatal(err)
	}
	if position.UnlockedLiquidity.BigInt().Int64() != 1500 || position.VestedLiquidity.BigInt().Int64() != 500 {
		t.Fatalf("buckets after release: unlocked=%v vested=%v", position.UnlockedLiquidity.BigInt(), position.VestedLiquidity.BigInt())
	}
	if err := position.ReleaseVestedLiquidity(big.NewInt(501)); !errors.Is(err, shared.ErrInsufficientLiquidity) {
		t.Fatalf("got %v, want ErrInsufficientLiquidity", err)
	}
}

func TestPositionLockMoreThanUnlocked(t *testing.T) {
	position := NewPosition(solanago.PublicKey{}, solanago.PublicKey{})
	var err error
	if position.UnlockedLiquidity, err = math.U128FromBig(big.NewInt(100)); err != nil {
		t.Fatal(err)
	}
	if err := position.Lock(big.NewInt(101)); !errors.Is(err, shared.ErrInsufficientLiquidity) {
		t.Fatalf("got %v, want ErrInsufficientLiquidity", err)
	}
}
