package pool_fees

import (
	"errors"
	"math/big"
	"testing"

	"github.com/krazyTry/cpamm-go/shared"
)

func TestLinearFeeScheduler(t *testing.T) {
	cliff := big.NewInt(100_000_000)
	reduction := big.NewInt(10_000_000)

	if got := GetFeeNumeratorOnLinearFeeScheduler(cliff, reduction, 0); got.Cmp(cliff) != 0 {
		t.Fatalf("period 0: got %v, want cliff", got)
	}
	if got := GetFeeNumeratorOnLinearFeeScheduler(cliff, reduction, 3); got.Int64() != 70_000_000 {
		t.Fatalf("period 3: got %v, want 70000000", got)
	}
	// reduction past zero clamps instead of wrapping
	if got := GetFeeNumeratorOnLinearFeeScheduler(cliff, reduction, 20); got.Sign() != 0 {
		t.Fatalf("exhausted schedule: got %v, want 0", got)
	}
}

func TestExponentialFeeScheduler(t *testing.T) {
	cliff := big.NewInt(100_000_000)
	half := big.NewInt(5000) // 50% per period

	if got := GetFeeNumeratorOnExponentialFeeScheduler(cliff, half, 0); got.Cmp(cliff) != 0 {
		t.Fatalf("period 0: got %v, want cliff", got)
	}
	one := GetFeeNumeratorOnExponentialFeeScheduler(cliff, half, 1)
	if one.Int64() != 50_000_000 {
		t.Fatalf("period 1: got %v, want 50000000", one)
	}
	three := GetFeeNumeratorOnExponentialFeeScheduler(cliff, half, 3)
	if three.Int64() != 12_500_000 {
		t.Fatalf("period 3: got %v, want 12500000", three)
	}
}

func TestBaseFeeNumeratorOverTime(t *testing.T) {
	cliff := big.NewInt(100_000_000)
	reduction := big.NewInt(10_000_000)
	frequency := big.NewInt(10)
	activation := big.NewInt(1000)

	// pre-activation quotes the floor fee
	pre, err := GetBaseFeeNumerator(cliff, 5, frequency, reduction, shared.BaseFeeModeFeeSchedulerLinear, big.NewInt(500), activation)
	if err != nil {
		t.Fatal(err)
	}
	if pre.Int64() != 50_000_000 {
		t.Fatalf("pre-activation: got %v, want floor 50000000", pre)
	}

	// at activation the cliff applies, then one step per elapsed period
	at, err := GetBaseFeeNumerator(cliff, 5, frequency, reduction, shared.BaseFeeModeFeeSchedulerLinear, big.NewInt(1000), activation)
	if err != nil {
		t.Fatal(err)
	}
	if at.Cmp(cliff) != 0 {
		t.Fatalf("at activation: got %v, want cliff", at)
	}
	mid, err := GetBaseFeeNumerator(cliff, 5, frequency, reduction, shared.BaseFeeModeFeeSchedulerLinear, big.NewInt(1025), activation)
	if err != nil {
		t.Fatal(err)
	}
	if mid.Int64() != 80_000_000 {
		t.Fatalf("two periods in: got %v, want 80000000", mid)
	}
	// decay stops at the configured number of periods
	late, err := GetBaseFeeNumerator(cliff, 5, frequency, reduction, shared.BaseFeeModeFeeSchedulerLinear, big.NewInt(9999), activation)
	if err != nil {
		t.Fatal(err)
	}
	if late.Int64() != 50_000_000 {
		t.Fatalf("after schedule: got %v, want floor 50000000", late)
	}
}

func TestConstantFeeWithoutSchedule(t *testing.T) {
	cliff := big.NewInt(30_000_000)
	got, err := GetBaseFeeNumerator(cliff, 0, big.NewInt(0), big.NewInt(0), shared.BaseFeeModeFeeSchedulerLinear, big.NewInt(12345), big.NewInt(0))
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(cliff) != 0 {
		t.Fatalf("got %v, want constant cliff", got)
	}
}

func TestValidateFeeScheduler(t *testing.T) {
	// constant fee at 1% is fine
	if err := ValidateFeeScheduler(big.NewInt(10_000_000), 0, big.NewInt(0), big.NewInt(0), shared.BaseFeeModeFeeSchedulerLinear); err != nil {
		t.Fatal(err)
	}
	// partially configured schedule is rejected
	err := ValidateFeeScheduler(big.NewInt(10_000_000), 5, big.NewInt(0), big.NewInt(1), shared.BaseFeeModeFeeSchedulerLinear)
	if !errors.Is(err, shared.ErrInvalidParameters) {
		t.Fatalf("got %v, want ErrInvalidParameters", err)
	}
	// floor below the minimum fee is rejected
	err = ValidateFeeScheduler(big.NewInt(10_000_000), 5, big.NewInt(10), big.NewInt(2_000_000), shared.BaseFeeModeFeeSchedulerLinear)
	if !errors.Is(err, shared.ErrInvalidParameters) {
		t.Fatalf("got %v, want ErrInvalidParameters", err)
	}
	// cliff above the maximum fee is rejected
	err = ValidateFeeScheduler(big.NewInt(600_000_000), 0, big.NewInt(0), big.NewInt(0), shared.BaseFeeModeFeeSchedulerLinear)
	if !errors.Is(err, shared.ErrInvalidParameters) {
		t.Fatalf("got %v, want ErrInvalidParameters", err)
	}
}

func TestDynamicFeeNumerator(t *testing.T) {
	// zero volatility costs nothing
	if got := GetDynamicFeeNumerator(big.NewInt(0), big.NewInt(1), big.NewInt(10_000)); got.Sign() != 0 {
		t.Fatalf("got %v, want 0", got)
	}
	// surcharge is quadratic in accumulated movement
	low := GetDynamicFeeNumerator(big.NewInt(10_000), big.NewInt(1), big.NewInt(10_000))
	high := GetDynamicFeeNumerator(big.NewInt(20_000), big.NewInt(1), big.NewInt(10_000))
	if high.Cmp(new(big.Int).Mul(low, big.NewInt(2))) <= 0 {
		t.Fatalf("doubling volatility must more than double the surcharge: %v vs %v", low, high)
	}
}

func TestGetDynamicFeeParams(t *testing.T) {
	params, err := GetDynamicFeeParams(100, 0)
	if err != nil {
		t.Fatal(err)
	}
	if params.BinStep != shared.BinStepBpsDefault || params.FilterPeriod != shared.DynamicFeeFilterPeriodDefault {
		t.Fatalf("unexpected defaults: %+v", params)
	}
	if params.MaxVolatilityAccumulator == 0 || params.VariableFeeControl == 0 {
		t.Fatalf("derived parameters must be non-zero: %+v", params)
	}
	if err := ValidateDynamicFee(params.BinStep, params.BinStepU128, params.FilterPeriod, params.DecayPeriod, params.ReductionFactor, params.MaxVolatilityAccumulator, params.VariableFeeControl); err != nil {
		t.Fatal(err)
	}
	if _, err := GetDynamicFeeParams(100, shared.MaxPriceChangeBpsDefault+1); !errors.Is(err, shared.ErrInvalidParameters) {
		t.Fatalf("got %v, want ErrInvalidParameters", err)
	}
}
