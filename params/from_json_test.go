package params

import (
	"errors"
	"math/big"
	"testing"

	"github.com/krazyTry/cpamm-go/shared"
)

func TestPoolFeeParametersFromJSON(t *testing.T) {
	doc := []byte(`{
		"baseFee": {
			"cliffFeeNumerator": 100000000,
			"numberOfPeriod": 10,
			"periodFrequency": 60,
			"reductionFactor": 5000000,
			"feeSchedulerMode": 0
		},
		"protocolFeePercent": 20,
		"partnerFeePercent": 50,
		"referralFeePercent": 20
	}`)
	out, err := PoolFeeParametersFromJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	if out.BaseFee.CliffFeeNumerator != 100_000_000 || out.BaseFee.NumberOfPeriod != 10 {
		t.Fatalf("base fee: %+v", out.BaseFee)
	}
	if out.ProtocolFeePercent != 20 || out.PartnerFeePercent != 50 || out.ReferralFeePercent != 20 {
		t.Fatalf("percentages: %+v", out)
	}
	if out.DynamicFee != nil {
		t.Fatal("no dynamicFee block was given")
	}
}

func TestPoolFeeParametersFromJSONWithDynamicFee(t *testing.T) {
	doc := []byte(`{
		"baseFee": {"cliffFeeNumerator": 10000000},
		"protocolFeePercent": 20,
		"dynamicFee": {
			"binStep": 1,
			"binStepU128": "1844674407370955",
			"filterPeriod": 10,
			"decayPeriod": 120,
			"reductionFactor": 5000,
			"maxVolatilityAccumulator": 14460000,
			"variableFeeControl": 956
		}
	}`)
	out, err := PoolFeeParametersFromJSON(doc)
	if err != nil {
		t.Fatal(err)
	}
	if out.DynamicFee == nil {
		t.Fatal("dynamicFee block was dropped")
	}
	if out.DynamicFee.BinStep != 1 || out.DynamicFee.DecayPeriod != 120 {
		t.Fatalf("dynamic fee: %+v", out.DynamicFee)
	}
	if out.DynamicFee.BinStepU128.String() != "1844674407370955" {
		t.Fatalf("bin step u128: %v", out.DynamicFee.BinStepU128)
	}
}

func TestPoolFeeParametersFromJSONRejectsGarbage(t *testing.T) {
	if _, err := PoolFeeParametersFromJSON([]byte(`{not json`)); !errors.Is(err, shared.ErrInvalidParameters) {
		t.Fatalf("got %v, want ErrInvalidParameters", err)
	}
	// validation still runs on well-formed documents
	overMax := []byte(`{"baseFee": {"cliffFeeNumerator": 600000000}, "protocolFeePercent": 20}`)
	if _, err := PoolFeeParametersFromJSON(overMax); !errors.Is(err, shared.ErrInvalidParameters) {
		t.Fatalf("got %v, want ErrInvalidParameters", err)
	}
	// a malformed binStepU128 literal fails the parse, not the validate
	badBinStep := []byte(`{"baseFee": {"cliffFeeNumerator": 10000000}, "protocolFeePercent": 20,
		"dynamicFee": {"binStep": 1, "binStepU128": "not a number"}}`)
	if _, err := PoolFeeParametersFromJSON(badBinStep); !errors.Is(err, shared.ErrInvalidParameters) {
		t.Fatalf("got %v, want ErrInvalidParameters", err)
	}
}

func TestVestingParametersValidate(t *testing.T) {
	current := uint64(1000)
	cliff := uint64(1200)

	ok := VestingParameters{
		CliffPoint:           &cliff,
		PeriodFrequency:      10,
		CliffUnlockLiquidity: big.NewInt(500),
		LiquidityPerPeriod:   big.NewInt(100),
		NumberOfPeriod:       5,
	}
	if err := ok.Validate(current, shared.MaxVestingTimeDuration); err != nil {
		t.Fatal(err)
	}
	if ok.GetTotalLockAmount().Int64() != 1000 {
		t.Fatalf("total lock: got %v, want 1000", ok.GetTotalLockAmount())
	}

	past := uint64(500)
	bad := ok
	bad.CliffPoint = &past
	if err := bad.Validate(current, shared.MaxVestingTimeDuration); err == nil {
		t.Fatal("cliff in the past must be rejected")
	}

	bad = ok
	bad.PeriodFrequency = 0
	if err := bad.Validate(current, shared.MaxVestingTimeDuration); err == nil {
		t.Fatal("periods without a frequency must be rejected")
	}

	bad = ok
	bad.PeriodFrequency = shared.MaxVestingTimeDuration
	if err := bad.Validate(current, shared.MaxVestingTimeDuration); err == nil {
		t.Fatal("a schedule longer than the maximum must be rejected")
	}

	// frequency*periods wraps uint64; the duration bound must still hold
	bad = ok
	bad.PeriodFrequency = 1 << 63
	bad.NumberOfPeriod = 4
	if err := bad.Validate(current, shared.MaxVestingTimeDuration); !errors.Is(err, shared.ErrInvalidVestingInfo) {
		t.Fatalf("got %v, want ErrInvalidVestingInfo for an overflowing schedule", err)
	}

	empty := VestingParameters{}
	if err := empty.Validate(current, shared.MaxVestingTimeDuration); err == nil {
		t.Fatal("a zero-amount schedule must be rejected")
	}
}
