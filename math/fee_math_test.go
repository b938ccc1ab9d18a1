package math

import (
	"math/big"
	"testing"

	"github.com/krazyTry/cpamm-go/shared"
)

func TestGetFeeMode(t *testing.T) {
	cases := []struct {
		name           string
		collectFeeMode shared.CollectFeeMode
		direction      shared.TradeDirection
		hasReferral    bool
		wantOnInput    bool
		wantOnTokenA   bool
	}{
		{"both-token a-to-b", shared.CollectFeeModeBothToken, shared.TradeDirectionAtoB, false, false, false},
		{"both-token b-to-a", shared.CollectFeeModeBothToken, shared.TradeDirectionBtoA, false, false, true},
		{"only-b a-to-b", shared.CollectFeeModeOnlyB, shared.TradeDirectionAtoB, false, false, false},
		{"only-b b-to-a", shared.CollectFeeModeOnlyB, shared.TradeDirectionBtoA, true, true, false},
	}
	for _, tc := range cases {
		mode := GetFeeMode(tc.collectFeeMode, tc.direction, tc.hasReferral)
		if mode.FeesOnInput != tc.wantOnInput || mode.FeesOnTokenA != tc.wantOnTokenA || mode.HasReferral != tc.hasReferral {
			t.Fatalf("%s: got %+v", tc.name, mode)
		}
	}
}

func TestSplitFees(t *testing.T) {
	// 1000 total: protocol 20% = 200, lp = 800,
	// referral 20% of protocol = 40, partner 50% of remainder = 80, protocol keeps 80
	split := SplitFees(big.NewInt(1000), 20, 50, 20, true, true)
	if split.LpFee.Int64() != 800 {
		t.Fatalf("lp fee: got %v, want 800", split.LpFee)
	}
	if split.ReferralFee.Int64() != 40 {
		t.Fatalf("referral fee: got %v, want 40", split.ReferralFee)
	}
	if split.PartnerFee.Int64() != 80 {
		t.Fatalf("partner fee: got %v, want 80", split.PartnerFee)
	}
	if split.ProtocolFee.Int64() != 80 {
		t.Fatalf("protocol fee: got %v, want 80", split.ProtocolFee)
	}
}

func TestSplitFeesNoReferralRedirectsToProtocol(t *testing.T) {
	split := SplitFees(big.NewInt(1000), 20, 0, 20, false, false)
	if split.ReferralFee.Sign() != 0 || split.PartnerFee.Sign() != 0 {
		t.Fatalf("unexpected referral/partner shares: %+v", split)
	}
	if split.ProtocolFee.Int64() != 200 {
		t.Fatalf("protocol fee: got %v, want 200", split.ProtocolFee)
	}
	total := new(big.Int).Add(split.LpFee, split.ProtocolFee)
	if total.Int64() != 1000 {
		t.Fatalf("shares must sum to the fee: got %v", total)
	}
}

func TestGetExcludedFeeAmountRoundsUp(t *testing.T) {
	// 1% of 1000 = 10 exactly
	excluded, fee, err := GetExcludedFeeAmount(big.NewInt(10_000_000), big.NewInt(1000))
	if err != nil {
		t.Fatal(err)
	}
	if fee.Int64() != 10 || excluded.Int64() != 990 {
		t.Fatalf("got fee=%v net=%v, want 10/990", fee, excluded)
	}
	// 1% of 999 = 9.99, fee rounds up to 10
	_, fee, err = GetExcludedFeeAmount(big.NewInt(10_000_000), big.NewInt(999))
	if err != nil {
		t.Fatal(err)
	}
	if fee.Int64() != 10 {
		t.Fatalf("fee must round up: got %v, want 10", fee)
	}
}

func TestIncludedExcludedFeeInverse(t *testing.T) {
	feeNumerator := big.NewInt(25_000_000) // 2.5%
	for _, net := range []int64{1, 997, 12_345, 1_000_000} {
		included, _, err := GetIncludedFeeAmount(feeNumerator, big.NewInt(net))
		if err != nil {
			t.Fatal(err)
		}
		back, _, err := GetExcludedFeeAmount(feeNumerator, included)
		if err != nil {
			t.Fatal(err)
		}
		if back.Int64() < net {
			t.Fatalf("gross-up of %d nets %v, shorts the target", net, back)
		}
	}
}

func TestGetFeeOnAmountSplitOrder(t *testing.T) {
	result, err := GetFeeOnAmount(big.NewInt(1000), big.NewInt(10_000_000), 20, 0, 20, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if result.Amount.Int64() != 990 {
		t.Fatalf("net amount: got %v, want 990", result.Amount)
	}
	if result.LpFee.Int64() != 8 || result.ProtocolFee.Int64() != 2 {
		t.Fatalf("fee split: got lp=%v protocol=%v, want 8/2", result.LpFee, result.ProtocolFee)
	}
}
