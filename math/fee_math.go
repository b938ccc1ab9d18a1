package math

import (
	"math/big"

	"github.com/krazyTry/cpamm-go/shared"
)

// GetFeeMode resolves which token side fees are taken on for a trade.
// With CollectFeeModeOnlyB, B-to-A trades charge the fee on the input so the
// fee stays denominated in token B.
func GetFeeMode(collectFeeMode shared.CollectFeeMode, tradeDirection shared.TradeDirection, hasReferral bool) shared.FeeMode {
	feesOnInput := false
	feesOnTokenA := false
	if collectFeeMode == shared.CollectFeeModeBothToken {
		feesOnTokenA = tradeDirection == shared.TradeDirectionBtoA
	} else {
		feesOnInput = tradeDirection == shared.TradeDirectionBtoA
	}
	return shared.FeeMode{FeesOnInput: feesOnInput, FeesOnTokenA: feesOnTokenA, HasReferral: hasReferral}
}

// SplitFees carves the total trading fee into LP, protocol, partner and
// referral shares. Without a referral context the referral share stays with
// the protocol.
func SplitFees(feeAmount *big.Int, protocolFeePercent, partnerFeePercent, referralFeePercent uint8, hasReferral, hasPartner bool) shared.SplitFees {
	protocolFee := new(big.Int).Mul(feeAmount, big.NewInt(int64(protocolFeePercent)))
	protocolFee.Div(protocolFee, big.NewInt(100))
	lpFee := new(big.Int).Sub(feeAmount, protocolFee)

	referralFee := big.NewInt(0)
	if hasReferral {
		referralFee = new(big.Int).Mul(protocolFee, big.NewInt(int64(referralFeePercent)))
		referralFee.Div(referralFee, big.NewInt(100))
	}
	protocolFeeAfterReferral := new(big.Int).Sub(protocolFee, referralFee)

	partnerFee := big.NewInt(0)
	if hasPartner && partnerFeePercent > 0 {
		partnerFee = new(big.Int).Mul(protocolFeeAfterReferral, big.NewInt(int64(partnerFeePercent)))
		partnerFee.Div(partnerFee, big.NewInt(100))
	}
	finalProtocolFee := new(big.Int).Sub(protocolFeeAfterReferral, partnerFee)

	return shared.SplitFees{LpFee: lpFee, ProtocolFee: finalProtocolFee, PartnerFee: partnerFee, ReferralFee: referralFee}
}

// GetExcludedFeeAmount deducts the trading fee (rounded up, in the pool's
// favor) from an amount that includes it.
func GetExcludedFeeAmount(tradeFeeNumerator, includedFeeAmount *big.Int) (*big.Int, *big.Int, error) {
	tradingFee, err := MulDiv(includedFeeAmount, tradeFeeNumerator, big.NewInt(shared.FeeDenominator), shared.RoundingUp)
	if err != nil {
		return nil, nil, err
	}
	excluded := new(big.Int).Sub(includedFeeAmount, tradingFee)
	return excluded, tradingFee, nil
}

func GetIncludedFeeAmount(tradeFeeNumerator, excludedFeeAmount *big.Int) (*big.Int, *big.Int, error) {
	denominator := new(big.Int).Sub(big.NewInt(shared.FeeDenominator), tradeFeeNumerator)
	if denominator.Sign() <= 0 {
		return nil, nil, shared.ErrInvalidParameters
	}
	included, err := MulDiv(excludedFeeAmount, big.NewInt(shared.FeeDenominator), denominator, shared.RoundingUp)
	if err != nil {
		return nil, nil, err
	}
	feeAmount := new(big.Int).Sub(included, excludedFeeAmount)
	return included, feeAmount, nil
}

// GetFeeOnAmount applies tradeFeeNumerator to amount and splits the result.
func GetFeeOnAmount(amount, tradeFeeNumerator *big.Int, protocolFeePercent, partnerFeePercent, referralFeePercent uint8, hasReferral, hasPartner bool) (shared.FeeOnAmountResult, error) {
	excluded, tradingFee, err := GetExcludedFeeAmount(tradeFeeNumerator, amount)
	if err != nil {
		return shared.FeeOnAmountResult{}, err
	}
	split := SplitFees(tradingFee, protocolFeePercent, partnerFeePercent, referralFeePercent, hasReferral, hasPartner)
	return shared.FeeOnAmountResult{
		Amount:      excluded,
		LpFee:       split.LpFee,
		ProtocolFee: split.ProtocolFee,
		PartnerFee:  split.PartnerFee,
		ReferralFee: split.ReferralFee,
	}, nil
}
