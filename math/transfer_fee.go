package math

import "math/big"

const maxFeeBasisPoints = 10_000

// TransferFeeConfig mirrors the transfer-fee extension of fee-bearing mints.
// Pools holding such assets must move fee-included amounts so vault balances
// land exactly on the curve amounts.
type TransferFeeConfig struct {
	BasisPoints uint16
	MaximumFee  *big.Int
}

type TransferFeeIncludedAmount struct {
	Amount      *big.Int
	TransferFee *big.Int
}

type TransferFeeExcludedAmount struct {
	Amount      *big.Int
	TransferFee *big.Int
}

func calculatePreFeeAmount(transferFeeBasisPoints uint16, maximumFee, postFeeAmount *big.Int) *big.Int {
	if postFeeAmount.Sign() == 0 {
		return big.NewInt(0)
	}
	if transferFeeBasisPoints == 0 {
		return new(big.Int).Set(postFeeAmount)
	}
	if transferFeeBasisPoints == maxFeeBasisPoints {
		return new(big.Int).Add(postFeeAmount, maximumFee)
	}
	oneInBps := big.NewInt(maxFeeBasisPoints)
	numerator := new(big.Int).Mul(postFeeAmount, oneInBps)
	denominator := new(big.Int).Sub(oneInBps, big.NewInt(int64(transferFeeBasisPoints)))
	rawPreFee := new(big.Int).Add(numerator, denominator)
	rawPreFee.Sub(rawPreFee, big.NewInt(1))
	rawPreFee.Div(rawPreFee, denominator)

	if new(big.Int).Sub(rawPreFee, postFeeAmount).Cmp(maximumFee) >= 0 {
		return new(big.Int).Add(postFeeAmount, maximumFee)
	}
	return rawPreFee
}

func calculateFee(transferFeeBasisPoints uint16, maximumFee, amount *big.Int) *big.Int {
	if transferFeeBasisPoints == 0 || amount.Sign() == 0 {
		return big.NewInt(0)
	}
	if transferFeeBasisPoints == maxFeeBasisPoints {
		return new(big.Int).Set(maximumFee)
	}
	fee := new(big.Int).Mul(amount, big.NewInt(int64(transferFeeBasisPoints)))
	fee.Div(fee, big.NewInt(maxFeeBasisPoints))
	if fee.Cmp(maximumFee) > 0 {
		return new(big.Int).Set(maximumFee)
	}
	return fee
}

func calculateInverseFee(transferFeeBasisPoints uint16, maximumFee, postFeeAmount *big.Int) *big.Int {
	preFeeAmount := calculatePreFeeAmount(transferFeeBasisPoints, maximumFee, postFeeAmount)
	return calculateFee(transferFeeBasisPoints, maximumFee, preFeeAmount)
}

// CalculateTransferFeeIncludedAmount grosses up an amount so that the net of
// the mint's transfer fee equals transferFeeExcludedAmount.
func CalculateTransferFeeIncludedAmount(transferFeeExcludedAmount *big.Int, cfg *TransferFeeConfig) TransferFeeIncludedAmount {
	if transferFeeExcludedAmount.Sign() == 0 {
		return TransferFeeIncludedAmount{Amount: big.NewInt(0), TransferFee: big.NewInt(0)}
	}
	if cfg == nil {
		return TransferFeeIncludedAmount{Amount: new(big.Int).Set(transferFeeExcludedAmount), TransferFee: big.NewInt(0)}
	}
	maxFee := cfg.MaximumFee
	if maxFee == nil {
		maxFee = big.NewInt(0)
	}
	transferFee := calculateInverseFee(cfg.BasisPoints, maxFee, transferFeeExcludedAmount)
	return TransferFeeIncludedAmount{
		Amount:      new(big.Int).Add(transferFeeExcludedAmount, transferFee),
		TransferFee: transferFee,
	}
}

func CalculateTransferFeeExcludedAmount(transferFeeIncludedAmount *big.Int, cfg *TransferFeeConfig) TransferFeeExcludedAmount {
	if cfg == nil {
		return TransferFeeExcludedAmount{Amount: new(big.Int).Set(transferFeeIncludedAmount), TransferFee: big.NewInt(0)}
	}
	maxFee := cfg.MaximumFee
	if maxFee == nil {
		maxFee = big.NewInt(0)
	}
	fee := calculateFee(cfg.BasisPoints, maxFee, transferFeeIncludedAmount)
	return TransferFeeExcludedAmount{
		Amount:      new(big.Int).Sub(new(big.Int).Set(transferFeeIncludedAmount), fee),
		TransferFee: fee,
	}
}
