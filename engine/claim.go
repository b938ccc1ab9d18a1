package engine

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/cpamm-go/shared"
	"github.com/krazyTry/cpamm-go/state"
)

// ClaimedFees is a pair of token amounts the host must transfer out.
type ClaimedFees struct {
	TokenAAmount uint64
	TokenBAmount uint64
}

// ClaimPositionFee settles the position up to now and drains its pending LP
// fees. Owner only.
func (e *Engine) ClaimPositionFee(sender solanago.PublicKey, pool *state.Pool, position *state.Position, clock Clock) (ClaimedFees, error) {
	if !sender.Equals(position.Owner) {
		return ClaimedFees{}, shared.ErrUnauthorized
	}
	if err := pool.SettlePosition(position, clock.Timestamp); err != nil {
		return ClaimedFees{}, err
	}
	feeA, feeB := position.ClaimFees()
	return ClaimedFees{TokenAAmount: feeA, TokenBAmount: feeB}, nil
}

// ClaimProtocolFee drains the pool's accrued protocol fees up to the caps.
// Allowed for the admin or a delegated claim-fee operator.
func (e *Engine) ClaimProtocolFee(sender solanago.PublicKey, operator *state.ClaimFeeOperator, pool *state.Pool, maxAmountA, maxAmountB uint64) (ClaimedFees, error) {
	if !e.isAdmin(sender) && (operator == nil || !operator.Operator.Equals(sender)) {
		return ClaimedFees{}, shared.ErrUnauthorized
	}
	amountA, amountB := pool.ClaimProtocolFee(maxAmountA, maxAmountB)
	return ClaimedFees{TokenAAmount: amountA, TokenBAmount: amountB}, nil
}

// ClaimPartnerFee drains the pool's accrued partner fees up to the caps.
// Partner only.
func (e *Engine) ClaimPartnerFee(sender solanago.PublicKey, pool *state.Pool, maxAmountA, maxAmountB uint64) (ClaimedFees, error) {
	if !pool.HasPartner() || !sender.Equals(pool.Partner) {
		return ClaimedFees{}, shared.ErrUnauthorized
	}
	amountA, amountB := pool.ClaimPartnerFee(maxAmountA, maxAmountB)
	return ClaimedFees{TokenAAmount: amountA, TokenBAmount: amountB}, nil
}
