package state

import (
	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/cpamm-go/shared"
)

// Config is a reusable fee-tier template. Pools copy its fields at creation
// and never look back; ReferenceCount only guards closing.
type Config struct {
	Index uint64

	PoolFees PoolFeesStruct

	SqrtMinPrice binary.Uint128
	SqrtMaxPrice binary.Uint128

	VaultConfigKey       solanago.PublicKey
	PoolCreatorAuthority solanago.PublicKey

	ActivationType shared.ActivationType
	CollectFeeMode shared.CollectFeeMode

	ReferenceCount uint64
}

// TokenBadge whitelists a non-standard mint (e.g. one charging transfer fees)
// for pool creation.
type TokenBadge struct {
	TokenMint solanago.PublicKey
}

// ClaimFeeOperator allows an account other than the admin to trigger protocol
// fee claims.
type ClaimFeeOperator struct {
	Operator solanago.PublicKey
}
