package access

import (
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/cpamm-go/state"
)

// PoolActionAccess answers whether a permissionless action is allowed for a
// pool snapshot at one point in time. Implementations are pure; they are
// rebuilt per invocation and never cached.
type PoolActionAccess interface {
	CanAddLiquidity() bool
	CanRemoveLiquidity() bool
	CanSwap(sender solanago.PublicKey) bool
	CanCreatePosition() bool
	CanLockPosition() bool
}

// PermissionlessActionAccess gates actions by the pool's enabled status and
// activation point. The whitelisted vault may swap inside the pre-activation
// buffer window.
type PermissionlessActionAccess struct {
	enabled          bool
	activated        bool
	currentPoint     uint64
	activationPoint  uint64
	buffer           uint64
	whitelistedVault solanago.PublicKey
}

func NewPermissionlessActionAccess(pool *state.Pool, clock Clock) *PermissionlessActionAccess {
	currentPoint := CurrentPoint(pool.ActivationType, clock)
	return &PermissionlessActionAccess{
		enabled:          pool.IsEnabled(),
		activated:        currentPoint >= pool.ActivationPoint,
		currentPoint:     currentPoint,
		activationPoint:  pool.ActivationPoint,
		buffer:           Buffer(pool.ActivationType),
		whitelistedVault: pool.WhitelistedVault,
	}
}

func NewPoolAccessValidator(pool *state.Pool, clock Clock) PoolActionAccess {
	return NewPermissionlessActionAccess(pool, clock)
}

func (a *PermissionlessActionAccess) CanAddLiquidity() bool {
	return a.enabled && a.activated
}

func (a *PermissionlessActionAccess) CanRemoveLiquidity() bool {
	return a.enabled && a.activated
}

func (a *PermissionlessActionAccess) CanSwap(sender solanago.PublicKey) bool {
	if !a.enabled {
		return false
	}
	if a.activated {
		return true
	}
	if a.whitelistedVault.IsZero() || !sender.Equals(a.whitelistedVault) {
		return false
	}
	return a.currentPoint+a.buffer >= a.activationPoint
}

func (a *PermissionlessActionAccess) CanCreatePosition() bool {
	return a.enabled && a.activated
}

func (a *PermissionlessActionAccess) CanLockPosition() bool {
	return a.enabled && a.activated
}
