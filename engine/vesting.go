package engine

import (
	"math/big"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/cpamm-go/access"
	"github.com/krazyTry/cpamm-go/params"
	"github.com/krazyTry/cpamm-go/shared"
	"github.com/krazyTry/cpamm-go/state"
)

type LockPositionParams struct {
	Pool        *state.Pool
	Position    *state.Position
	PositionKey solanago.PublicKey
	Vesting     params.VestingParameters
}

// LockPosition attaches a vesting schedule to the position, moving the
// schedule total from the unlocked to the vested bucket. Owner only.
func (e *Engine) LockPosition(sender solanago.PublicKey, p LockPositionParams, clock Clock) (*state.Vesting, error) {
	if !sender.Equals(p.Position.Owner) {
		return nil, shared.ErrUnauthorized
	}
	if !access.NewPoolAccessValidator(p.Pool, clock).CanLockPosition() {
		return nil, shared.ErrPoolDisabled
	}
	currentPoint := access.CurrentPoint(p.Pool.ActivationType, clock)
	maxVestingDuration := access.MaxVestingDuration(p.Pool.ActivationType)
	if err := p.Vesting.Validate(currentPoint, maxVestingDuration); err != nil {
		return nil, err
	}

	totalLockLiquidity := p.Vesting.GetTotalLockAmount()
	if err := p.Position.Lock(totalLockLiquidity); err != nil {
		return nil, err
	}
	return state.NewVesting(
		p.PositionKey,
		p.Vesting.GetCliffPoint(currentPoint),
		p.Vesting.PeriodFrequency,
		p.Vesting.CliffUnlockLiquidity,
		p.Vesting.LiquidityPerPeriod,
		p.Vesting.NumberOfPeriod,
	)
}

// RefreshVesting releases whatever the schedules have unlocked as of now back
// into the position's unlocked bucket. Permissionless and idempotent at a
// fixed point; exhausted schedules report IsDone so the host can retire them.
func (e *Engine) RefreshVesting(pool *state.Pool, position *state.Position, vestings []*state.Vesting, clock Clock) (*big.Int, error) {
	currentPoint := access.CurrentPoint(pool.ActivationType, clock)
	totalReleased := big.NewInt(0)
	for _, vesting := range vestings {
		released := vesting.GetNewReleaseLiquidity(currentPoint)
		if released.Sign() == 0 {
			continue
		}
		if err := position.ReleaseVestedLiquidity(released); err != nil {
			return nil, err
		}
		if err := vesting.AccumulateReleasedLiquidity(released); err != nil {
			return nil, err
		}
		totalReleased.Add(totalReleased, released)
	}
	return totalReleased, nil
}

// PermanentLockPosition irreversibly locks part of the position's unlocked
// liquidity and mirrors the amount onto the pool counter. Owner only.
func (e *Engine) PermanentLockPosition(sender solanago.PublicKey, pool *state.Pool, position *state.Position, amount *big.Int, clock Clock) error {
	if !sender.Equals(position.Owner) {
		return shared.ErrUnauthorized
	}
	if amount == nil || amount.Sign() == 0 {
		return shared.ErrAmountIsZero
	}
	if !access.NewPoolAccessValidator(pool, clock).CanLockPosition() {
		return shared.ErrPoolDisabled
	}
	return pool.ApplyPermanentLock(position, amount)
}
