package engine

import (
	"math/big"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/cpamm-go/access"
	"github.com/krazyTry/cpamm-go/math"
	"github.com/krazyTry/cpamm-go/params"
	"github.com/krazyTry/cpamm-go/shared"
	"github.com/krazyTry/cpamm-go/state"
)

type PoolTokenParams struct {
	TokenAMint  solanago.PublicKey
	TokenBMint  solanago.PublicKey
	TokenAVault solanago.PublicKey
	TokenBVault solanago.PublicKey
	TokenAFlag  shared.TokenFlag
	TokenBFlag  shared.TokenFlag
	// Badges are required for non-standard mints; nil otherwise.
	TokenABadge *state.TokenBadge
	TokenBBadge *state.TokenBadge
}

type InitializePoolParams struct {
	Creator   solanago.PublicKey
	Config    *state.Config
	ConfigKey solanago.PublicKey
	Tokens    PoolTokenParams

	Liquidity *big.Int
	SqrtPrice *big.Int

	// Nil means the pool activates at the current point.
	ActivationPoint *uint64
}

// InitializeAmounts is what the creator must deposit so the vaults match the
// curve at the initial price. Both sides round up, in the pool's favor.
type InitializeAmounts struct {
	TokenAAmount uint64
	TokenBAmount uint64
}

// InitializePool creates a pool from a config template. The config's fee
// surface and price bounds are copied; its reference count grows so the
// template cannot be closed out from under the pool.
func (e *Engine) InitializePool(sender solanago.PublicKey, p InitializePoolParams, clock Clock) (*state.Pool, InitializeAmounts, error) {
	if p.Config == nil {
		return nil, InitializeAmounts{}, shared.ErrInvalidParameters
	}
	if !p.Config.PoolCreatorAuthority.IsZero() && !sender.Equals(p.Config.PoolCreatorAuthority) {
		return nil, InitializeAmounts{}, shared.ErrUnauthorized
	}
	pool, amounts, err := e.initializePool(initializePoolInternal{
		Creator:          p.Creator,
		Partner:          sender,
		Tokens:           p.Tokens,
		PoolFees:         p.Config.PoolFees,
		SqrtMinPrice:     p.Config.SqrtMinPrice.BigInt(),
		SqrtMaxPrice:     p.Config.SqrtMaxPrice.BigInt(),
		ActivationType:   p.Config.ActivationType,
		CollectFeeMode:   p.Config.CollectFeeMode,
		WhitelistedVault: p.Config.VaultConfigKey,
		PoolType:         shared.PoolTypePermissionless,
		Liquidity:        p.Liquidity,
		SqrtPrice:        p.SqrtPrice,
		ActivationPoint:  p.ActivationPoint,
	}, clock)
	if err != nil {
		return nil, InitializeAmounts{}, err
	}
	pool.Config = p.ConfigKey
	p.Config.ReferenceCount++
	return pool, amounts, nil
}

type InitializeCustomizablePoolParams struct {
	Creator solanago.PublicKey
	Tokens  PoolTokenParams

	PoolFees       params.PoolFeeParameters
	SqrtMinPrice   *big.Int
	SqrtMaxPrice   *big.Int
	ActivationType shared.ActivationType
	CollectFeeMode shared.CollectFeeMode

	Liquidity       *big.Int
	SqrtPrice       *big.Int
	ActivationPoint *uint64
}

// InitializeCustomizablePool creates a one-off pool with explicit parameters
// instead of a config template. No partner is attached.
func (e *Engine) InitializeCustomizablePool(sender solanago.PublicKey, p InitializeCustomizablePoolParams, clock Clock) (*state.Pool, InitializeAmounts, error) {
	if err := validatePriceBounds(p.SqrtMinPrice, p.SqrtMaxPrice); err != nil {
		return nil, InitializeAmounts{}, err
	}
	if p.ActivationType > shared.ActivationTypeTimestamp || p.CollectFeeMode > shared.CollectFeeModeOnlyB {
		return nil, InitializeAmounts{}, shared.ErrInvalidParameters
	}
	if err := p.PoolFees.Validate(); err != nil {
		return nil, InitializeAmounts{}, err
	}
	poolFees, err := poolFeesFromParams(p.PoolFees)
	if err != nil {
		return nil, InitializeAmounts{}, err
	}
	return e.initializePool(initializePoolInternal{
		Creator:         p.Creator,
		Tokens:          p.Tokens,
		PoolFees:        poolFees,
		SqrtMinPrice:    p.SqrtMinPrice,
		SqrtMaxPrice:    p.SqrtMaxPrice,
		ActivationType:  p.ActivationType,
		CollectFeeMode:  p.CollectFeeMode,
		PoolType:        shared.PoolTypeCustomizable,
		Liquidity:       p.Liquidity,
		SqrtPrice:       p.SqrtPrice,
		ActivationPoint: p.ActivationPoint,
	}, clock)
}

type initializePoolInternal struct {
	Creator          solanago.PublicKey
	Partner          solanago.PublicKey
	Tokens           PoolTokenParams
	PoolFees         state.PoolFeesStruct
	SqrtMinPrice     *big.Int
	SqrtMaxPrice     *big.Int
	ActivationType   shared.ActivationType
	CollectFeeMode   shared.CollectFeeMode
	WhitelistedVault solanago.PublicKey
	PoolType         shared.PoolType
	Liquidity        *big.Int
	SqrtPrice        *big.Int
	ActivationPoint  *uint64
}

func (e *Engine) initializePool(p initializePoolInternal, clock Clock) (*state.Pool, InitializeAmounts, error) {
	if p.Liquidity == nil || p.Liquidity.Sign() == 0 {
		return nil, InitializeAmounts{}, shared.ErrAmountIsZero
	}
	if p.SqrtPrice == nil || p.SqrtPrice.Cmp(p.SqrtMinPrice) < 0 || p.SqrtPrice.Cmp(p.SqrtMaxPrice) > 0 {
		return nil, InitializeAmounts{}, shared.ErrInvalidPriceRange
	}
	if err := validateTokenBadge(p.Tokens.TokenAMint, p.Tokens.TokenAFlag, p.Tokens.TokenABadge); err != nil {
		return nil, InitializeAmounts{}, err
	}
	if err := validateTokenBadge(p.Tokens.TokenBMint, p.Tokens.TokenBFlag, p.Tokens.TokenBBadge); err != nil {
		return nil, InitializeAmounts{}, err
	}

	currentPoint := access.CurrentPoint(p.ActivationType, clock)
	activationPoint := currentPoint
	if p.ActivationPoint != nil {
		if err := access.ValidateActivationPoint(*p.ActivationPoint, currentPoint, p.ActivationType); err != nil {
			return nil, InitializeAmounts{}, err
		}
		activationPoint = *p.ActivationPoint
	}

	amountA, amountB, err := math.GetInitializeAmounts(p.SqrtMinPrice, p.SqrtMaxPrice, p.SqrtPrice, p.Liquidity)
	if err != nil {
		return nil, InitializeAmounts{}, err
	}
	amountAU64, err := math.CheckedU64(amountA)
	if err != nil {
		return nil, InitializeAmounts{}, err
	}
	amountBU64, err := math.CheckedU64(amountB)
	if err != nil {
		return nil, InitializeAmounts{}, err
	}

	liquidity, err := math.U128FromBig(p.Liquidity)
	if err != nil {
		return nil, InitializeAmounts{}, err
	}
	sqrtMinPrice, err := math.U128FromBig(p.SqrtMinPrice)
	if err != nil {
		return nil, InitializeAmounts{}, err
	}
	sqrtMaxPrice, err := math.U128FromBig(p.SqrtMaxPrice)
	if err != nil {
		return nil, InitializeAmounts{}, err
	}
	sqrtPrice, err := math.U128FromBig(p.SqrtPrice)
	if err != nil {
		return nil, InitializeAmounts{}, err
	}

	poolFees := p.PoolFees
	if poolFees.DynamicFee.IsEnabled() {
		poolFees.DynamicFee.SqrtPriceReference = sqrtPrice
		poolFees.DynamicFee.LastUpdateTimestamp = clock.Timestamp
	}

	pool := &state.Pool{
		PoolFees:         poolFees,
		TokenAMint:       p.Tokens.TokenAMint,
		TokenBMint:       p.Tokens.TokenBMint,
		TokenAVault:      p.Tokens.TokenAVault,
		TokenBVault:      p.Tokens.TokenBVault,
		WhitelistedVault: p.WhitelistedVault,
		Partner:          p.Partner,
		Creator:          p.Creator,
		Liquidity:        liquidity,
		SqrtMinPrice:     sqrtMinPrice,
		SqrtMaxPrice:     sqrtMaxPrice,
		SqrtPrice:        sqrtPrice,
		ActivationPoint:  activationPoint,
		ActivationType:   p.ActivationType,
		PoolStatus:       shared.PoolStatusEnable,
		TokenAFlag:       p.Tokens.TokenAFlag,
		TokenBFlag:       p.Tokens.TokenBFlag,
		CollectFeeMode:   p.CollectFeeMode,
		PoolType:         p.PoolType,
	}
	return pool, InitializeAmounts{TokenAAmount: amountAU64, TokenBAmount: amountBU64}, nil
}

// SetPoolStatus enables or disables permissionless actions. Admin only.
func (e *Engine) SetPoolStatus(sender solanago.PublicKey, pool *state.Pool, status shared.PoolStatus) error {
	if !e.isAdmin(sender) {
		return shared.ErrUnauthorized
	}
	if status > shared.PoolStatusDisable {
		return shared.ErrInvalidParameters
	}
	pool.PoolStatus = status
	return nil
}

func validateTokenBadge(mint solanago.PublicKey, flag shared.TokenFlag, badge *state.TokenBadge) error {
	if flag == shared.TokenFlagStandard {
		return nil
	}
	if badge == nil || !badge.TokenMint.Equals(mint) {
		return shared.ErrInvalidTokenBadge
	}
	return nil
}
