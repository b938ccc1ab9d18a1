package engine

import (
	"math/big"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/cpamm-go/math"
	"github.com/krazyTry/cpamm-go/params"
	"github.com/krazyTry/cpamm-go/shared"
	"github.com/krazyTry/cpamm-go/state"
)

type CreateConfigParams struct {
	Index                uint64
	PoolFees             params.PoolFeeParameters
	SqrtMinPrice         *big.Int
	SqrtMaxPrice         *big.Int
	VaultConfigKey       solanago.PublicKey
	PoolCreatorAuthority solanago.PublicKey
	ActivationType       shared.ActivationType
	CollectFeeMode       shared.CollectFeeMode
}

// CreateConfig mints a reusable fee-tier template. Admin only.
func (e *Engine) CreateConfig(sender solanago.PublicKey, p CreateConfigParams) (*state.Config, error) {
	if !e.isAdmin(sender) {
		return nil, shared.ErrUnauthorized
	}
	if err := validatePriceBounds(p.SqrtMinPrice, p.SqrtMaxPrice); err != nil {
		return nil, err
	}
	if p.ActivationType > shared.ActivationTypeTimestamp || p.CollectFeeMode > shared.CollectFeeModeOnlyB {
		return nil, shared.ErrInvalidParameters
	}
	if err := p.PoolFees.Validate(); err != nil {
		return nil, err
	}
	sqrtMinPrice, err := math.U128FromBig(p.SqrtMinPrice)
	if err != nil {
		return nil, err
	}
	sqrtMaxPrice, err := math.U128FromBig(p.SqrtMaxPrice)
	if err != nil {
		return nil, err
	}
	poolFees, err := poolFeesFromParams(p.PoolFees)
	if err != nil {
		return nil, err
	}
	return &state.Config{
		Index:                p.Index,
		PoolFees:             poolFees,
		SqrtMinPrice:         sqrtMinPrice,
		SqrtMaxPrice:         sqrtMaxPrice,
		VaultConfigKey:       p.VaultConfigKey,
		PoolCreatorAuthority: p.PoolCreatorAuthority,
		ActivationType:       p.ActivationType,
		CollectFeeMode:       p.CollectFeeMode,
	}, nil
}

type UpdateConfigParams struct {
	PoolFees             *params.PoolFeeParameters
	PoolCreatorAuthority *solanago.PublicKey
}

// UpdateConfig replaces the template's fee surface or creator authority.
// Pools already initialized from the config keep their copied values.
func (e *Engine) UpdateConfig(sender solanago.PublicKey, config *state.Config, p UpdateConfigParams) error {
	if !e.isAdmin(sender) {
		return shared.ErrUnauthorized
	}
	if p.PoolFees != nil {
		if err := p.PoolFees.Validate(); err != nil {
			return err
		}
		poolFees, err := poolFeesFromParams(*p.PoolFees)
		if err != nil {
			return err
		}
		config.PoolFees = poolFees
	}
	if p.PoolCreatorAuthority != nil {
		config.PoolCreatorAuthority = *p.PoolCreatorAuthority
	}
	return nil
}

// CloseConfig retires a template. Refused while any pool still references it.
func (e *Engine) CloseConfig(sender solanago.PublicKey, config *state.Config) error {
	if !e.isAdmin(sender) {
		return shared.ErrUnauthorized
	}
	if config.ReferenceCount > 0 {
		return shared.ErrConfigReferenced
	}
	return nil
}

// CreateTokenBadge whitelists a non-standard mint for pool creation.
func (e *Engine) CreateTokenBadge(sender, tokenMint solanago.PublicKey) (*state.TokenBadge, error) {
	if !e.isAdmin(sender) {
		return nil, shared.ErrUnauthorized
	}
	if tokenMint.IsZero() {
		return nil, shared.ErrInvalidParameters
	}
	return &state.TokenBadge{TokenMint: tokenMint}, nil
}

func (e *Engine) CloseTokenBadge(sender solanago.PublicKey, badge *state.TokenBadge) error {
	if !e.isAdmin(sender) {
		return shared.ErrUnauthorized
	}
	if badge == nil {
		return shared.ErrInvalidParameters
	}
	return nil
}

// CreateClaimFeeOperator delegates protocol-fee claiming to another account.
func (e *Engine) CreateClaimFeeOperator(sender, operator solanago.PublicKey) (*state.ClaimFeeOperator, error) {
	if !e.isAdmin(sender) {
		return nil, shared.ErrUnauthorized
	}
	if operator.IsZero() {
		return nil, shared.ErrInvalidParameters
	}
	return &state.ClaimFeeOperator{Operator: operator}, nil
}

func (e *Engine) CloseClaimFeeOperator(sender solanago.PublicKey, operator *state.ClaimFeeOperator) error {
	if !e.isAdmin(sender) {
		return shared.ErrUnauthorized
	}
	if operator == nil {
		return shared.ErrInvalidParameters
	}
	return nil
}

func validatePriceBounds(sqrtMinPrice, sqrtMaxPrice *big.Int) error {
	if sqrtMinPrice == nil || sqrtMaxPrice == nil {
		return shared.ErrInvalidParameters
	}
	if sqrtMinPrice.Cmp(shared.MinSqrtPrice) < 0 || sqrtMaxPrice.Cmp(shared.MaxSqrtPrice) > 0 {
		return shared.ErrInvalidPriceRange
	}
	if sqrtMinPrice.Cmp(sqrtMaxPrice) >= 0 {
		return shared.ErrInvalidPriceRange
	}
	return nil
}

// poolFeesFromParams copies a validated parameter set into the state layout.
// Dynamic-fee tracking fields start zeroed; the first swap seeds them.
func poolFeesFromParams(p params.PoolFeeParameters) (state.PoolFeesStruct, error) {
	out := state.PoolFeesStruct{
		BaseFee: state.BaseFeeStruct{
			CliffFeeNumerator: p.BaseFee.CliffFeeNumerator,
			FeeSchedulerMode:  p.BaseFee.FeeSchedulerMode,
			NumberOfPeriod:    p.BaseFee.NumberOfPeriod,
			PeriodFrequency:   p.BaseFee.PeriodFrequency,
			ReductionFactor:   p.BaseFee.ReductionFactor,
		},
		ProtocolFeePercent: p.ProtocolFeePercent,
		PartnerFeePercent:  p.PartnerFeePercent,
		ReferralFeePercent: p.ReferralFeePercent,
	}
	if p.DynamicFee != nil {
		binStepU128, err := math.U128FromBig(p.DynamicFee.BinStepU128)
		if err != nil {
			return state.PoolFeesStruct{}, err
		}
		out.DynamicFee = state.DynamicFeeStruct{
			Initialized:              1,
			MaxVolatilityAccumulator: p.DynamicFee.MaxVolatilityAccumulator,
			VariableFeeControl:       p.DynamicFee.VariableFeeControl,
			BinStep:                  p.DynamicFee.BinStep,
			FilterPeriod:             p.DynamicFee.FilterPeriod,
			DecayPeriod:              p.DynamicFee.DecayPeriod,
			ReductionFactor:          p.DynamicFee.ReductionFactor,
			BinStepU128:              binStepU128,
		}
	}
	return out, nil
}
