package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// PolicyVersion tags the economic profile of a deployment. Historic
// deployments differ only in dust minimums and draining floors; the swap
// and liquidity math is shared and never forked per version.
type PolicyVersion uint8

const (
	PolicyLegacy PolicyVersion = iota
	PolicyCore
	PolicyV5
)

func (v PolicyVersion) String() string {
	switch v {
	case PolicyLegacy:
		return "legacy"
	case PolicyCore:
		return "core"
	case PolicyV5:
		return "v5"
	default:
		return "unknown"
	}
}

// Validate checks the version is one of the defined profiles.
func (v PolicyVersion) Validate() error {
	switch v {
	case PolicyLegacy, PolicyCore, PolicyV5:
		return nil
	default:
		return sdkerrors.Wrapf(ErrInvalidInput, "unknown policy version %d", v)
	}
}

// Params holds every externally-owned knob of the validation engine.
// Params are injected by the host or test harness, never read from
// globals.
type Params struct {
	Version PolicyVersion

	// Default pool fees, used by NewPoolState callers and config loading.
	FeeBps         int64
	ProtocolFeeBps int64

	// Dust floors: minimum sizes per operation input.
	MinSwapAmount    math.Int
	MinDepositAmount math.Int
	MinLpBurnAmount  math.Int

	// Single-operation caps, in bps of the relevant reserve or supply.
	MaxSwapReserveBps    int64
	MaxDepositReserveBps int64
	MaxWithdrawShareBps  int64
	MaxEmergencyShareBps int64

	// Draining floors: post-transition reserves and lp supply must stay
	// at or above these. The emergency profile is the relaxed one.
	MinAdaReserve            math.Int
	MinTokenReserve          math.Int
	EmergencyMinAdaReserve   math.Int
	EmergencyMinTokenReserve math.Int
	MinLpSupply              math.Int

	RatioToleranceBps int64
	MaxPriceImpactBps int64
}

// DefaultParams returns the core profile.
func DefaultParams() Params {
	return ParamsForVersion(PolicyCore)
}

// ParamsForVersion returns the parameter profile for a policy version.
func ParamsForVersion(v PolicyVersion) Params {
	p := Params{
		Version:        v,
		FeeBps:         30, // 0.3%
		ProtocolFeeBps: 5,  // 0.05% of the swap fee, carved out of the total

		MinSwapAmount:    math.NewInt(1000),
		MinDepositAmount: math.NewInt(1000),
		MinLpBurnAmount:  math.NewInt(100),

		MaxSwapReserveBps:    5000, // 50%
		MaxDepositReserveBps: 5000, // 50%
		MaxWithdrawShareBps:  9000, // 90%
		MaxEmergencyShareBps: 9900, // 99%

		MinAdaReserve:            math.NewInt(1000),
		MinTokenReserve:          math.NewInt(1000),
		EmergencyMinAdaReserve:   math.NewInt(1),
		EmergencyMinTokenReserve: math.NewInt(1),
		MinLpSupply:              math.NewInt(100),

		RatioToleranceBps: 500,  // 5%
		MaxPriceImpactBps: 1000, // 10%
	}

	switch v {
	case PolicyLegacy:
		// The original deployment ran with looser floors and no dust
		// minimum on withdrawals.
		p.MinSwapAmount = math.NewInt(1)
		p.MinDepositAmount = math.NewInt(1)
		p.MinLpBurnAmount = math.NewInt(1)
		p.MinAdaReserve = math.NewInt(1)
		p.MinTokenReserve = math.NewInt(1)
		p.MinLpSupply = math.NewInt(1)
		p.MaxPriceImpactBps = BpsDenominator
	case PolicyV5:
		// The enhanced deployment tightened dust and draining floors.
		p.MinSwapAmount = math.NewInt(10_000)
		p.MinDepositAmount = math.NewInt(10_000)
		p.MinLpBurnAmount = math.NewInt(1000)
		p.MinAdaReserve = math.NewInt(1_000_000)
		p.MinTokenReserve = math.NewInt(10_000)
		p.EmergencyMinAdaReserve = math.NewInt(1000)
		p.EmergencyMinTokenReserve = math.NewInt(10)
		p.MinLpSupply = math.NewInt(1000)
	}

	return p
}

// Validate validates the full parameter set.
func (p Params) Validate() error {
	if err := p.Version.Validate(); err != nil {
		return err
	}

	if p.FeeBps < 0 || p.FeeBps > BpsDenominator {
		return sdkerrors.Wrapf(ErrInvalidInput, "fee bps %d outside [0, %d]", p.FeeBps, BpsDenominator)
	}

	if p.ProtocolFeeBps < 0 || p.ProtocolFeeBps > MaxProtocolFeeBps {
		return sdkerrors.Wrapf(ErrInvalidInput, "protocol fee bps %d outside [0, %d]", p.ProtocolFeeBps, MaxProtocolFeeBps)
	}

	for _, m := range []struct {
		name  string
		value math.Int
	}{
		{"min swap amount", p.MinSwapAmount},
		{"min deposit amount", p.MinDepositAmount},
		{"min lp burn amount", p.MinLpBurnAmount},
		{"min ada reserve", p.MinAdaReserve},
		{"min token reserve", p.MinTokenReserve},
		{"emergency min ada reserve", p.EmergencyMinAdaReserve},
		{"emergency min token reserve", p.EmergencyMinTokenReserve},
		{"min lp supply", p.MinLpSupply},
	} {
		if m.value.IsNil() || m.value.IsNegative() {
			return sdkerrors.Wrapf(ErrInvalidInput, "%s must be set and non-negative", m.name)
		}
	}

	for _, b := range []struct {
		name  string
		value int64
	}{
		{"max swap reserve bps", p.MaxSwapReserveBps},
		{"max deposit reserve bps", p.MaxDepositReserveBps},
		{"max withdraw share bps", p.MaxWithdrawShareBps},
		{"max emergency share bps", p.MaxEmergencyShareBps},
		{"ratio tolerance bps", p.RatioToleranceBps},
		{"max price impact bps", p.MaxPriceImpactBps},
	} {
		if b.value <= 0 || b.value > BpsDenominator {
			return sdkerrors.Wrapf(ErrInvalidInput, "%s %d outside (0, %d]", b.name, b.value, BpsDenominator)
		}
	}

	if p.MaxEmergencyShareBps < p.MaxWithdrawShareBps {
		return sdkerrors.Wrapf(
			ErrInvalidInput,
			"emergency share cap %d below normal cap %d",
			p.MaxEmergencyShareBps, p.MaxWithdrawShareBps,
		)
	}

	// The emergency floors relax the normal ones, never tighten them.
	if p.EmergencyMinAdaReserve.GT(p.MinAdaReserve) || p.EmergencyMinTokenReserve.GT(p.MinTokenReserve) {
		return sdkerrors.Wrap(ErrInvalidInput, "emergency draining floors cannot exceed normal floors")
	}

	return nil
}
