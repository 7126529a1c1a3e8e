package types

import (
	"cosmossdk.io/math"
)

// PoolState is the authoritative state of a constant-product pool as the
// host ledger persists it. TotalLpSupply is tracked here and only here;
// it is never inferred from the sign of a transaction's mint delta.
type PoolState struct {
	PoolId         uint64
	LpDenom        string
	AdaReserve     math.Int
	TokenReserve   math.Int
	TotalLpSupply  math.Int
	FeeBps         int64
	ProtocolFeeBps int64
	Paused         bool
}

// NewPoolState returns an uninitialized pool: zero reserves, zero supply.
// The first accepted initial-add transition funds it.
func NewPoolState(poolId uint64, lpDenom string, feeBps, protocolFeeBps int64) PoolState {
	return PoolState{
		PoolId:         poolId,
		LpDenom:        lpDenom,
		AdaReserve:     math.ZeroInt(),
		TokenReserve:   math.ZeroInt(),
		TotalLpSupply:  math.ZeroInt(),
		FeeBps:         feeBps,
		ProtocolFeeBps: protocolFeeBps,
	}
}

// IsInitialized reports whether the pool has ever accepted an initial add.
func (p PoolState) IsInitialized() bool {
	return !p.TotalLpSupply.IsNil() && p.TotalLpSupply.IsPositive()
}

// Validate checks the pool's self-consistency.
func (p PoolState) Validate() error {
	if p.LpDenom == "" {
		return ErrInvalidInput.Wrap("lp denom cannot be empty")
	}

	if p.AdaReserve.IsNil() || p.TokenReserve.IsNil() || p.TotalLpSupply.IsNil() {
		return ErrInvalidInput.Wrap("pool reserves and lp supply must be set")
	}

	if p.AdaReserve.IsNegative() || p.TokenReserve.IsNegative() {
		return ErrInvalidInput.Wrapf(
			"reserves cannot be negative: ada %s, token %s",
			p.AdaReserve, p.TokenReserve,
		)
	}

	if p.TotalLpSupply.IsNegative() {
		return ErrInvalidInput.Wrapf("lp supply cannot be negative: %s", p.TotalLpSupply)
	}

	if p.FeeBps < 0 || p.FeeBps > BpsDenominator {
		return ErrInvalidInput.Wrapf("fee bps %d outside [0, %d]", p.FeeBps, BpsDenominator)
	}

	if p.ProtocolFeeBps < 0 || p.ProtocolFeeBps > MaxProtocolFeeBps {
		return ErrInvalidInput.Wrapf("protocol fee bps %d outside [0, %d]", p.ProtocolFeeBps, MaxProtocolFeeBps)
	}

	// Reserves and supply move together: an initialized pool always has
	// both reserves strictly positive, an uninitialized pool has neither.
	if p.TotalLpSupply.IsPositive() {
		if !p.AdaReserve.IsPositive() || !p.TokenReserve.IsPositive() {
			return ErrInvalidInput.Wrapf(
				"initialized pool must hold positive reserves: ada %s, token %s",
				p.AdaReserve, p.TokenReserve,
			)
		}
	} else {
		if !p.AdaReserve.IsZero() || !p.TokenReserve.IsZero() {
			return ErrInvalidInput.Wrapf(
				"pool with zero lp supply cannot hold reserves: ada %s, token %s",
				p.AdaReserve, p.TokenReserve,
			)
		}
	}

	return nil
}

// Equal reports exact field-for-field equality between two pool states.
func (p PoolState) Equal(o PoolState) bool {
	return p.PoolId == o.PoolId &&
		p.LpDenom == o.LpDenom &&
		p.AdaReserve.Equal(o.AdaReserve) &&
		p.TokenReserve.Equal(o.TokenReserve) &&
		p.TotalLpSupply.Equal(o.TotalLpSupply) &&
		p.FeeBps == o.FeeBps &&
		p.ProtocolFeeBps == o.ProtocolFeeBps &&
		p.Paused == o.Paused
}
