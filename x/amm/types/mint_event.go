package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// AssetDelta is one signed entry of a transition's claimed mint event:
// positive amounts are mints, negative amounts are burns.
type AssetDelta struct {
	Denom  string
	Amount math.Int
}

// MintEvent is the full set of asset quantities a proposed transition
// claims to mint or burn under the pool's minting authorization.
type MintEvent struct {
	Deltas []AssetDelta
}

// NoMint returns an empty mint event, the only valid event for swaps.
func NoMint() MintEvent {
	return MintEvent{}
}

// MintOf returns a mint event crediting amount of denom.
func MintOf(denom string, amount math.Int) MintEvent {
	return MintEvent{Deltas: []AssetDelta{{Denom: denom, Amount: amount}}}
}

// BurnOf returns a mint event burning amount of denom.
func BurnOf(denom string, amount math.Int) MintEvent {
	return MintEvent{Deltas: []AssetDelta{{Denom: denom, Amount: amount.Neg()}}}
}

// IsEmpty reports whether the event mints or burns nothing.
func (e MintEvent) IsEmpty() bool {
	return len(e.Deltas) == 0
}

// AmountOf returns the signed delta for denom, zero if absent.
func (e MintEvent) AmountOf(denom string) math.Int {
	for _, d := range e.Deltas {
		if d.Denom == denom {
			return d.Amount
		}
	}
	return math.ZeroInt()
}

// Validate checks the event is well-formed: named denoms, set non-zero
// amounts, no duplicate denom entries.
func (e MintEvent) Validate() error {
	seen := make(map[string]struct{}, len(e.Deltas))
	for _, d := range e.Deltas {
		if d.Denom == "" {
			return sdkerrors.Wrap(ErrInvalidInput, "mint event denom cannot be empty")
		}

		if d.Amount.IsNil() || d.Amount.IsZero() {
			return sdkerrors.Wrapf(ErrInvalidInput, "mint event delta for %s must be non-zero", d.Denom)
		}

		if _, ok := seen[d.Denom]; ok {
			return sdkerrors.Wrapf(ErrInvalidInput, "duplicate mint event denom %s", d.Denom)
		}
		seen[d.Denom] = struct{}{}
	}

	return nil
}
