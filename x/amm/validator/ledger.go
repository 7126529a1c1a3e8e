package validator

import (
	"cosmossdk.io/math"

	"github.com/paw-chain/ammcore/x/amm/types"
)

// checkSupplyDelta validates the claimed mint event against the
// engine-computed lp supply delta: the event must change exactly the
// pool's lp denomination by exactly the expected signed amount, and must
// not touch any other asset class under the same authorization. A zero
// expected delta (swaps) requires an empty event.
func checkSupplyDelta(ev types.MintEvent, lpDenom string, expected math.Int) []error {
	if ev.IsEmpty() {
		if expected.IsZero() {
			return nil
		}
		return []error{types.ErrSupplyMismatch.Wrapf(
			"mint event missing lp delta %s for %s", expected, lpDenom,
		)}
	}

	var violations []error

	sawLp := false
	for _, d := range ev.Deltas {
		if d.Denom != lpDenom {
			violations = append(violations, types.ErrUnauthorizedMint.Wrapf(
				"mint event touches foreign denom %s", d.Denom,
			))
			continue
		}

		sawLp = true
		if !d.Amount.Equal(expected) {
			violations = append(violations, types.ErrSupplyMismatch.Wrapf(
				"lp delta %s, engine computed %s", d.Amount, expected,
			))
		}
	}

	if !sawLp && !expected.IsZero() {
		violations = append(violations, types.ErrSupplyMismatch.Wrapf(
			"mint event missing lp delta %s for %s", expected, lpDenom,
		))
	}

	return violations
}
