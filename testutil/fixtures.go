// Package testutil provides shared fixtures for the engine, policy, and
// validator tests.
package testutil

import (
	"cosmossdk.io/math"

	"github.com/paw-chain/ammcore/x/amm/types"
)

const (
	// LpDenom is the lp denomination used by test pools.
	LpDenom = "lp/pool/1"

	// Deadline is a far-future deadline for requests that should not
	// expire during a test.
	Deadline = int64(1_000_000)
)

// SmallPool returns the 1000/2000 reserve pool with the 0.3% fee used by
// the worked examples: lp supply 1414 = floor(sqrt(1000 * 2000)).
func SmallPool() types.PoolState {
	return types.PoolState{
		PoolId:         1,
		LpDenom:        LpDenom,
		AdaReserve:     math.NewInt(1000),
		TokenReserve:   math.NewInt(2000),
		TotalLpSupply:  math.NewInt(1414),
		FeeBps:         30,
		ProtocolFeeBps: 5,
	}
}

// LargePool returns a pool with production-scale reserves.
func LargePool() types.PoolState {
	return types.PoolState{
		PoolId:         1,
		LpDenom:        LpDenom,
		AdaReserve:     math.NewInt(500_000_000_000), // 500k ada in lovelace
		TokenReserve:   math.NewInt(2_000_000_000_000),
		TotalLpSupply:  math.NewInt(1_000_000_000_000),
		FeeBps:         30,
		ProtocolFeeBps: 5,
	}
}

// EmptyPool returns an uninitialized pool ready for an initial add.
func EmptyPool() types.PoolState {
	return types.NewPoolState(1, LpDenom, 30, 5)
}

// PermissiveParams returns params with dust minimums, floors, and impact
// caps relaxed to 1 unit / full scale, for tests that exercise the
// worked examples at small magnitudes.
func PermissiveParams() types.Params {
	return types.ParamsForVersion(types.PolicyLegacy)
}
