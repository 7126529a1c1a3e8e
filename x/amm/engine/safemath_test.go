package engine_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/ammcore/x/amm/engine"
	"github.com/paw-chain/ammcore/x/amm/types"
)

func TestSafeMul_OverflowRejected(t *testing.T) {
	huge := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 200))

	_, err := engine.SafeMul(huge, huge)
	require.ErrorIs(t, err, types.ErrOverflow)
}

func TestSafeSub_UnderflowRejected(t *testing.T) {
	_, err := engine.SafeSub(math.NewInt(1), math.NewInt(2))
	require.ErrorIs(t, err, types.ErrOverflow)
}

func TestSafeMulDiv(t *testing.T) {
	res, err := engine.SafeMulDiv(math.NewInt(997000), math.NewInt(2000), math.NewInt(10_997_000))
	require.NoError(t, err)
	require.Equal(t, "181", res.String())

	_, err = engine.SafeMulDiv(math.NewInt(1), math.NewInt(1), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrOverflow)
}

func TestIntSqrt(t *testing.T) {
	res, err := engine.IntSqrt(math.NewInt(2_000_000))
	require.NoError(t, err)
	require.Equal(t, "1414", res.String())

	res, err = engine.IntSqrt(math.ZeroInt())
	require.NoError(t, err)
	require.True(t, res.IsZero())

	_, err = engine.IntSqrt(math.NewInt(-1))
	require.ErrorIs(t, err, types.ErrOverflow)
}
