package engine

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/paw-chain/ammcore/x/amm/types"
)

// Overflow-safe arithmetic for the AMM engine. Every multiply-before-
// divide step runs through these helpers so an out-of-range intermediate
// becomes ErrOverflow instead of a panic or a silent wrap.

// maxValue bounds every intermediate at 2^256, the widest amount the
// host ledger can represent.
var maxValue = new(big.Int).Lsh(big.NewInt(1), 256)

// SafeAdd adds two math.Int values with overflow checking.
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.Cmp(maxValue) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrap("addition result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts b from a, rejecting negative results.
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, types.ErrOverflow.Wrapf("underflow: cannot subtract %s from %s", b, a)
	}
	return math.NewIntFromBigInt(new(big.Int).Sub(a.BigInt(), b.BigInt())), nil
}

// SafeMul multiplies two math.Int values with overflow checking.
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}

	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if result.Cmp(maxValue) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrap("multiplication result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv computes floor((a * b) / c) with a widened intermediate.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrOverflow.Wrap("division by zero")
	}

	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	result := new(big.Int).Quo(intermediate, c.BigInt())
	if result.CmpAbs(maxValue) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrap("division result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// IntSqrt returns floor(sqrt(x)) for non-negative x.
func IntSqrt(x math.Int) (math.Int, error) {
	if x.IsNegative() {
		return math.Int{}, types.ErrOverflow.Wrapf("square root of negative value %s", x)
	}
	return math.NewIntFromBigInt(new(big.Int).Sqrt(x.BigInt())), nil
}
