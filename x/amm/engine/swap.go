package engine

import (
	"cosmossdk.io/math"

	"github.com/paw-chain/ammcore/x/amm/types"
)

var bpsDenom = math.NewInt(types.BpsDenominator)

// ComputeSwap prices a constant-product swap against the pool's current
// reserves, with the fee charged on the input side:
//
//	amount_in_scaled = amount_in * (10000 - fee_bps)
//	output           = floor(amount_in_scaled * reserve_out / (reserve_in * 10000 + amount_in_scaled))
//
// The function is pure: it reads nothing but its arguments and performs
// no I/O. Slippage, dust, and size limits belong to the security policy;
// this only computes the result and enforces the arithmetic invariants.
func ComputeSwap(pool types.PoolState, req types.SwapRequest) (types.SwapResult, error) {
	// 1. Input validation
	if err := req.Direction.Validate(); err != nil {
		return types.SwapResult{}, err
	}

	if req.AmountIn.IsNil() || !req.AmountIn.IsPositive() {
		return types.SwapResult{}, types.ErrInvalidInput.Wrap("swap amount must be positive")
	}

	if pool.FeeBps < 0 || pool.FeeBps > types.BpsDenominator {
		return types.SwapResult{}, types.ErrInvalidInput.Wrapf(
			"fee bps %d outside [0, %d]", pool.FeeBps, types.BpsDenominator,
		)
	}

	if pool.ProtocolFeeBps < 0 || pool.ProtocolFeeBps > types.MaxProtocolFeeBps {
		return types.SwapResult{}, types.ErrInvalidInput.Wrapf(
			"protocol fee bps %d outside [0, %d]", pool.ProtocolFeeBps, types.MaxProtocolFeeBps,
		)
	}

	// 2. Select reserves by direction
	reserveIn, reserveOut := pool.AdaReserve, pool.TokenReserve
	if req.Direction == types.DirectionTokenToAda {
		reserveIn, reserveOut = pool.TokenReserve, pool.AdaReserve
	}

	if reserveIn.IsNil() || reserveOut.IsNil() || !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return types.SwapResult{}, types.ErrInvalidInput.Wrap("pool reserves must be positive")
	}

	// 3. Constant-product output with fee on input, all widened
	feeMultiplier := math.NewInt(types.BpsDenominator - pool.FeeBps)

	amountInScaled, err := SafeMul(req.AmountIn, feeMultiplier)
	if err != nil {
		return types.SwapResult{}, err
	}

	reserveInScaled, err := SafeMul(reserveIn, bpsDenom)
	if err != nil {
		return types.SwapResult{}, err
	}

	denominator, err := SafeAdd(reserveInScaled, amountInScaled)
	if err != nil {
		return types.SwapResult{}, err
	}

	amountOut, err := SafeMulDiv(amountInScaled, reserveOut, denominator)
	if err != nil {
		return types.SwapResult{}, err
	}

	if !amountOut.IsPositive() {
		return types.SwapResult{}, types.ErrInvalidInput.Wrapf(
			"swap of %s yields zero output", req.AmountIn,
		)
	}

	// 4. New reserves
	newReserveIn, err := SafeAdd(reserveIn, req.AmountIn)
	if err != nil {
		return types.SwapResult{}, err
	}

	newReserveOut, err := SafeSub(reserveOut, amountOut)
	if err != nil {
		return types.SwapResult{}, err
	}

	// 5. Constant-product invariant: k never decreases across a swap.
	// The formula guarantees it, so a failure here means corrupted math.
	oldK, err := SafeMul(reserveIn, reserveOut)
	if err != nil {
		return types.SwapResult{}, err
	}

	newK, err := SafeMul(newReserveIn, newReserveOut)
	if err != nil {
		return types.SwapResult{}, err
	}

	if newK.LT(oldK) {
		return types.SwapResult{}, types.ErrInvariantBroken.Wrapf(
			"k decreased from %s to %s", oldK, newK,
		)
	}

	// 6. Price impact on the integer mid-price scale
	impactBps, err := priceImpactBps(reserveIn, reserveOut, newReserveIn, newReserveOut)
	if err != nil {
		return types.SwapResult{}, err
	}

	// 7. Fee breakdown, reported for the host's revenue accounting. The
	// protocol portion is carved out of the total fee, not the input.
	fee, err := SafeMulDiv(req.AmountIn, math.NewInt(pool.FeeBps), bpsDenom)
	if err != nil {
		return types.SwapResult{}, err
	}

	protocolFee, err := SafeMulDiv(fee, math.NewInt(pool.ProtocolFeeBps), bpsDenom)
	if err != nil {
		return types.SwapResult{}, err
	}

	newAda, newToken := newReserveIn, newReserveOut
	if req.Direction == types.DirectionTokenToAda {
		newAda, newToken = newReserveOut, newReserveIn
	}

	return types.SwapResult{
		AmountIn:        req.AmountIn,
		AmountOut:       amountOut,
		Fee:             fee,
		ProtocolFee:     protocolFee,
		PriceImpactBps:  impactBps,
		NewAdaReserve:   newAda,
		NewTokenReserve: newToken,
	}, nil
}

// priceImpactBps computes the bps change of the mid-price out/in caused
// by the swap, on the fixed PriceScale. Integer arithmetic throughout.
func priceImpactBps(reserveIn, reserveOut, newReserveIn, newReserveOut math.Int) (int64, error) {
	priceScale := math.NewInt(types.PriceScale)

	priceBefore, err := SafeMulDiv(reserveOut, priceScale, reserveIn)
	if err != nil {
		return 0, err
	}

	if !priceBefore.IsPositive() {
		return 0, types.ErrInvalidInput.Wrap("pool mid-price rounds to zero")
	}

	priceAfter, err := SafeMulDiv(newReserveOut, priceScale, newReserveIn)
	if err != nil {
		return 0, err
	}

	diff := priceBefore.Sub(priceAfter).Abs()

	impact, err := SafeMulDiv(diff, bpsDenom, priceBefore)
	if err != nil {
		return 0, err
	}

	if !impact.IsInt64() {
		return 0, types.ErrOverflow.Wrapf("price impact %s out of range", impact)
	}

	return impact.Int64(), nil
}
