package types

import (
	"cosmossdk.io/math"
)

// SwapResult is the engine-computed outcome of a swap. Every field is
// derived from the old state and the request; nothing is re-measured.
type SwapResult struct {
	AmountIn        math.Int
	AmountOut       math.Int
	Fee             math.Int
	ProtocolFee     math.Int
	PriceImpactBps  int64
	NewAdaReserve   math.Int
	NewTokenReserve math.Int
}

// LiquidityResult is the engine-computed outcome of an add-liquidity
// operation. AdaRatio and TokenRatio are scaled by RatioScale.
type LiquidityResult struct {
	LpMinted          math.Int
	NewAdaReserve     math.Int
	NewTokenReserve   math.Int
	NewLpSupply       math.Int
	AdaRatio          math.Int
	TokenRatio        math.Int
	RatioDeviationBps int64
}

// WithdrawalResult is the engine-computed outcome of a remove-liquidity
// operation. New reserves are old minus the withdrawn amounts by
// construction, guaranteeing exact conservation.
type WithdrawalResult struct {
	AdaOut          math.Int
	TokenOut        math.Int
	NewAdaReserve   math.Int
	NewTokenReserve math.Int
	NewLpSupply     math.Int
	ShareBps        int64
}
