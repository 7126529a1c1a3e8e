package engine

import (
	"cosmossdk.io/math"

	"github.com/paw-chain/ammcore/x/amm/types"
)

var ratioScale = math.NewInt(types.RatioScale)

// ComputeInitialAdd mints the geometric mean floor(sqrt(ada * token)) of
// the first deposit. Valid only against a completely empty pool: zero
// reserves and zero lp supply.
func ComputeInitialAdd(pool types.PoolState, req types.LiquidityAddRequest) (types.LiquidityResult, error) {
	if req.AdaAmount.IsNil() || !req.AdaAmount.IsPositive() ||
		req.TokenAmount.IsNil() || !req.TokenAmount.IsPositive() {
		return types.LiquidityResult{}, types.ErrInvalidInput.Wrap("initial deposit amounts must be positive")
	}

	if !pool.AdaReserve.IsZero() || !pool.TokenReserve.IsZero() || !pool.TotalLpSupply.IsZero() {
		return types.LiquidityResult{}, types.ErrInvalidInput.Wrapf(
			"initial add requires an empty pool, got reserves %s/%s and supply %s",
			pool.AdaReserve, pool.TokenReserve, pool.TotalLpSupply,
		)
	}

	product, err := SafeMul(req.AdaAmount, req.TokenAmount)
	if err != nil {
		return types.LiquidityResult{}, err
	}

	lpMinted, err := IntSqrt(product)
	if err != nil {
		return types.LiquidityResult{}, err
	}

	if !lpMinted.IsPositive() {
		return types.LiquidityResult{}, types.ErrInvalidInput.Wrapf(
			"initial deposit %s/%s mints zero lp tokens",
			req.AdaAmount, req.TokenAmount,
		)
	}

	return types.LiquidityResult{
		LpMinted:        lpMinted,
		NewAdaReserve:   req.AdaAmount,
		NewTokenReserve: req.TokenAmount,
		NewLpSupply:     lpMinted,
		AdaRatio:        math.ZeroInt(),
		TokenRatio:      math.ZeroInt(),
	}, nil
}

// ComputeAdd credits lp shares for a deposit into an initialized pool at
// the smaller of the two per-side deposit ratios. Crediting the minimum
// means a skewed deposit can never over-credit its provider; the excess
// on the larger side is donated to the pool.
func ComputeAdd(pool types.PoolState, req types.LiquidityAddRequest) (types.LiquidityResult, error) {
	if req.AdaAmount.IsNil() || !req.AdaAmount.IsPositive() ||
		req.TokenAmount.IsNil() || !req.TokenAmount.IsPositive() {
		return types.LiquidityResult{}, types.ErrInvalidInput.Wrap("deposit amounts must be positive")
	}

	if pool.AdaReserve.IsNil() || pool.TokenReserve.IsNil() || pool.TotalLpSupply.IsNil() ||
		!pool.AdaReserve.IsPositive() || !pool.TokenReserve.IsPositive() || !pool.TotalLpSupply.IsPositive() {
		return types.LiquidityResult{}, types.ErrInvalidInput.Wrap(
			"add requires an initialized pool with positive reserves and lp supply",
		)
	}

	adaRatio, err := SafeMulDiv(req.AdaAmount, ratioScale, pool.AdaReserve)
	if err != nil {
		return types.LiquidityResult{}, err
	}

	tokenRatio, err := SafeMulDiv(req.TokenAmount, ratioScale, pool.TokenReserve)
	if err != nil {
		return types.LiquidityResult{}, err
	}

	effectiveRatio := math.MinInt(adaRatio, tokenRatio)

	lpMinted, err := SafeMulDiv(pool.TotalLpSupply, effectiveRatio, ratioScale)
	if err != nil {
		return types.LiquidityResult{}, err
	}

	if !lpMinted.IsPositive() {
		return types.LiquidityResult{}, types.ErrInvalidInput.Wrapf(
			"deposit %s/%s mints zero lp tokens", req.AdaAmount, req.TokenAmount,
		)
	}

	deviationBps, err := ratioDeviationBps(adaRatio, tokenRatio)
	if err != nil {
		return types.LiquidityResult{}, err
	}

	newAda, err := SafeAdd(pool.AdaReserve, req.AdaAmount)
	if err != nil {
		return types.LiquidityResult{}, err
	}

	newToken, err := SafeAdd(pool.TokenReserve, req.TokenAmount)
	if err != nil {
		return types.LiquidityResult{}, err
	}

	newSupply, err := SafeAdd(pool.TotalLpSupply, lpMinted)
	if err != nil {
		return types.LiquidityResult{}, err
	}

	return types.LiquidityResult{
		LpMinted:          lpMinted,
		NewAdaReserve:     newAda,
		NewTokenReserve:   newToken,
		NewLpSupply:       newSupply,
		AdaRatio:          adaRatio,
		TokenRatio:        tokenRatio,
		RatioDeviationBps: deviationBps,
	}, nil
}

// ComputeWithdrawal redeems lp tokens for a proportional, floor-divided
// share of both reserves. The new reserves are old minus the withdrawn
// amounts by construction, never recomputed independently.
func ComputeWithdrawal(pool types.PoolState, req types.WithdrawalRequest) (types.WithdrawalResult, error) {
	if req.LpTokensToBurn.IsNil() || !req.LpTokensToBurn.IsPositive() {
		return types.WithdrawalResult{}, types.ErrInvalidInput.Wrap("lp tokens to burn must be positive")
	}

	if pool.TotalLpSupply.IsNil() || !pool.TotalLpSupply.IsPositive() {
		return types.WithdrawalResult{}, types.ErrInvalidInput.Wrap("pool has no lp supply to redeem against")
	}

	if req.LpTokensToBurn.GT(pool.TotalLpSupply) {
		return types.WithdrawalResult{}, types.ErrInvalidInput.Wrapf(
			"cannot burn %s lp tokens, total supply is %s",
			req.LpTokensToBurn, pool.TotalLpSupply,
		)
	}

	adaOut, err := SafeMulDiv(pool.AdaReserve, req.LpTokensToBurn, pool.TotalLpSupply)
	if err != nil {
		return types.WithdrawalResult{}, err
	}

	tokenOut, err := SafeMulDiv(pool.TokenReserve, req.LpTokensToBurn, pool.TotalLpSupply)
	if err != nil {
		return types.WithdrawalResult{}, err
	}

	newAda, err := SafeSub(pool.AdaReserve, adaOut)
	if err != nil {
		return types.WithdrawalResult{}, err
	}

	newToken, err := SafeSub(pool.TokenReserve, tokenOut)
	if err != nil {
		return types.WithdrawalResult{}, err
	}

	newSupply, err := SafeSub(pool.TotalLpSupply, req.LpTokensToBurn)
	if err != nil {
		return types.WithdrawalResult{}, err
	}

	share, err := SafeMulDiv(req.LpTokensToBurn, bpsDenom, pool.TotalLpSupply)
	if err != nil {
		return types.WithdrawalResult{}, err
	}

	return types.WithdrawalResult{
		AdaOut:          adaOut,
		TokenOut:        tokenOut,
		NewAdaReserve:   newAda,
		NewTokenReserve: newToken,
		NewLpSupply:     newSupply,
		ShareBps:        share.Int64(),
	}, nil
}

// ratioDeviationBps measures how far apart the two deposit ratios are,
// in bps of the larger one.
func ratioDeviationBps(adaRatio, tokenRatio math.Int) (int64, error) {
	maxRatio := math.MaxInt(adaRatio, tokenRatio)
	if !maxRatio.IsPositive() {
		return 0, types.ErrInvalidInput.Wrap("deposit ratios round to zero")
	}

	diff := adaRatio.Sub(tokenRatio).Abs()

	deviation, err := SafeMulDiv(diff, bpsDenom, maxRatio)
	if err != nil {
		return 0, err
	}

	return deviation.Int64(), nil
}
