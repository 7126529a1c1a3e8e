package policy

import (
	"cosmossdk.io/math"

	"github.com/paw-chain/ammcore/x/amm/engine"
	"github.com/paw-chain/ammcore/x/amm/types"
)

// Policy evaluates the configured security constraints against an
// engine-computed result. Every predicate is pure and independent and
// reports its own error kind; the composite checks run all applicable
// predicates and return the complete violation list instead of stopping
// at the first failure.
type Policy struct {
	params types.Params
}

// New builds a Policy from a validated parameter set.
func New(params types.Params) (*Policy, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Policy{params: params}, nil
}

// Params returns the parameter set the policy was built with.
func (p *Policy) Params() types.Params {
	return p.params
}

// CheckDeadline rejects operations whose deadline is behind the
// caller-supplied reference time. Reference time is data, not a clock;
// the host passes its block height or slot bound.
func (p *Policy) CheckDeadline(referenceTime, deadline int64) error {
	if referenceTime > deadline {
		return types.ErrDeadlineExpired.Wrapf(
			"reference time %d past deadline %d", referenceTime, deadline,
		)
	}
	return nil
}

// CheckMinOutput enforces the caller's slippage bound on one output leg.
func (p *Policy) CheckMinOutput(out, minOut math.Int, leg string) error {
	if out.LT(minOut) {
		return types.ErrSlippageViolation.Wrapf(
			"%s output %s below caller minimum %s", leg, out, minOut,
		)
	}
	return nil
}

// CheckPriceImpact enforces the configured price-impact cap, tightened by
// the request's own bound when one is set.
func (p *Policy) CheckPriceImpact(impactBps, requestMaxBps int64) error {
	limit := p.params.MaxPriceImpactBps
	if requestMaxBps > 0 && requestMaxBps < limit {
		limit = requestMaxBps
	}

	if impactBps > limit {
		return types.ErrSlippageViolation.Wrapf(
			"price impact %d bps exceeds maximum %d bps", impactBps, limit,
		)
	}
	return nil
}

// CheckSwapDust enforces the swap dust floor.
func (p *Policy) CheckSwapDust(amountIn math.Int) error {
	if amountIn.LT(p.params.MinSwapAmount) {
		return types.ErrDustAmount.Wrapf(
			"swap amount %s below minimum %s", amountIn, p.params.MinSwapAmount,
		)
	}
	return nil
}

// CheckDepositDust enforces the deposit dust floor on both legs.
func (p *Policy) CheckDepositDust(adaAmount, tokenAmount math.Int) error {
	if adaAmount.LT(p.params.MinDepositAmount) {
		return types.ErrDustAmount.Wrapf(
			"ada deposit %s below minimum %s", adaAmount, p.params.MinDepositAmount,
		)
	}
	if tokenAmount.LT(p.params.MinDepositAmount) {
		return types.ErrDustAmount.Wrapf(
			"token deposit %s below minimum %s", tokenAmount, p.params.MinDepositAmount,
		)
	}
	return nil
}

// CheckBurnDust enforces the lp burn dust floor.
func (p *Policy) CheckBurnDust(lpBurn math.Int) error {
	if lpBurn.LT(p.params.MinLpBurnAmount) {
		return types.ErrDustAmount.Wrapf(
			"lp burn %s below minimum %s", lpBurn, p.params.MinLpBurnAmount,
		)
	}
	return nil
}

// CheckSwapSize caps a single swap at the configured fraction of the
// input-side reserve.
func (p *Policy) CheckSwapSize(amountIn, reserveIn math.Int) error {
	return p.checkReserveFraction(amountIn, reserveIn, p.params.MaxSwapReserveBps, "swap")
}

// CheckDepositSize caps a single deposit at the configured fraction of
// each reserve.
func (p *Policy) CheckDepositSize(adaAmount, adaReserve, tokenAmount, tokenReserve math.Int) error {
	if err := p.checkReserveFraction(adaAmount, adaReserve, p.params.MaxDepositReserveBps, "ada deposit"); err != nil {
		return err
	}
	return p.checkReserveFraction(tokenAmount, tokenReserve, p.params.MaxDepositReserveBps, "token deposit")
}

func (p *Policy) checkReserveFraction(amount, reserve math.Int, capBps int64, label string) error {
	limit, err := engine.SafeMulDiv(reserve, math.NewInt(capBps), math.NewInt(types.BpsDenominator))
	if err != nil {
		return err
	}

	if amount.GT(limit) {
		return types.ErrExcessiveOperation.Wrapf(
			"%s amount %s exceeds %d bps of reserve %s", label, amount, capBps, reserve,
		)
	}
	return nil
}

// CheckWithdrawShare caps the pool share a single withdrawal may redeem.
func (p *Policy) CheckWithdrawShare(shareBps int64, emergency bool) error {
	limit := p.params.MaxWithdrawShareBps
	if emergency {
		limit = p.params.MaxEmergencyShareBps
	}

	if shareBps > limit {
		return types.ErrExcessiveOperation.Wrapf(
			"withdrawal share %d bps exceeds maximum %d bps", shareBps, limit,
		)
	}
	return nil
}

// CheckReserveFloor enforces the post-transition draining floors on both
// reserves. Emergency withdrawals get the relaxed profile.
func (p *Policy) CheckReserveFloor(newAda, newToken math.Int, emergency bool) error {
	minAda, minToken := p.params.MinAdaReserve, p.params.MinTokenReserve
	if emergency {
		minAda, minToken = p.params.EmergencyMinAdaReserve, p.params.EmergencyMinTokenReserve
	}

	if newAda.LT(minAda) {
		return types.ErrPoolDraining.Wrapf(
			"ada reserve %s would fall below floor %s", newAda, minAda,
		)
	}
	if newToken.LT(minToken) {
		return types.ErrPoolDraining.Wrapf(
			"token reserve %s would fall below floor %s", newToken, minToken,
		)
	}
	return nil
}

// CheckSupplyFloor enforces the minimum lp supply a withdrawal must
// leave behind, preventing full-pool closure via ordinary withdrawal.
func (p *Policy) CheckSupplyFloor(newSupply math.Int) error {
	if newSupply.LT(p.params.MinLpSupply) {
		return types.ErrPoolDraining.Wrapf(
			"lp supply %s would fall below floor %s", newSupply, p.params.MinLpSupply,
		)
	}
	return nil
}

// CheckRatioTolerance enforces the deposit ratio-balance tolerance,
// tightened by the request's own bound when one is set.
func (p *Policy) CheckRatioTolerance(deviationBps, requestMaxBps int64) error {
	limit := p.params.RatioToleranceBps
	if requestMaxBps > 0 && requestMaxBps < limit {
		limit = requestMaxBps
	}

	if deviationBps > limit {
		return types.ErrRatioImbalance.Wrapf(
			"deposit ratio deviation %d bps exceeds tolerance %d bps", deviationBps, limit,
		)
	}
	return nil
}

// ForSwap runs every swap predicate and returns all violations.
func (p *Policy) ForSwap(referenceTime int64, pool types.PoolState, req types.SwapRequest, res types.SwapResult) []error {
	reserveIn := pool.AdaReserve
	if req.Direction == types.DirectionTokenToAda {
		reserveIn = pool.TokenReserve
	}

	var violations []error
	for _, err := range []error{
		p.CheckDeadline(referenceTime, req.Deadline),
		p.CheckSwapDust(req.AmountIn),
		p.CheckSwapSize(req.AmountIn, reserveIn),
		p.CheckMinOutput(res.AmountOut, req.MinOut, "swap"),
		p.CheckPriceImpact(res.PriceImpactBps, req.MaxSlippageBps),
		p.CheckReserveFloor(res.NewAdaReserve, res.NewTokenReserve, false),
	} {
		if err != nil {
			violations = append(violations, err)
		}
	}
	return violations
}

// ForAdd runs every add-liquidity predicate and returns all violations.
// Initial adds have no reserves to compare against, so the size and
// ratio checks only apply to follow-up deposits.
func (p *Policy) ForAdd(referenceTime int64, pool types.PoolState, req types.LiquidityAddRequest, res types.LiquidityResult) []error {
	checks := []error{
		p.CheckDeadline(referenceTime, req.Deadline),
		p.CheckDepositDust(req.AdaAmount, req.TokenAmount),
		p.CheckMinOutput(res.LpMinted, req.MinLpOut, "lp"),
	}

	if !req.IsInitial {
		checks = append(checks,
			p.CheckDepositSize(req.AdaAmount, pool.AdaReserve, req.TokenAmount, pool.TokenReserve),
			p.CheckRatioTolerance(res.RatioDeviationBps, req.MaxRatioDeviationBps),
		)
	}

	var violations []error
	for _, err := range checks {
		if err != nil {
			violations = append(violations, err)
		}
	}
	return violations
}

// ForWithdrawal runs every withdrawal predicate and returns all
// violations.
func (p *Policy) ForWithdrawal(referenceTime int64, pool types.PoolState, req types.WithdrawalRequest, res types.WithdrawalResult) []error {
	var violations []error
	for _, err := range []error{
		p.CheckDeadline(referenceTime, req.Deadline),
		p.CheckBurnDust(req.LpTokensToBurn),
		p.CheckWithdrawShare(res.ShareBps, req.Emergency),
		p.CheckMinOutput(res.AdaOut, req.MinAdaOut, "ada"),
		p.CheckMinOutput(res.TokenOut, req.MinTokenOut, "token"),
		p.CheckReserveFloor(res.NewAdaReserve, res.NewTokenReserve, req.Emergency),
		p.CheckSupplyFloor(res.NewLpSupply),
	} {
		if err != nil {
			violations = append(violations, err)
		}
	}
	return violations
}
