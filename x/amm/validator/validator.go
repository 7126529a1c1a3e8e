package validator

import (
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/math"

	"github.com/paw-chain/ammcore/x/amm/engine"
	"github.com/paw-chain/ammcore/x/amm/policy"
	"github.com/paw-chain/ammcore/x/amm/types"
)

// Transition is one proposed pool state transition as the host ledger
// sees it: the state before, the declared operation, the claimed state
// after, the claimed mint event, and the host's reference time (block
// height or slot bound).
type Transition struct {
	Before        types.PoolState
	Operation     types.Operation
	ClaimedAfter  types.PoolState
	Mint          types.MintEvent
	ReferenceTime int64
	Caps          types.CapabilitySet
}

// Decision is the validator's terminal outcome. A rejection carries the
// complete list of violated reasons, not just the first.
type Decision struct {
	Accepted   bool
	Violations []error
}

// Reason returns the first violation, nil when accepted.
func (d Decision) Reason() error {
	if len(d.Violations) == 0 {
		return nil
	}
	return d.Violations[0]
}

func accepted() Decision {
	return Decision{Accepted: true}
}

func rejected(violations ...error) Decision {
	return Decision{Violations: violations}
}

// Validator decides whether a proposed transition is admissible. It is
// stateless and purely functional: identical inputs always produce the
// identical decision, and transitions for different pools may be
// validated concurrently. The host is responsible for serializing writes
// to any single pool.
type Validator struct {
	policy  *policy.Policy
	logger  log.Logger
	metrics *Metrics
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger injects a logger; rejections are logged at debug level.
func WithLogger(logger log.Logger) Option {
	return func(v *Validator) { v.logger = logger }
}

// WithMetrics injects Prometheus decision metrics.
func WithMetrics(m *Metrics) Option {
	return func(v *Validator) { v.metrics = m }
}

// New builds a Validator from a validated parameter set.
func New(params types.Params, opts ...Option) (*Validator, error) {
	pol, err := policy.New(params)
	if err != nil {
		return nil, fmt.Errorf("build security policy: %w", err)
	}

	v := &Validator{
		policy: pol,
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Validate runs the full admission pipeline for a proposed transition:
//
//  1. old-state self-consistency and authorization
//  2. engine computation from the old state and declared parameters
//  3. exact field comparison of the claimed new state
//  4. security policy predicates
//  5. lp supply ledger check against the claimed mint event
//
// The transition is accepted only if every step passes.
func (v *Validator) Validate(t Transition) Decision {
	decision := v.decide(t)

	kind := types.OperationKind(0)
	if t.Operation != nil {
		kind = t.Operation.Kind()
	}

	if v.metrics != nil {
		v.metrics.observe(kind, decision)
	}

	if !decision.Accepted {
		v.logger.Debug(
			"pool transition rejected",
			"pool_id", t.Before.PoolId,
			"operation", kind.String(),
			"violations", len(decision.Violations),
			"reason", decision.Reason(),
		)
	}

	return decision
}

func (v *Validator) decide(t Transition) Decision {
	// 1. Self-consistency of the proposal
	if t.Operation == nil {
		return rejected(types.ErrInvalidInput.Wrap("missing operation"))
	}

	if err := t.Before.Validate(); err != nil {
		return rejected(err)
	}

	if err := t.Mint.Validate(); err != nil {
		return rejected(err)
	}

	if err := t.Operation.ValidateBasic(); err != nil {
		return rejected(err)
	}

	if err := v.checkAuthorization(t); err != nil {
		return rejected(err)
	}

	// 2-5. Per-kind pipeline, dispatched exhaustively over the sealed
	// operation union.
	switch op := t.Operation.(type) {
	case types.SwapRequest:
		return v.validateSwap(t, op)
	case types.LiquidityAddRequest:
		return v.validateAdd(t, op)
	case types.WithdrawalRequest:
		return v.validateWithdrawal(t, op)
	default:
		return rejected(types.ErrInvalidInput.Wrapf("unsupported operation type %T", t.Operation))
	}
}

// checkAuthorization enforces pause semantics and the capability
// requirements of privileged operations.
func (v *Validator) checkAuthorization(t Transition) error {
	withdrawal, isWithdrawal := t.Operation.(types.WithdrawalRequest)
	emergency := isWithdrawal && withdrawal.Emergency

	if emergency && !t.Caps.Has(types.CapEmergencyWithdraw) {
		return types.ErrUnauthorized.Wrap("emergency withdrawal requires CapEmergencyWithdraw")
	}

	if t.Before.Paused {
		if !emergency {
			return types.ErrPoolPaused.Wrapf("pool %d accepts only emergency withdrawals while paused", t.Before.PoolId)
		}
		if !t.Caps.Has(types.CapPausedOverride) {
			return types.ErrUnauthorized.Wrap("withdrawal from a paused pool requires CapPausedOverride")
		}
	}

	return nil
}

func (v *Validator) validateSwap(t Transition, op types.SwapRequest) Decision {
	res, err := engine.ComputeSwap(t.Before, op)
	if err != nil {
		return rejected(err)
	}

	violations := v.policy.ForSwap(t.ReferenceTime, t.Before, op, res)

	expected := t.Before
	expected.AdaReserve = res.NewAdaReserve
	expected.TokenReserve = res.NewTokenReserve

	violations = append(violations, compareClaimedState(expected, t.ClaimedAfter)...)

	// A swap mints and burns nothing.
	violations = append(violations, checkSupplyDelta(t.Mint, t.Before.LpDenom, math.ZeroInt())...)

	if len(violations) > 0 {
		return rejected(violations...)
	}
	return accepted()
}

func (v *Validator) validateAdd(t Transition, op types.LiquidityAddRequest) Decision {
	var (
		res types.LiquidityResult
		err error
	)
	if op.IsInitial {
		res, err = engine.ComputeInitialAdd(t.Before, op)
	} else {
		res, err = engine.ComputeAdd(t.Before, op)
	}
	if err != nil {
		return rejected(err)
	}

	violations := v.policy.ForAdd(t.ReferenceTime, t.Before, op, res)

	expected := t.Before
	expected.AdaReserve = res.NewAdaReserve
	expected.TokenReserve = res.NewTokenReserve
	expected.TotalLpSupply = res.NewLpSupply

	violations = append(violations, compareClaimedState(expected, t.ClaimedAfter)...)
	violations = append(violations, checkSupplyDelta(t.Mint, t.Before.LpDenom, res.LpMinted)...)

	if len(violations) > 0 {
		return rejected(violations...)
	}
	return accepted()
}

func (v *Validator) validateWithdrawal(t Transition, op types.WithdrawalRequest) Decision {
	res, err := engine.ComputeWithdrawal(t.Before, op)
	if err != nil {
		return rejected(err)
	}

	violations := v.policy.ForWithdrawal(t.ReferenceTime, t.Before, op, res)

	expected := t.Before
	expected.AdaReserve = res.NewAdaReserve
	expected.TokenReserve = res.NewTokenReserve
	expected.TotalLpSupply = res.NewLpSupply

	violations = append(violations, compareClaimedState(expected, t.ClaimedAfter)...)
	violations = append(violations, checkSupplyDelta(t.Mint, t.Before.LpDenom, op.LpTokensToBurn.Neg())...)

	if len(violations) > 0 {
		return rejected(violations...)
	}
	return accepted()
}

// compareClaimedState holds the claimed new state to exact field
// equality against the engine-computed one. Any drift, in any field, is
// a StateMismatch; there is no tolerance at this layer.
func compareClaimedState(expected, claimed types.PoolState) []error {
	if err := claimed.Validate(); err != nil {
		return []error{err}
	}

	if claimed.Equal(expected) {
		return nil
	}

	var violations []error
	appendMismatch := func(field, want, got string) {
		violations = append(violations, types.ErrStateMismatch.Wrapf(
			"%s: claimed %s, computed %s", field, got, want,
		))
	}

	if claimed.PoolId != expected.PoolId {
		appendMismatch("pool id", fmt.Sprint(expected.PoolId), fmt.Sprint(claimed.PoolId))
	}
	if claimed.LpDenom != expected.LpDenom {
		appendMismatch("lp denom", expected.LpDenom, claimed.LpDenom)
	}
	if !claimed.AdaReserve.Equal(expected.AdaReserve) {
		appendMismatch("ada reserve", expected.AdaReserve.String(), claimed.AdaReserve.String())
	}
	if !claimed.TokenReserve.Equal(expected.TokenReserve) {
		appendMismatch("token reserve", expected.TokenReserve.String(), claimed.TokenReserve.String())
	}
	if !claimed.TotalLpSupply.Equal(expected.TotalLpSupply) {
		appendMismatch("lp supply", expected.TotalLpSupply.String(), claimed.TotalLpSupply.String())
	}
	if claimed.FeeBps != expected.FeeBps {
		appendMismatch("fee bps", fmt.Sprint(expected.FeeBps), fmt.Sprint(claimed.FeeBps))
	}
	if claimed.ProtocolFeeBps != expected.ProtocolFeeBps {
		appendMismatch("protocol fee bps", fmt.Sprint(expected.ProtocolFeeBps), fmt.Sprint(claimed.ProtocolFeeBps))
	}
	if claimed.Paused != expected.Paused {
		appendMismatch("paused", fmt.Sprint(expected.Paused), fmt.Sprint(claimed.Paused))
	}

	return violations
}
