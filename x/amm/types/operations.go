package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// OperationKind discriminates the per-operation request payloads,
// mirroring the on-chain validator's redeemer sum type.
type OperationKind uint8

const (
	OpSwap OperationKind = iota + 1
	OpAddLiquidity
	OpRemoveLiquidity
)

func (k OperationKind) String() string {
	switch k {
	case OpSwap:
		return "swap"
	case OpAddLiquidity:
		return "add_liquidity"
	case OpRemoveLiquidity:
		return "remove_liquidity"
	default:
		return "unknown"
	}
}

// Operation is the sealed union of request payloads accepted by the
// state-transition validator.
type Operation interface {
	Kind() OperationKind
	ValidateBasic() error
}

var (
	_ Operation = SwapRequest{}
	_ Operation = LiquidityAddRequest{}
	_ Operation = WithdrawalRequest{}
)

// SwapDirection selects which reserve the input amount is paid into.
type SwapDirection uint8

const (
	DirectionAdaToToken SwapDirection = iota + 1
	DirectionTokenToAda
)

func (d SwapDirection) String() string {
	switch d {
	case DirectionAdaToToken:
		return "ada_to_token"
	case DirectionTokenToAda:
		return "token_to_ada"
	default:
		return "unknown"
	}
}

// Validate checks the direction is one of the two defined values.
func (d SwapDirection) Validate() error {
	if d != DirectionAdaToToken && d != DirectionTokenToAda {
		return sdkerrors.Wrapf(ErrInvalidInput, "unknown swap direction %d", d)
	}
	return nil
}

// SwapRequest is the declared parameter payload of a swap operation.
type SwapRequest struct {
	AmountIn  math.Int
	Direction SwapDirection
	MinOut    math.Int
	Deadline  int64

	// MaxSlippageBps optionally tightens the configured price-impact cap
	// for this request; zero means use the policy maximum.
	MaxSlippageBps int64
}

// Kind implements Operation.
func (r SwapRequest) Kind() OperationKind { return OpSwap }

// ValidateBasic performs stateless validation of the request.
func (r SwapRequest) ValidateBasic() error {
	if err := r.Direction.Validate(); err != nil {
		return err
	}

	if r.AmountIn.IsNil() || !r.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "swap amount must be positive")
	}

	if r.MinOut.IsNil() || r.MinOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidInput, "min amount out cannot be negative")
	}

	if r.Deadline <= 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "deadline must be positive")
	}

	if r.MaxSlippageBps < 0 || r.MaxSlippageBps > BpsDenominator {
		return sdkerrors.Wrapf(ErrInvalidInput, "max slippage bps %d outside [0, %d]", r.MaxSlippageBps, BpsDenominator)
	}

	return nil
}

// LiquidityAddRequest is the declared parameter payload of an
// add-liquidity operation.
type LiquidityAddRequest struct {
	AdaAmount   math.Int
	TokenAmount math.Int
	MinLpOut    math.Int
	IsInitial   bool
	Deadline    int64

	// MaxRatioDeviationBps optionally tightens the configured ratio
	// tolerance for this request; zero means use the policy tolerance.
	MaxRatioDeviationBps int64
}

// Kind implements Operation.
func (r LiquidityAddRequest) Kind() OperationKind { return OpAddLiquidity }

// ValidateBasic performs stateless validation of the request.
func (r LiquidityAddRequest) ValidateBasic() error {
	if r.AdaAmount.IsNil() || !r.AdaAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "ada amount must be positive")
	}

	if r.TokenAmount.IsNil() || !r.TokenAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "token amount must be positive")
	}

	if r.MinLpOut.IsNil() || r.MinLpOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidInput, "min lp out cannot be negative")
	}

	if r.Deadline <= 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "deadline must be positive")
	}

	if r.MaxRatioDeviationBps < 0 || r.MaxRatioDeviationBps > BpsDenominator {
		return sdkerrors.Wrapf(ErrInvalidInput, "max ratio deviation bps %d outside [0, %d]", r.MaxRatioDeviationBps, BpsDenominator)
	}

	return nil
}

// WithdrawalRequest is the declared parameter payload of a
// remove-liquidity operation.
type WithdrawalRequest struct {
	LpTokensToBurn math.Int
	MinAdaOut      math.Int
	MinTokenOut    math.Int
	Deadline       int64

	// Emergency relaxes the draining floor to the emergency profile and
	// requires CapEmergencyWithdraw.
	Emergency bool
}

// Kind implements Operation.
func (r WithdrawalRequest) Kind() OperationKind { return OpRemoveLiquidity }

// ValidateBasic performs stateless validation of the request.
func (r WithdrawalRequest) ValidateBasic() error {
	if r.LpTokensToBurn.IsNil() || !r.LpTokensToBurn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "lp tokens to burn must be positive")
	}

	if r.MinAdaOut.IsNil() || r.MinAdaOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidInput, "min ada out cannot be negative")
	}

	if r.MinTokenOut.IsNil() || r.MinTokenOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidInput, "min token out cannot be negative")
	}

	if r.Deadline <= 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "deadline must be positive")
	}

	return nil
}
