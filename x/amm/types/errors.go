package types

import (
	"cosmossdk.io/errors"
)

// AMM engine sentinel errors. Every failing check reports its own kind;
// kinds are never coalesced into a single boolean so callers and tests
// can assert exact causes.
var (
	ErrInvalidInput       = errors.Register(ModuleName, 2, "invalid input")
	ErrDeadlineExpired    = errors.Register(ModuleName, 3, "deadline expired")
	ErrSlippageViolation  = errors.Register(ModuleName, 4, "output below caller minimum")
	ErrDustAmount         = errors.Register(ModuleName, 5, "amount below dust minimum")
	ErrExcessiveOperation = errors.Register(ModuleName, 6, "operation exceeds single-operation cap")
	ErrPoolDraining       = errors.Register(ModuleName, 7, "reserves below draining floor")
	ErrRatioImbalance     = errors.Register(ModuleName, 8, "deposit ratio outside tolerance")
	ErrOverflow           = errors.Register(ModuleName, 9, "arithmetic overflow")
	ErrStateMismatch      = errors.Register(ModuleName, 10, "claimed state does not match computed state")
	ErrSupplyMismatch     = errors.Register(ModuleName, 11, "lp token mint/burn does not match computed delta")
	ErrUnauthorizedMint   = errors.Register(ModuleName, 12, "unauthorized asset minted or burned")
	ErrPoolPaused         = errors.Register(ModuleName, 13, "pool is paused")
	ErrInvariantBroken    = errors.Register(ModuleName, 14, "constant product invariant violated")
	ErrUnauthorized       = errors.Register(ModuleName, 15, "missing required capability")
)
