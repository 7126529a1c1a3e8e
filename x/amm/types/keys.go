package types

const (
	// ModuleName defines the module name, used as the error codespace
	ModuleName = "amm"

	// BpsDenominator is the basis-point scale (1/100 of a percent) used
	// for fees, tolerances, and operation caps
	BpsDenominator = 10_000

	// MaxProtocolFeeBps caps the protocol's share of the swap fee at 10%
	MaxProtocolFeeBps = 1000

	// RatioScale is the fixed-point scale for deposit-ratio math
	RatioScale = 1_000_000

	// PriceScale is the fixed-point scale for mid-price impact math
	PriceScale = 1_000_000
)
