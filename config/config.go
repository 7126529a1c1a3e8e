// Package config loads engine parameters for callers that are not a
// host ledger: test harnesses, simulators, and offline replay tools.
// Hosts embed Params in their own state and should construct them
// directly.
package config

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/paw-chain/ammcore/x/amm/types"
)

const envPrefix = "AMM"

// LoadParams reads a parameter file (YAML, TOML, or JSON, decided by
// extension) and environment overrides (AMM_FEE_BPS and friends) on top
// of the profile selected by the "version" key. An empty path loads the
// profile defaults plus environment overrides only.
func LoadParams(path string) (types.Params, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// BindEnv each key so IsSet sees environment-only overrides.
	for _, key := range []string{
		"version",
		"fee_bps", "protocol_fee_bps",
		"max_swap_reserve_bps", "max_deposit_reserve_bps",
		"max_withdraw_share_bps", "max_emergency_share_bps",
		"ratio_tolerance_bps", "max_price_impact_bps",
		"min_swap_amount", "min_deposit_amount", "min_lp_burn_amount",
		"min_ada_reserve", "min_token_reserve",
		"emergency_min_ada_reserve", "emergency_min_token_reserve",
		"min_lp_supply",
	} {
		if err := v.BindEnv(key); err != nil {
			return types.Params{}, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return types.Params{}, fmt.Errorf("read params file %s: %w", path, err)
		}
	}

	version, err := parseVersion(cast.ToString(v.Get("version")))
	if err != nil {
		return types.Params{}, err
	}

	p := types.ParamsForVersion(version)

	setInt64 := func(key string, dst *int64) {
		if v.IsSet(key) {
			*dst = cast.ToInt64(v.Get(key))
		}
	}
	setAmount := func(key string, dst *math.Int) error {
		if !v.IsSet(key) {
			return nil
		}
		amt, ok := math.NewIntFromString(cast.ToString(v.Get(key)))
		if !ok {
			return fmt.Errorf("params key %s: invalid integer %q", key, v.Get(key))
		}
		*dst = amt
		return nil
	}

	setInt64("fee_bps", &p.FeeBps)
	setInt64("protocol_fee_bps", &p.ProtocolFeeBps)
	setInt64("max_swap_reserve_bps", &p.MaxSwapReserveBps)
	setInt64("max_deposit_reserve_bps", &p.MaxDepositReserveBps)
	setInt64("max_withdraw_share_bps", &p.MaxWithdrawShareBps)
	setInt64("max_emergency_share_bps", &p.MaxEmergencyShareBps)
	setInt64("ratio_tolerance_bps", &p.RatioToleranceBps)
	setInt64("max_price_impact_bps", &p.MaxPriceImpactBps)

	for key, dst := range map[string]*math.Int{
		"min_swap_amount":             &p.MinSwapAmount,
		"min_deposit_amount":          &p.MinDepositAmount,
		"min_lp_burn_amount":          &p.MinLpBurnAmount,
		"min_ada_reserve":             &p.MinAdaReserve,
		"min_token_reserve":           &p.MinTokenReserve,
		"emergency_min_ada_reserve":   &p.EmergencyMinAdaReserve,
		"emergency_min_token_reserve": &p.EmergencyMinTokenReserve,
		"min_lp_supply":               &p.MinLpSupply,
	} {
		if err := setAmount(key, dst); err != nil {
			return types.Params{}, err
		}
	}

	if err := p.Validate(); err != nil {
		return types.Params{}, fmt.Errorf("loaded params invalid: %w", err)
	}

	return p, nil
}

func parseVersion(s string) (types.PolicyVersion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "core":
		return types.PolicyCore, nil
	case "legacy":
		return types.PolicyLegacy, nil
	case "v5":
		return types.PolicyV5, nil
	default:
		return 0, fmt.Errorf("unknown policy version %q", s)
	}
}
