package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/ammcore/x/amm/types"
)

func writeParamsFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "amm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadParams_Defaults(t *testing.T) {
	p, err := LoadParams("")
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), p)
}

func TestLoadParams_FileOverrides(t *testing.T) {
	path := writeParamsFile(t, `
version: legacy
fee_bps: 100
min_swap_amount: "5000"
max_price_impact_bps: 2500
`)

	p, err := LoadParams(path)
	require.NoError(t, err)

	require.Equal(t, types.PolicyLegacy, p.Version)
	require.EqualValues(t, 100, p.FeeBps)
	require.Equal(t, "5000", p.MinSwapAmount.String())
	require.EqualValues(t, 2500, p.MaxPriceImpactBps)

	// Untouched keys keep the legacy profile values.
	legacy := types.ParamsForVersion(types.PolicyLegacy)
	require.Equal(t, legacy.MinLpBurnAmount, p.MinLpBurnAmount)
	require.Equal(t, legacy.MaxWithdrawShareBps, p.MaxWithdrawShareBps)
}

func TestLoadParams_EnvOverrides(t *testing.T) {
	t.Setenv("AMM_RATIO_TOLERANCE_BPS", "250")

	p, err := LoadParams("")
	require.NoError(t, err)
	require.EqualValues(t, 250, p.RatioToleranceBps)
}

func TestLoadParams_Rejections(t *testing.T) {
	t.Run("unknown version", func(t *testing.T) {
		_, err := LoadParams(writeParamsFile(t, "version: v99\n"))
		require.Error(t, err)
	})

	t.Run("invalid amount", func(t *testing.T) {
		_, err := LoadParams(writeParamsFile(t, "min_swap_amount: not-a-number\n"))
		require.Error(t, err)
	})

	t.Run("out-of-bounds result", func(t *testing.T) {
		_, err := LoadParams(writeParamsFile(t, "fee_bps: 10001\n"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadParams(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}
