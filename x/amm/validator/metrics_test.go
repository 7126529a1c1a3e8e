package validator_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/ammcore/testutil"
	"github.com/paw-chain/ammcore/x/amm/types"
	"github.com/paw-chain/ammcore/x/amm/validator"
)

func TestMetrics_CountDecisions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := validator.NewMetrics(reg)

	v, err := validator.New(testutil.PermissiveParams(), validator.WithMetrics(m))
	require.NoError(t, err)

	// One accepted swap.
	require.True(t, v.Validate(swapTransition()).Accepted)

	// One rejected swap with a fudged reserve.
	tr := swapTransition()
	tr.ClaimedAfter.TokenReserve = math.NewInt(1818)
	require.False(t, v.Validate(tr).Accepted)

	require.Equal(t, float64(1),
		promtestutil.ToFloat64(m.Decisions.WithLabelValues(types.OpSwap.String(), "accepted")))
	require.Equal(t, float64(1),
		promtestutil.ToFloat64(m.Decisions.WithLabelValues(types.OpSwap.String(), "rejected")))
	require.Equal(t, float64(1),
		promtestutil.ToFloat64(m.Rejections.WithLabelValues(types.OpSwap.String(), "state_mismatch")))
}
