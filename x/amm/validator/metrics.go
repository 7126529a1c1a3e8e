package validator

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/paw-chain/ammcore/x/amm/types"
)

// Metrics counts validator decisions for Prometheus scraping.
type Metrics struct {
	Decisions  *prometheus.CounterVec
	Rejections *prometheus.CounterVec
}

// NewMetrics registers the validator metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: types.ModuleName,
			Subsystem: "validator",
			Name:      "decisions_total",
			Help:      "Pool transition decisions by operation and outcome",
		}, []string{"operation", "outcome"}),
		Rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: types.ModuleName,
			Subsystem: "validator",
			Name:      "rejections_total",
			Help:      "Pool transition rejections by operation and first reason",
		}, []string{"operation", "reason"}),
	}
}

func (m *Metrics) observe(kind types.OperationKind, d Decision) {
	outcome := "accepted"
	if !d.Accepted {
		outcome = "rejected"
	}
	m.Decisions.WithLabelValues(kind.String(), outcome).Inc()

	if !d.Accepted {
		m.Rejections.WithLabelValues(kind.String(), reasonLabel(d.Reason())).Inc()
	}
}

// reasonLabel maps a rejection to a stable, low-cardinality label.
func reasonLabel(err error) string {
	for _, c := range []struct {
		sentinel error
		label    string
	}{
		{types.ErrDeadlineExpired, "deadline_expired"},
		{types.ErrSlippageViolation, "slippage_violation"},
		{types.ErrDustAmount, "dust_amount"},
		{types.ErrExcessiveOperation, "excessive_operation"},
		{types.ErrPoolDraining, "pool_draining"},
		{types.ErrRatioImbalance, "ratio_imbalance"},
		{types.ErrOverflow, "arithmetic_overflow"},
		{types.ErrStateMismatch, "state_mismatch"},
		{types.ErrSupplyMismatch, "supply_mismatch"},
		{types.ErrUnauthorizedMint, "unauthorized_mint"},
		{types.ErrPoolPaused, "pool_paused"},
		{types.ErrInvariantBroken, "invariant_broken"},
		{types.ErrUnauthorized, "unauthorized"},
		{types.ErrInvalidInput, "invalid_input"},
	} {
		if errors.Is(err, c.sentinel) {
			return c.label
		}
	}
	return "unknown"
}
