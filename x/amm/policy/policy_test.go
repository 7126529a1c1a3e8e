package policy_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/ammcore/testutil"
	"github.com/paw-chain/ammcore/x/amm/engine"
	"github.com/paw-chain/ammcore/x/amm/policy"
	"github.com/paw-chain/ammcore/x/amm/types"
)

func corePolicy(t *testing.T) *policy.Policy {
	t.Helper()
	p, err := policy.New(types.DefaultParams())
	require.NoError(t, err)
	return p
}

func TestNew_RejectsInvalidParams(t *testing.T) {
	params := types.DefaultParams()
	params.FeeBps = types.BpsDenominator + 1

	_, err := policy.New(params)
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestCheckDeadline(t *testing.T) {
	p := corePolicy(t)

	require.NoError(t, p.CheckDeadline(100, 100))
	require.NoError(t, p.CheckDeadline(99, 100))
	require.ErrorIs(t, p.CheckDeadline(101, 100), types.ErrDeadlineExpired)
}

func TestDustFloors(t *testing.T) {
	p := corePolicy(t) // core profile: swap/deposit 1000, burn 100

	require.NoError(t, p.CheckSwapDust(math.NewInt(1000)))
	require.ErrorIs(t, p.CheckSwapDust(math.NewInt(999)), types.ErrDustAmount)

	require.NoError(t, p.CheckDepositDust(math.NewInt(1000), math.NewInt(1000)))
	require.ErrorIs(t, p.CheckDepositDust(math.NewInt(999), math.NewInt(1000)), types.ErrDustAmount)
	require.ErrorIs(t, p.CheckDepositDust(math.NewInt(1000), math.NewInt(999)), types.ErrDustAmount)

	require.NoError(t, p.CheckBurnDust(math.NewInt(100)))
	require.ErrorIs(t, p.CheckBurnDust(math.NewInt(99)), types.ErrDustAmount)
}

func TestSingleOperationCaps(t *testing.T) {
	p := corePolicy(t) // 50% swap/deposit caps, 90%/99% share caps

	reserve := math.NewInt(10_000)
	require.NoError(t, p.CheckSwapSize(math.NewInt(5000), reserve))
	require.ErrorIs(t, p.CheckSwapSize(math.NewInt(5001), reserve), types.ErrExcessiveOperation)

	require.NoError(t, p.CheckDepositSize(math.NewInt(5000), reserve, math.NewInt(5000), reserve))
	require.ErrorIs(t,
		p.CheckDepositSize(math.NewInt(5001), reserve, math.NewInt(1), reserve),
		types.ErrExcessiveOperation,
	)

	require.NoError(t, p.CheckWithdrawShare(9000, false))
	require.ErrorIs(t, p.CheckWithdrawShare(9001, false), types.ErrExcessiveOperation)
	require.NoError(t, p.CheckWithdrawShare(9900, true))
	require.ErrorIs(t, p.CheckWithdrawShare(9901, true), types.ErrExcessiveOperation)
}

func TestDrainingFloors(t *testing.T) {
	p := corePolicy(t) // normal floors 1000/1000, emergency 1/1, supply 100

	require.NoError(t, p.CheckReserveFloor(math.NewInt(1000), math.NewInt(1000), false))
	require.ErrorIs(t,
		p.CheckReserveFloor(math.NewInt(999), math.NewInt(1000), false),
		types.ErrPoolDraining,
	)
	require.ErrorIs(t,
		p.CheckReserveFloor(math.NewInt(1000), math.NewInt(999), false),
		types.ErrPoolDraining,
	)

	// Emergency relaxes the floor but never reaches zero.
	require.NoError(t, p.CheckReserveFloor(math.NewInt(1), math.NewInt(1), true))
	require.ErrorIs(t,
		p.CheckReserveFloor(math.ZeroInt(), math.NewInt(1), true),
		types.ErrPoolDraining,
	)

	require.NoError(t, p.CheckSupplyFloor(math.NewInt(100)))
	require.ErrorIs(t, p.CheckSupplyFloor(math.NewInt(99)), types.ErrPoolDraining)
}

func TestCheckRatioTolerance(t *testing.T) {
	p := corePolicy(t) // 500 bps tolerance

	require.NoError(t, p.CheckRatioTolerance(500, 0))
	require.ErrorIs(t, p.CheckRatioTolerance(501, 0), types.ErrRatioImbalance)

	// Request bound tightens but never loosens the configured tolerance.
	require.ErrorIs(t, p.CheckRatioTolerance(200, 100), types.ErrRatioImbalance)
	require.NoError(t, p.CheckRatioTolerance(100, 100))
	require.ErrorIs(t, p.CheckRatioTolerance(501, 9000), types.ErrRatioImbalance)
}

func TestCheckPriceImpact(t *testing.T) {
	p := corePolicy(t) // 1000 bps maximum

	require.NoError(t, p.CheckPriceImpact(1000, 0))
	require.ErrorIs(t, p.CheckPriceImpact(1001, 0), types.ErrSlippageViolation)

	require.ErrorIs(t, p.CheckPriceImpact(600, 500), types.ErrSlippageViolation)
	require.NoError(t, p.CheckPriceImpact(500, 500))
	require.ErrorIs(t, p.CheckPriceImpact(1001, 5000), types.ErrSlippageViolation)
}

func TestCheckMinOutput(t *testing.T) {
	p := corePolicy(t)

	require.NoError(t, p.CheckMinOutput(math.NewInt(100), math.NewInt(100), "swap"))
	require.ErrorIs(t,
		p.CheckMinOutput(math.NewInt(99), math.NewInt(100), "swap"),
		types.ErrSlippageViolation,
	)
}

// TestForSwap_ReportsAllViolations checks the composite returns every
// violated predicate, not just the first.
func TestForSwap_ReportsAllViolations(t *testing.T) {
	p := corePolicy(t)
	pool := testutil.LargePool()

	req := types.SwapRequest{
		AmountIn:  math.NewInt(999), // dust under the core profile
		Direction: types.DirectionAdaToToken,
		MinOut:    math.NewInt(1_000_000_000), // far above the computed output
		Deadline:  10,
	}

	res, err := engine.ComputeSwap(pool, req)
	require.NoError(t, err)

	violations := p.ForSwap(20, pool, req, res) // reference time past deadline
	require.Len(t, violations, 3)

	kinds := map[error]bool{}
	for _, v := range violations {
		switch {
		case types.ErrDeadlineExpired.Is(v):
			kinds[types.ErrDeadlineExpired] = true
		case types.ErrDustAmount.Is(v):
			kinds[types.ErrDustAmount] = true
		case types.ErrSlippageViolation.Is(v):
			kinds[types.ErrSlippageViolation] = true
		default:
			t.Fatalf("unexpected violation kind: %v", v)
		}
	}
	require.Len(t, kinds, 3)
}

func TestForWithdrawal_EmergencyRelaxesFloors(t *testing.T) {
	params := testutil.PermissiveParams()
	params.MinAdaReserve = math.NewInt(100)
	params.MinTokenReserve = math.NewInt(100)
	params.EmergencyMinAdaReserve = math.NewInt(1)
	params.EmergencyMinTokenReserve = math.NewInt(1)

	p, err := policy.New(params)
	require.NoError(t, err)

	pool := testutil.SmallPool()
	req := types.WithdrawalRequest{
		LpTokensToBurn: math.NewInt(1400),
		MinAdaOut:      math.ZeroInt(),
		MinTokenOut:    math.ZeroInt(),
		Deadline:       testutil.Deadline,
	}

	res, err := engine.ComputeWithdrawal(pool, req)
	require.NoError(t, err)

	// Normal mode: share 9900 bps over the 9000 cap, reserves 10/20
	// under the 100 floor.
	violations := p.ForWithdrawal(1, pool, req, res)
	require.NotEmpty(t, violations)

	// Emergency mode: 9900 bps allowed, floors relaxed to 1.
	req.Emergency = true
	violations = p.ForWithdrawal(1, pool, req, res)
	require.Empty(t, violations)
}
