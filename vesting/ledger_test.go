package vesting_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sideshiftai/basepulse-ido/fixedpoint"
	"github.com/sideshiftai/basepulse-ido/state"
	"github.com/sideshiftai/basepulse-ido/vesting"
)

const (
	vestingOwner = "0x00000000000000000000000000000000000000aa"
	beneficiary  = "0x1111111111111111111111111111111111111111"
	stranger     = "0x2222222222222222222222222222222222222222"

	day       = uint64(24 * 60 * 60)
	startTime = uint64(1_700_000_000)
	cliff     = 90 * day
	duration  = 365 * day
)

func tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), fixedpoint.Unit())
}

func newLedger(t *testing.T) (*vesting.Ledger, *state.MemStore) {
	t.Helper()

	store := state.NewMemStore()
	ledger := vesting.New("vesting-1")

	ctx := state.NewContext(store)
	require.NoError(t, ledger.Initialize(ctx, vestingOwner))
	require.NoError(t, ctx.Commit())

	return ledger, store
}

func ctxAt(store state.Store, sender string, ts uint64) *state.Context {
	return state.NewContext(store, state.WithSender(sender), state.WithTimestamp(ts))
}

func createSchedule(t *testing.T, ledger *vesting.Ledger, store *state.MemStore, amount *big.Int) uint64 {
	t.Helper()

	ctx := ctxAt(store, vestingOwner, startTime)
	id, err := ledger.CreateSchedule(ctx, beneficiary, amount.String(), startTime, cliff, duration)
	require.NoError(t, err)
	require.NoError(t, ctx.Commit())
	return id
}

func TestCreateScheduleAssignsSequentialIds(t *testing.T) {
	t.Parallel()

	ledger, store := newLedger(t)

	first := createSchedule(t, ledger, store, tokens(100_000))
	second := createSchedule(t, ledger, store, tokens(50_000))
	require.Equal(t, uint64(1), first)
	require.Equal(t, uint64(2), second)

	ids, err := ledger.GetUserScheduleIds(ctxAt(store, beneficiary, startTime), beneficiary)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2}, ids)
}

func TestCreateScheduleAuthorization(t *testing.T) {
	t.Parallel()

	ledger, store := newLedger(t)

	ctx := ctxAt(store, stranger, startTime)
	_, err := ledger.CreateSchedule(ctx, beneficiary, tokens(1).String(), startTime, cliff, duration)
	require.ErrorIs(t, err, vesting.ErrUnauthorized)
}

func TestCreateScheduleValidation(t *testing.T) {
	t.Parallel()

	ledger, store := newLedger(t)

	tests := []struct {
		name         string
		beneficiary  string
		amount       string
		cliffLength  uint64
		vestDuration uint64
	}{
		{name: "Failure - zero amount", beneficiary: beneficiary, amount: "0", cliffLength: cliff, vestDuration: duration},
		{name: "Failure - garbage amount", beneficiary: beneficiary, amount: "abc", cliffLength: cliff, vestDuration: duration},
		{name: "Failure - zero duration", beneficiary: beneficiary, amount: "1", cliffLength: 0, vestDuration: 0},
		{name: "Failure - cliff exceeds duration", beneficiary: beneficiary, amount: "1", cliffLength: duration + 1, vestDuration: duration},
		{name: "Failure - bad beneficiary", beneficiary: "nope", amount: "1", cliffLength: cliff, vestDuration: duration},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := ctxAt(store, vestingOwner, startTime)
			_, err := ledger.CreateSchedule(ctx, tt.beneficiary, tt.amount, startTime, tt.cliffLength, tt.vestDuration)
			require.Error(t, err)
		})
	}
}

func TestVestedAmountCurve(t *testing.T) {
	t.Parallel()

	total := tokens(100_000)
	schedule := &vesting.Schedule{
		Beneficiary:   beneficiary,
		TotalAmount:   total.String(),
		StartTime:     startTime,
		CliffLength:   cliff,
		VestDuration:  duration,
		ClaimedAmount: "0",
	}

	// Nothing before the cliff, including the instant just before it ends.
	vested, err := vesting.VestedAmount(schedule, startTime)
	require.NoError(t, err)
	require.Zero(t, vested.Sign())

	vested, err = vesting.VestedAmount(schedule, startTime+cliff-1)
	require.NoError(t, err)
	require.Zero(t, vested.Sign())

	// The post-cliff interval releases linearly: exactly half at its midpoint.
	span := duration - cliff
	vested, err = vesting.VestedAmount(schedule, startTime+cliff+span/2)
	require.NoError(t, err)
	require.Equal(t, new(big.Int).Div(total, big.NewInt(2)).String(), vested.String())

	// Everything at the end of the window and beyond.
	vested, err = vesting.VestedAmount(schedule, startTime+duration)
	require.NoError(t, err)
	require.Equal(t, total.String(), vested.String())

	vested, err = vesting.VestedAmount(schedule, startTime+duration+365*day)
	require.NoError(t, err)
	require.Equal(t, total.String(), vested.String())
}

func TestVestedAmountIsMonotonic(t *testing.T) {
	t.Parallel()

	schedule := &vesting.Schedule{
		Beneficiary:   beneficiary,
		TotalAmount:   tokens(12_345).String(),
		StartTime:     startTime,
		CliffLength:   cliff,
		VestDuration:  duration,
		ClaimedAmount: "0",
	}

	previous := big.NewInt(-1)
	for ts := startTime; ts <= startTime+duration+day; ts += 7 * day {
		vested, err := vesting.VestedAmount(schedule, ts)
		require.NoError(t, err)
		require.GreaterOrEqual(t, vested.Cmp(previous), 0)
		previous = vested
	}
}

func TestClaimPaysVestedBalance(t *testing.T) {
	t.Parallel()

	ledger, store := newLedger(t)
	total := tokens(100_000)
	id := createSchedule(t, ledger, store, total)

	// Before the cliff there is nothing to pay.
	ctx := ctxAt(store, beneficiary, startTime+cliff-1)
	require.ErrorIs(t, ledger.Claim(ctx, id), vesting.ErrNothingToClaim)

	// Midpoint claim pays half.
	span := duration - cliff
	mid := startTime + cliff + span/2
	ctx = ctxAt(store, beneficiary, mid)
	require.NoError(t, ledger.Claim(ctx, id))
	require.NoError(t, ctx.Commit())

	half := new(big.Int).Div(total, big.NewInt(2))
	schedule, err := ledger.GetSchedule(ctxAt(store, beneficiary, mid), id)
	require.NoError(t, err)
	require.Equal(t, half.String(), schedule.ClaimedAmount)

	// A second claim at the same instant has nothing left.
	ctx = ctxAt(store, beneficiary, mid)
	require.ErrorIs(t, ledger.Claim(ctx, id), vesting.ErrNothingToClaim)

	// After the window the remainder is paid and the running total matches.
	ctx = ctxAt(store, beneficiary, startTime+duration)
	require.NoError(t, ledger.Claim(ctx, id))
	require.NoError(t, ctx.Commit())

	schedule, err = ledger.GetSchedule(ctxAt(store, beneficiary, startTime+duration), id)
	require.NoError(t, err)
	require.Equal(t, total.String(), schedule.ClaimedAmount)

	totalClaims, err := ledger.GetTotalClaims(ctxAt(store, beneficiary, startTime+duration))
	require.NoError(t, err)
	require.Equal(t, total.String(), totalClaims.String())
}

func TestClaimAuthorization(t *testing.T) {
	t.Parallel()

	ledger, store := newLedger(t)
	id := createSchedule(t, ledger, store, tokens(100))

	ctx := ctxAt(store, stranger, startTime+duration)
	require.ErrorIs(t, ledger.Claim(ctx, id), vesting.ErrUnauthorized)

	ctx = ctxAt(store, beneficiary, startTime+duration)
	require.Error(t, ledger.Claim(ctx, 99))
}

func TestRevokeFreezesEntitlement(t *testing.T) {
	t.Parallel()

	ledger, store := newLedger(t)
	total := tokens(100_000)
	id := createSchedule(t, ledger, store, total)

	span := duration - cliff
	mid := startTime + cliff + span/2

	ctx := ctxAt(store, vestingOwner, mid)
	require.NoError(t, ledger.Revoke(ctx, id))
	require.NoError(t, ctx.Commit())

	// The entitlement is cut down to the vested amount at revocation time.
	half := new(big.Int).Div(total, big.NewInt(2))
	schedule, err := ledger.GetSchedule(ctxAt(store, vestingOwner, mid), id)
	require.NoError(t, err)
	require.True(t, schedule.Revoked)
	require.Equal(t, half.String(), schedule.TotalAmount)

	// Claims are refused outright after revocation.
	ctx = ctxAt(store, beneficiary, startTime+duration)
	require.ErrorIs(t, ledger.Claim(ctx, id), vesting.ErrAlreadyRevoked)

	// So is a second revocation.
	ctx = ctxAt(store, vestingOwner, startTime+duration)
	require.ErrorIs(t, ledger.Revoke(ctx, id), vesting.ErrAlreadyRevoked)
}

func TestRevokeAuthorization(t *testing.T) {
	t.Parallel()

	ledger, store := newLedger(t)
	id := createSchedule(t, ledger, store, tokens(100))

	ctx := ctxAt(store, stranger, startTime)
	require.ErrorIs(t, ledger.Revoke(ctx, id), vesting.ErrUnauthorized)
}

func TestCreateScheduleBatch(t *testing.T) {
	t.Parallel()

	ledger, store := newLedger(t)

	ctx := ctxAt(store, vestingOwner, startTime)
	ids, err := ledger.CreateScheduleBatch(ctx,
		[]string{beneficiary, stranger},
		[]string{tokens(10).String(), tokens(20).String()},
		startTime, cliff, duration)
	require.NoError(t, err)
	require.NoError(t, ctx.Commit())
	require.Equal(t, []uint64{1, 2}, ids)

	schedule, err := ledger.GetSchedule(ctxAt(store, vestingOwner, startTime), 2)
	require.NoError(t, err)
	require.Equal(t, stranger, schedule.Beneficiary)
}

func TestCreateScheduleBatchIsAllOrNothing(t *testing.T) {
	t.Parallel()

	ledger, store := newLedger(t)

	ctx := ctxAt(store, vestingOwner, startTime)
	_, err := ledger.CreateScheduleBatch(ctx,
		[]string{beneficiary, stranger},
		[]string{tokens(10).String(), "0"},
		startTime, cliff, duration)
	require.Error(t, err)

	// A rejected batch creates nothing, not even its valid entries.
	_, err = ledger.GetSchedule(ctxAt(store, vestingOwner, startTime), 1)
	require.Error(t, err)

	ctx = ctxAt(store, vestingOwner, startTime)
	_, err = ledger.CreateScheduleBatch(ctx,
		[]string{beneficiary},
		[]string{tokens(10).String(), tokens(20).String()},
		startTime, cliff, duration)
	require.Error(t, err)
}

func TestCreateScheduleFromAuthorizedHandle(t *testing.T) {
	t.Parallel()

	ledger, store := newLedger(t)

	ctx := ctxAt(store, vestingOwner, startTime)
	require.NoError(t, ledger.SetAuthorizedCaller(ctx, "sale-1"))
	require.NoError(t, ctx.Commit())

	ctx = ctxAt(store, beneficiary, startTime)
	id, err := ledger.CreateScheduleFrom(ctx, "sale-1", beneficiary, tokens(5).String(), startTime, cliff, duration)
	require.NoError(t, err)
	require.NoError(t, ctx.Commit())
	require.Equal(t, uint64(1), id)

	// A handle that was never authorized cannot open schedules.
	ctx = ctxAt(store, beneficiary, startTime)
	_, err = ledger.CreateScheduleFrom(ctx, "sale-2", beneficiary, tokens(5).String(), startTime, cliff, duration)
	require.ErrorIs(t, err, vesting.ErrUnauthorized)
}
