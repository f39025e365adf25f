package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sideshiftai/basepulse-ido/registry"
	"github.com/sideshiftai/basepulse-ido/sale"
	"github.com/sideshiftai/basepulse-ido/state"
)

const (
	registryOwner = "0x00000000000000000000000000000000000000aa"
	creator       = "0x1111111111111111111111111111111111111111"
	stranger      = "0x2222222222222222222222222222222222222222"
	assetToken    = "0x4444444444444444444444444444444444444444"
)

func newFactory(t *testing.T) (*registry.Factory, *state.MemStore) {
	t.Helper()

	store := state.NewMemStore()
	factory := registry.NewFactory()

	ctx := state.NewContext(store)
	require.NoError(t, factory.Initialize(ctx, registryOwner))
	require.NoError(t, ctx.Commit())

	return factory, store
}

func ctxAs(store state.Store, sender string) *state.Context {
	return state.NewContext(store, state.WithSender(sender), state.WithTimestamp(1_700_000_000))
}

func createSale(t *testing.T, factory *registry.Factory, store *state.MemStore, sender string) *registry.SaleRecord {
	t.Helper()

	ctx := ctxAs(store, sender)
	record, err := factory.CreateSale(ctx, assetToken, `{"name":"Test Sale"}`)
	require.NoError(t, err)
	require.NoError(t, ctx.Commit())
	return record
}

func TestCreateSaleWiresComponents(t *testing.T) {
	t.Parallel()

	factory, store := newFactory(t)

	record := createSale(t, factory, store, creator)
	require.Equal(t, uint64(1), record.ID)
	require.Equal(t, creator, record.Creator)
	require.Equal(t, assetToken, record.AssetToken)
	require.True(t, record.Active)
	require.Equal(t, "sale-1", record.SaleHandle)
	require.Equal(t, "vesting-1", record.VestingHandle)
	require.Equal(t, "whitelist-1", record.WhitelistHandle)

	// The components come back initialized: the gate has its default state
	// and the sale ledger recognises its owner.
	gate, err := factory.WhitelistGate(ctxAs(store, creator), 1)
	require.NoError(t, err)
	st, err := gate.GetState(ctxAs(store, creator))
	require.NoError(t, err)
	require.True(t, st.Enabled)

	ledger, err := factory.SaleLedger(ctxAs(store, creator), 1)
	require.NoError(t, err)
	require.Equal(t, "sale-1", ledger.Handle())
	require.Equal(t, assetToken, ledger.AssetToken())
}

func TestCreateSaleAssignsSequentialIds(t *testing.T) {
	t.Parallel()

	factory, store := newFactory(t)

	first := createSale(t, factory, store, creator)
	second := createSale(t, factory, store, stranger)
	require.Equal(t, uint64(1), first.ID)
	require.Equal(t, uint64(2), second.ID)
	require.Equal(t, "sale-2", second.SaleHandle)

	records, err := factory.GetAllSales(ctxAs(store, creator))
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, uint64(1), records[0].ID)
	require.Equal(t, uint64(2), records[1].ID)
}

func TestGetSaleUnknownId(t *testing.T) {
	t.Parallel()

	factory, store := newFactory(t)

	_, err := factory.GetSale(ctxAs(store, creator), 7)
	require.Error(t, err)
}

func TestDeactivateSale(t *testing.T) {
	t.Parallel()

	factory, store := newFactory(t)
	createSale(t, factory, store, creator)

	// Neither the creator nor the registry owner is required to be the same
	// account; both may deactivate, nobody else.
	ctx := ctxAs(store, stranger)
	require.ErrorIs(t, factory.DeactivateSale(ctx, 1), registry.ErrUnauthorized)

	ctx = ctxAs(store, creator)
	require.NoError(t, factory.DeactivateSale(ctx, 1))
	require.NoError(t, ctx.Commit())

	record, err := factory.GetSale(ctxAs(store, creator), 1)
	require.NoError(t, err)
	require.False(t, record.Active)
}

func TestDeactivateSaleByRegistryOwner(t *testing.T) {
	t.Parallel()

	factory, store := newFactory(t)
	createSale(t, factory, store, creator)

	ctx := ctxAs(store, registryOwner)
	require.NoError(t, factory.DeactivateSale(ctx, 1))
	require.NoError(t, ctx.Commit())

	record, err := factory.GetSale(ctxAs(store, creator), 1)
	require.NoError(t, err)
	require.False(t, record.Active)
}

func TestInitializeTwiceFails(t *testing.T) {
	t.Parallel()

	factory, store := newFactory(t)

	ctx := state.NewContext(store)
	require.Error(t, factory.Initialize(ctx, registryOwner))
}

// The factory-produced sale can run a full successful campaign, including
// the cross-component step where the initial unlock opens a schedule in the
// vesting ledger.
func TestFactoryWiredSaleLifecycle(t *testing.T) {
	t.Parallel()

	factory, store := newFactory(t)
	createSale(t, factory, store, creator)

	const (
		day       = uint64(24 * 60 * 60)
		saleStart = uint64(1_700_100_000)
		saleEnd   = saleStart + 30*day
	)
	buyer := "0x5555555555555555555555555555555555555555"
	unit := "1000000000000000000"
	amount := "100000000000000000000" // 100 units

	at := func(sender string, ts uint64) *state.Context {
		return state.NewContext(store, state.WithSender(sender), state.WithTimestamp(ts))
	}

	ctx := at(creator, saleStart-day)
	ledger, err := factory.SaleLedger(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, ledger.ConfigureSale(ctx, sale.SaleConfigParams{
		StartTime:       saleStart,
		EndTime:         saleEnd,
		UnitPrice:       unit,
		HardCap:         amount,
		SoftCap:         amount,
		MinContribution: unit,
		MaxGasPrice:     "0",
	}))
	require.NoError(t, ledger.ConfigureTier(ctx, 1, sale.TierParams{
		StartTime:              saleStart,
		EndTime:                saleEnd,
		UnitPrice:              unit,
		MaxAllocationPerWallet: amount,
		TotalAllocation:        amount,
	}))
	require.NoError(t, ledger.SetVestingParams(ctx, sale.VestingParams{
		TGEPercent: 15,
		Cliff:      90 * day,
		Duration:   365 * day,
	}))

	gate, err := factory.WhitelistGate(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, gate.SetWhitelistEnabled(ctx, false))
	require.NoError(t, ctx.Commit())

	ctx = at(buyer, saleStart+1)
	ledger, err = factory.SaleLedger(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, ledger.Contribute(ctx, 1, amount, nil, ""))
	require.NoError(t, ctx.Commit())

	ctx = at(creator, saleStart+2)
	ledger, err = factory.SaleLedger(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, ledger.FinalizeSale(ctx))
	require.NoError(t, ctx.Commit())

	ctx = at(buyer, saleStart+3)
	ledger, err = factory.SaleLedger(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, ledger.ClaimInitialUnlock(ctx, 1))
	require.NoError(t, ctx.Commit())

	vestingLedger, err := factory.VestingLedger(at(buyer, saleStart+4), 1)
	require.NoError(t, err)
	schedule, err := vestingLedger.GetSchedule(at(buyer, saleStart+4), 1)
	require.NoError(t, err)
	require.Equal(t, buyer, schedule.Beneficiary)
	require.Equal(t, "85000000000000000000", schedule.TotalAmount)
}

func TestCreateSaleValidation(t *testing.T) {
	t.Parallel()

	factory, store := newFactory(t)

	ctx := ctxAs(store, creator)
	_, err := factory.CreateSale(ctx, "not-an-address", "")
	require.Error(t, err)

	// A bad signer is rejected before anything else.
	bad := state.NewContext(store, state.WithSender("nope"))
	_, err = factory.CreateSale(bad, assetToken, "")
	require.Error(t, err)
}