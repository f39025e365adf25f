package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sideshiftai/basepulse-ido/internal/service"
	"github.com/sideshiftai/basepulse-ido/state"
)

const admin = "0x00000000000000000000000000000000000000aa"

func TestExecuteCommitsOnSuccess(t *testing.T) {
	t.Parallel()

	store := state.NewMemStore()
	svc := service.New(store, nil, zap.NewNop())

	txID, _, err := svc.Execute(admin, nil, func(ctx state.TransactionContext) error {
		return svc.Factory().Initialize(ctx, admin)
	})
	require.NoError(t, err)
	require.NotEmpty(t, txID)

	// The registry survived the transaction boundary.
	err = svc.Query(admin, func(ctx state.TransactionContext) error {
		_, err := svc.Factory().GetAllSales(ctx)
		return err
	})
	require.NoError(t, err)
}

func TestExecuteDiscardsOnError(t *testing.T) {
	t.Parallel()

	store := state.NewMemStore()
	svc := service.New(store, nil, zap.NewNop())

	boom := errors.New("boom")
	_, _, err := svc.Execute(admin, nil, func(ctx state.TransactionContext) error {
		if err := ctx.PutState("junk", []byte("x")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Zero(t, store.Len())
}

func TestExecuteDeliversEvents(t *testing.T) {
	t.Parallel()

	svc := service.New(state.NewMemStore(), nil, zap.NewNop())

	_, events, err := svc.Execute(admin, nil, func(ctx state.TransactionContext) error {
		return ctx.SetEvent("Ping", []byte(`{}`))
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "Ping", events[0].Name)
}
