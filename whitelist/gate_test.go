package whitelist_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/sideshiftai/basepulse-ido/merkle"
	"github.com/sideshiftai/basepulse-ido/state"
	"github.com/sideshiftai/basepulse-ido/whitelist"
)

const (
	gateOwner = "0x00000000000000000000000000000000000000aa"
	alice     = "0x1111111111111111111111111111111111111111"
	bob       = "0x2222222222222222222222222222222222222222"
	carol     = "0x3333333333333333333333333333333333333333"
)

func newGate(t *testing.T) (*whitelist.Gate, *state.MemStore) {
	t.Helper()

	store := state.NewMemStore()
	gate := whitelist.New("whitelist-1")

	ctx := state.NewContext(store)
	require.NoError(t, gate.Initialize(ctx, gateOwner))
	require.NoError(t, ctx.Commit())

	return gate, store
}

func ctxAs(store state.Store, sender string) *state.Context {
	return state.NewContext(store, state.WithSender(sender))
}

func TestInitializeDefaults(t *testing.T) {
	t.Parallel()

	gate, store := newGate(t)

	st, err := gate.GetState(ctxAs(store, gateOwner))
	require.NoError(t, err)
	require.True(t, st.Enabled)
	require.Equal(t, common.Hash{}.Hex(), st.MerkleRoot)
}

func TestInitializeTwiceFails(t *testing.T) {
	t.Parallel()

	gate, store := newGate(t)

	ctx := ctxAs(store, gateOwner)
	require.Error(t, gate.Initialize(ctx, gateOwner))
}

func TestDisabledGateAdmitsEveryone(t *testing.T) {
	t.Parallel()

	gate, store := newGate(t)

	ctx := ctxAs(store, gateOwner)
	require.NoError(t, gate.SetWhitelistEnabled(ctx, false))
	require.NoError(t, ctx.Commit())

	// No root, no manual entry, no proof: still admitted.
	info, err := gate.GetWhitelistInfo(ctxAs(store, alice), alice, 1, nil)
	require.NoError(t, err)
	require.True(t, info.Whitelisted)
	require.Equal(t, "disabled", info.Method)
}

func TestEnabledGateWithNoEntriesRejects(t *testing.T) {
	t.Parallel()

	gate, store := newGate(t)

	info, err := gate.GetWhitelistInfo(ctxAs(store, alice), alice, 1, nil)
	require.NoError(t, err)
	require.False(t, info.Whitelisted)
	require.Equal(t, "none", info.Method)
}

func TestManualWhitelist(t *testing.T) {
	t.Parallel()

	gate, store := newGate(t)

	ctx := ctxAs(store, gateOwner)
	require.NoError(t, gate.SetManualWhitelist(ctx, alice, 2, true))
	require.NoError(t, ctx.Commit())

	// Admitted in tier 2 only; the manual entry is per tier.
	info, err := gate.GetWhitelistInfo(ctxAs(store, alice), alice, 2, nil)
	require.NoError(t, err)
	require.True(t, info.Whitelisted)
	require.Equal(t, "manual", info.Method)

	info, err = gate.GetWhitelistInfo(ctxAs(store, alice), alice, 1, nil)
	require.NoError(t, err)
	require.False(t, info.Whitelisted)

	status, err := gate.GetManualWhitelistStatus(ctxAs(store, alice), alice)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false}, status)

	// Removal clears the entry.
	ctx = ctxAs(store, gateOwner)
	require.NoError(t, gate.SetManualWhitelist(ctx, alice, 2, false))
	require.NoError(t, ctx.Commit())

	info, err = gate.GetWhitelistInfo(ctxAs(store, alice), alice, 2, nil)
	require.NoError(t, err)
	require.False(t, info.Whitelisted)
}

func TestManualWhitelistBatch(t *testing.T) {
	t.Parallel()

	gate, store := newGate(t)

	ctx := ctxAs(store, gateOwner)
	require.NoError(t, gate.SetManualWhitelistBatch(ctx, []string{alice, bob}, 1, true))
	require.NoError(t, ctx.Commit())

	for _, account := range []string{alice, bob} {
		ok, err := gate.IsWhitelisted(ctxAs(store, account), account, 1, nil)
		require.NoError(t, err)
		require.True(t, ok)
	}

	ok, err := gate.IsWhitelisted(ctxAs(store, carol), carol, 1, nil)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestManualWhitelistValidation(t *testing.T) {
	t.Parallel()

	gate, store := newGate(t)

	tests := []struct {
		name    string
		sender  string
		account string
		tier    uint8
	}{
		{name: "Failure - not the owner", sender: alice, account: alice, tier: 1},
		{name: "Failure - tier zero", sender: gateOwner, account: alice, tier: 0},
		{name: "Failure - tier above range", sender: gateOwner, account: alice, tier: 4},
		{name: "Failure - bad address", sender: gateOwner, account: "nope", tier: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := ctxAs(store, tt.sender)
			require.Error(t, gate.SetManualWhitelist(ctx, tt.account, tt.tier, true))
		})
	}
}

func TestMerkleAdmission(t *testing.T) {
	t.Parallel()

	gate, store := newGate(t)

	aliceLeaf := merkle.Leaf(common.HexToAddress(alice), 1)
	bobLeaf := merkle.Leaf(common.HexToAddress(bob), 2)
	tree := merkle.NewTree([]common.Hash{aliceLeaf, bobLeaf})

	ctx := ctxAs(store, gateOwner)
	require.NoError(t, gate.SetMerkleRoot(ctx, tree.Root().Hex()))
	require.NoError(t, ctx.Commit())

	proofHashes, ok := tree.Proof(aliceLeaf)
	require.True(t, ok)
	proof := make([]string, len(proofHashes))
	for i, h := range proofHashes {
		proof[i] = h.Hex()
	}

	info, err := gate.GetWhitelistInfo(ctxAs(store, alice), alice, 1, proof)
	require.NoError(t, err)
	require.True(t, info.Whitelisted)
	require.Equal(t, "merkle", info.Method)

	// The same proof does not admit a different tier or participant.
	info, err = gate.GetWhitelistInfo(ctxAs(store, alice), alice, 2, proof)
	require.NoError(t, err)
	require.False(t, info.Whitelisted)

	info, err = gate.GetWhitelistInfo(ctxAs(store, carol), carol, 1, proof)
	require.NoError(t, err)
	require.False(t, info.Whitelisted)
}

func TestSetMerkleRootValidation(t *testing.T) {
	t.Parallel()

	gate, store := newGate(t)

	require.ErrorIs(t, gate.SetMerkleRoot(ctxAs(store, alice), common.Hash{}.Hex()), whitelist.ErrUnauthorized)
	require.Error(t, gate.SetMerkleRoot(ctxAs(store, gateOwner), "0x1234"))
	require.Error(t, gate.SetMerkleRoot(ctxAs(store, gateOwner), "not-a-hash"))
}

func TestSetMerkleRootEmitsOldAndNewRoot(t *testing.T) {
	t.Parallel()

	gate, store := newGate(t)

	tree := merkle.NewTree([]common.Hash{merkle.Leaf(common.HexToAddress(alice), 1)})
	ctx := ctxAs(store, gateOwner)
	require.NoError(t, gate.SetMerkleRoot(ctx, tree.Root().Hex()))

	events := ctx.Events()
	require.Len(t, events, 1)
	require.Equal(t, "MerkleRootUpdated", events[0].Name)
}

func TestVerifyProofStateless(t *testing.T) {
	t.Parallel()

	gate, _ := newGate(t)

	aliceLeaf := merkle.Leaf(common.HexToAddress(alice), 1)
	bobLeaf := merkle.Leaf(common.HexToAddress(bob), 1)
	tree := merkle.NewTree([]common.Hash{aliceLeaf, bobLeaf})

	proofHashes, ok := tree.Proof(aliceLeaf)
	require.True(t, ok)
	proof := make([]string, len(proofHashes))
	for i, h := range proofHashes {
		proof[i] = h.Hex()
	}

	valid, err := gate.VerifyProof(proof, tree.Root().Hex(), aliceLeaf.Hex())
	require.NoError(t, err)
	require.True(t, valid)

	valid, err = gate.VerifyProof(proof, tree.Root().Hex(), bobLeaf.Hex())
	require.NoError(t, err)
	require.False(t, valid)
}
