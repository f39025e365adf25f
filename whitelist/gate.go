package whitelist

import (
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/sideshiftai/basepulse-ido/merkle"
	"github.com/sideshiftai/basepulse-ido/state"
)

// MaxTier is the highest valid tier id; tiers run 1..MaxTier.
const MaxTier = 3

const (
	methodDisabled = "disabled"
	methodManual   = "manual"
	methodMerkle   = "merkle"
	methodNone     = "none"
)

// Gate decides whether a participant may act within a tier, via a manual
// override list or a merkle membership proof against the published root.
// Each sale campaign owns one Gate instance, namespaced by its handle.
type Gate struct {
	handle string
}

func New(handle string) *Gate {
	return &Gate{handle: handle}
}

func (g *Gate) Handle() string {
	return g.handle
}

func (g *Gate) ownerKey() string {
	return fmt.Sprintf("whitelistowner_%s", g.handle)
}

func (g *Gate) stateKey() string {
	return fmt.Sprintf("whiteliststate_%s", g.handle)
}

func (g *Gate) manualKey(account string, tier uint8) string {
	return fmt.Sprintf("manualwl_%s_%s_%d", g.handle, account, tier)
}

// Initialize seeds ownership and the default state: whitelist enabled, zero
// root. Called once by the factory.
func (g *Gate) Initialize(ctx state.TransactionContext, owner string) error {
	owner, err := state.NormalizeAddress(owner)
	if err != nil {
		return state.NewCustomError(http.StatusBadRequest, "invalid owner address", err)
	}

	existing, err := ctx.GetState(g.ownerKey())
	if err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to get whitelist owner", err)
	}
	if existing != nil {
		return state.NewCustomError(http.StatusConflict, fmt.Sprintf("whitelist gate %s is already initialized", g.handle), nil)
	}

	if err := ctx.PutState(g.ownerKey(), []byte(owner)); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set whitelist owner", err)
	}

	return setWhitelistState(ctx, g.stateKey(), &State{
		Enabled:    true,
		MerkleRoot: common.Hash{}.Hex(),
	})
}

func (g *Gate) requireOwner(ctx state.TransactionContext) (string, error) {
	signer, err := state.Sender(ctx)
	if err != nil {
		return "", state.NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	owner, err := ctx.GetState(g.ownerKey())
	if err != nil {
		return "", state.NewCustomError(http.StatusInternalServerError, "failed to get whitelist owner", err)
	}
	if owner == nil || signer != string(owner) {
		return "", ErrUnauthorized
	}

	return signer, nil
}

// SetMerkleRoot replaces the published root. Owner only.
func (g *Gate) SetMerkleRoot(ctx state.TransactionContext, root string) error {
	if _, err := g.requireOwner(ctx); err != nil {
		return err
	}

	parsed, err := parseHash(root)
	if err != nil {
		return ErrInvalidRoot(root)
	}

	st, err := getWhitelistState(ctx, g.stateKey())
	if err != nil {
		return err
	}

	oldRoot := st.MerkleRoot
	st.MerkleRoot = parsed.Hex()
	if err := setWhitelistState(ctx, g.stateKey(), st); err != nil {
		return err
	}

	return emitEvent(ctx, "MerkleRootUpdated", MerkleRootUpdatedEvent{
		Gate:    g.handle,
		NewRoot: st.MerkleRoot,
		OldRoot: oldRoot,
	})
}

// SetManualWhitelist flips the manual override for one (account, tier) pair.
// Owner only; tier must be in range.
func (g *Gate) SetManualWhitelist(ctx state.TransactionContext, account string, tier uint8, allowed bool) error {
	if _, err := g.requireOwner(ctx); err != nil {
		return err
	}
	return g.setManualEntry(ctx, account, tier, allowed)
}

// SetManualWhitelistBatch applies the same override to a set of accounts.
// The whole batch applies or none of it does.
func (g *Gate) SetManualWhitelistBatch(ctx state.TransactionContext, accounts []string, tier uint8, allowed bool) error {
	if _, err := g.requireOwner(ctx); err != nil {
		return err
	}
	for _, account := range accounts {
		if err := g.setManualEntry(ctx, account, tier, allowed); err != nil {
			return err
		}
	}
	return nil
}

func (g *Gate) setManualEntry(ctx state.TransactionContext, account string, tier uint8, allowed bool) error {
	if !isValidTier(tier) {
		return ErrInvalidTier
	}

	account, err := state.NormalizeAddress(account)
	if err != nil {
		return ErrInvalidAddress(account)
	}

	if allowed {
		if err := ctx.PutState(g.manualKey(account, tier), []byte("true")); err != nil {
			return state.NewCustomError(http.StatusInternalServerError, "failed to set manual whitelist entry", err)
		}
	} else {
		if err := ctx.DelState(g.manualKey(account, tier)); err != nil {
			return state.NewCustomError(http.StatusInternalServerError, "failed to clear manual whitelist entry", err)
		}
	}

	return emitEvent(ctx, "ManualWhitelistUpdated", ManualWhitelistUpdatedEvent{
		Gate:    g.handle,
		Account: account,
		Tier:    tier,
		Status:  allowed,
	})
}

// SetWhitelistEnabled toggles the gate. Disabled means open admission.
func (g *Gate) SetWhitelistEnabled(ctx state.TransactionContext, enabled bool) error {
	if _, err := g.requireOwner(ctx); err != nil {
		return err
	}

	st, err := getWhitelistState(ctx, g.stateKey())
	if err != nil {
		return err
	}

	st.Enabled = enabled
	if err := setWhitelistState(ctx, g.stateKey(), st); err != nil {
		return err
	}

	return emitEvent(ctx, "WhitelistStatusChanged", WhitelistStatusChangedEvent{
		Gate:    g.handle,
		Enabled: enabled,
	})
}

// IsWhitelisted reports whether the participant may act within the tier.
func (g *Gate) IsWhitelisted(ctx state.TransactionContext, participant string, tier uint8, proof []string) (bool, error) {
	info, err := g.GetWhitelistInfo(ctx, participant, tier, proof)
	if err != nil {
		return false, err
	}
	return info.Whitelisted, nil
}

// GetWhitelistInfo resolves the admission decision and reports which method
// produced it, for auditability.
func (g *Gate) GetWhitelistInfo(ctx state.TransactionContext, participant string, tier uint8, proof []string) (*WhitelistInfo, error) {
	if !isValidTier(tier) {
		return nil, ErrInvalidTier
	}

	participant, err := state.NormalizeAddress(participant)
	if err != nil {
		return nil, ErrInvalidAddress(participant)
	}

	st, err := getWhitelistState(ctx, g.stateKey())
	if err != nil {
		return nil, err
	}

	if !st.Enabled {
		return &WhitelistInfo{Whitelisted: true, Method: methodDisabled}, nil
	}

	manual, err := ctx.GetState(g.manualKey(participant, tier))
	if err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, "failed to get manual whitelist entry", err)
	}
	if string(manual) == "true" {
		return &WhitelistInfo{Whitelisted: true, Method: methodManual}, nil
	}

	leaf := merkle.Leaf(common.HexToAddress(participant), tier)
	proofHashes, err := parseProof(proof)
	if err != nil {
		return nil, err
	}
	if merkle.Verify(proofHashes, common.HexToHash(st.MerkleRoot), leaf) {
		return &WhitelistInfo{Whitelisted: true, Method: methodMerkle}, nil
	}

	return &WhitelistInfo{Whitelisted: false, Method: methodNone}, nil
}

// GetManualWhitelistStatus returns the manual override flags for every tier.
func (g *Gate) GetManualWhitelistStatus(ctx state.TransactionContext, participant string) ([]bool, error) {
	participant, err := state.NormalizeAddress(participant)
	if err != nil {
		return nil, ErrInvalidAddress(participant)
	}

	status := make([]bool, MaxTier)
	for tier := uint8(1); tier <= MaxTier; tier++ {
		entry, err := ctx.GetState(g.manualKey(participant, tier))
		if err != nil {
			return nil, state.NewCustomError(http.StatusInternalServerError, "failed to get manual whitelist entry", err)
		}
		status[tier-1] = string(entry) == "true"
	}

	return status, nil
}

// GetState returns the gate's current configuration.
func (g *Gate) GetState(ctx state.TransactionContext) (*State, error) {
	return getWhitelistState(ctx, g.stateKey())
}

// VerifyProof checks a proof against an explicit root and leaf without
// touching gate state.
func (g *Gate) VerifyProof(proof []string, root, leaf string) (bool, error) {
	rootHash, err := parseHash(root)
	if err != nil {
		return false, ErrInvalidRoot(root)
	}
	leafHash, err := parseHash(leaf)
	if err != nil {
		return false, fmt.Errorf("InvalidLeaf: %s", leaf)
	}
	proofHashes, err := parseProof(proof)
	if err != nil {
		return false, err
	}
	return merkle.Verify(proofHashes, rootHash, leafHash), nil
}

func isValidTier(tier uint8) bool {
	return tier >= 1 && tier <= MaxTier
}

func parseHash(s string) (common.Hash, error) {
	raw, err := hexutil.Decode(s)
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid hash %q: %w", s, err)
	}
	if len(raw) != common.HashLength {
		return common.Hash{}, fmt.Errorf("invalid hash %q: want %d bytes", s, common.HashLength)
	}
	return common.BytesToHash(raw), nil
}

func parseProof(proof []string) ([]common.Hash, error) {
	hashes := make([]common.Hash, len(proof))
	for i, element := range proof {
		parsed, err := parseHash(element)
		if err != nil {
			return nil, fmt.Errorf("invalid proof element %d: %w", i, err)
		}
		hashes[i] = parsed
	}
	return hashes, nil
}
