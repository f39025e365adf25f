package whitelist

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sideshiftai/basepulse-ido/state"
)

// State is the gate's owner-mutable configuration.
type State struct {
	Enabled    bool   `json:"enabled"`
	MerkleRoot string `json:"merkleRoot"`
}

// WhitelistInfo reports an admission decision together with the method that
// produced it: disabled, manual, merkle, or none.
type WhitelistInfo struct {
	Whitelisted bool   `json:"whitelisted"`
	Method      string `json:"method"`
}

func getWhitelistState(ctx state.TransactionContext, key string) (*State, error) {
	stateAsBytes, err := ctx.GetState(key)
	if err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get whitelist state with Key %s", key), err)
	}
	if stateAsBytes == nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("whitelist state with Key %s does not exist", key), nil)
	}

	var st State
	if err := json.Unmarshal(stateAsBytes, &st); err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, "failed to unmarshal whitelist state", err)
	}

	return &st, nil
}

func setWhitelistState(ctx state.TransactionContext, key string, st *State) error {
	stateAsBytes, err := json.Marshal(st)
	if err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to marshal whitelist state", err)
	}

	if err := ctx.PutState(key, stateAsBytes); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set whitelist state", err)
	}

	return nil
}
