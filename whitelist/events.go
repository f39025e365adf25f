package whitelist

import (
	"encoding/json"
	"fmt"

	"github.com/sideshiftai/basepulse-ido/state"
)

type MerkleRootUpdatedEvent struct {
	Gate    string `json:"gate"`
	NewRoot string `json:"newRoot"`
	OldRoot string `json:"oldRoot"`
}

type ManualWhitelistUpdatedEvent struct {
	Gate    string `json:"gate"`
	Account string `json:"account"`
	Tier    uint8  `json:"tier"`
	Status  bool   `json:"status"`
}

type WhitelistStatusChangedEvent struct {
	Gate    string `json:"gate"`
	Enabled bool   `json:"enabled"`
}

func emitEvent(ctx state.TransactionContext, name string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	if err := ctx.SetEvent(name, payload); err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}
