package registry

import (
	"encoding/json"
	"net/http"

	"github.com/sideshiftai/basepulse-ido/state"
)

type SaleCreatedEvent struct {
	ID         uint64 `json:"id"`
	AssetToken string `json:"assetToken"`
	Creator    string `json:"creator"`
	SaleHandle string `json:"saleHandle"`
}

type SaleDeactivatedEvent struct {
	ID uint64 `json:"id"`
	By string `json:"by"`
}

func emitEvent(ctx state.TransactionContext, name string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to marshal event", err)
	}
	if err := ctx.SetEvent(name, payload); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set event", err)
	}
	return nil
}
