package registry

import (
	"encoding/json"
	"net/http"

	"github.com/sideshiftai/basepulse-ido/state"
)

// SaleRecord is the registry's view of one deployed campaign: who created
// it, what it sells, and the handles binding its three components together.
type SaleRecord struct {
	ID              uint64 `json:"id"`
	AssetToken      string `json:"assetToken"`
	Metadata        string `json:"metadata"`
	Creator         string `json:"creator"`
	CreatedAt       uint64 `json:"createdAt"`
	Active          bool   `json:"active"`
	SaleHandle      string `json:"saleHandle"`
	VestingHandle   string `json:"vestingHandle"`
	WhitelistHandle string `json:"whitelistHandle"`
}

func getSaleRecord(ctx state.TransactionContext, key string) (*SaleRecord, error) {
	recordAsBytes, err := ctx.GetState(key)
	if err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, "failed to get sale record", err)
	}
	if recordAsBytes == nil {
		return nil, nil
	}

	var record SaleRecord
	if err := json.Unmarshal(recordAsBytes, &record); err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, "failed to unmarshal sale record", err)
	}

	return &record, nil
}

func setSaleRecord(ctx state.TransactionContext, key string, record *SaleRecord) error {
	recordAsBytes, err := json.Marshal(record)
	if err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to marshal sale record", err)
	}
	if err := ctx.PutState(key, recordAsBytes); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set sale record", err)
	}
	return nil
}
