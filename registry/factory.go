package registry

import (
	"fmt"
	"net/http"

	"github.com/sideshiftai/basepulse-ido/sale"
	"github.com/sideshiftai/basepulse-ido/state"
	"github.com/sideshiftai/basepulse-ido/vesting"
	"github.com/sideshiftai/basepulse-ido/whitelist"
)

const (
	ownerKey     = "registryowner"
	saleCountKey = "registrysalecount"
)

// Factory deploys campaigns. Each CreateSale mints a sale ledger, a vesting
// ledger, and a whitelist gate under fresh handles, wires them together, and
// records the bundle under a sequential id.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func saleRecordKey(id uint64) string {
	return fmt.Sprintf("salerecord_%d", id)
}

func saleHandle(id uint64) string {
	return fmt.Sprintf("sale-%d", id)
}

func vestingHandle(id uint64) string {
	return fmt.Sprintf("vesting-%d", id)
}

func whitelistHandle(id uint64) string {
	return fmt.Sprintf("whitelist-%d", id)
}

// Initialize seeds registry ownership. Called once at deployment.
func (f *Factory) Initialize(ctx state.TransactionContext, owner string) error {
	owner, err := state.NormalizeAddress(owner)
	if err != nil {
		return ErrInvalidAddress(owner)
	}

	existing, err := ctx.GetState(ownerKey)
	if err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to get registry owner", err)
	}
	if existing != nil {
		return state.NewCustomError(http.StatusConflict, "registry is already initialized", nil)
	}

	if err := ctx.PutState(ownerKey, []byte(owner)); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set registry owner", err)
	}
	if err := ctx.PutState(saleCountKey, []byte("0")); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set sale count", err)
	}

	return nil
}

// CreateSale deploys a new campaign owned by the signer. The sale ledger is
// authorized against its vesting ledger so initial-unlock claims can open
// schedules.
func (f *Factory) CreateSale(ctx state.TransactionContext, assetToken, metadata string) (*SaleRecord, error) {
	creator, err := state.Sender(ctx)
	if err != nil {
		return nil, state.NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	assetToken, err = state.NormalizeAddress(assetToken)
	if err != nil {
		return nil, ErrInvalidAddress(assetToken)
	}

	count, err := f.saleCount(ctx)
	if err != nil {
		return nil, err
	}
	id := count + 1

	record := &SaleRecord{
		ID:              id,
		AssetToken:      assetToken,
		Metadata:        metadata,
		Creator:         creator,
		CreatedAt:       ctx.GetTxTimestamp(),
		Active:          true,
		SaleHandle:      saleHandle(id),
		VestingHandle:   vestingHandle(id),
		WhitelistHandle: whitelistHandle(id),
	}

	gate := whitelist.New(record.WhitelistHandle)
	if err := gate.Initialize(ctx, creator); err != nil {
		return nil, err
	}

	vestingLedger := vesting.New(record.VestingHandle)
	if err := vestingLedger.Initialize(ctx, creator); err != nil {
		return nil, err
	}
	if err := vestingLedger.SetAuthorizedCaller(ctx, record.SaleHandle); err != nil {
		return nil, err
	}

	saleLedger := sale.New(record.SaleHandle, record.AssetToken, gate, vestingLedger)
	if err := saleLedger.Initialize(ctx, creator); err != nil {
		return nil, err
	}

	if err := setSaleRecord(ctx, saleRecordKey(id), record); err != nil {
		return nil, err
	}
	if err := ctx.PutState(saleCountKey, []byte(fmt.Sprintf("%d", id))); err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, "failed to set sale count", err)
	}

	if err := emitEvent(ctx, "SaleCreated", SaleCreatedEvent{
		ID:         id,
		AssetToken: assetToken,
		Creator:    creator,
		SaleHandle: record.SaleHandle,
	}); err != nil {
		return nil, err
	}

	return record, nil
}

// GetSale returns the record for one campaign.
func (f *Factory) GetSale(ctx state.TransactionContext, id uint64) (*SaleRecord, error) {
	record, err := getSaleRecord(ctx, saleRecordKey(id))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrSaleNotFound(id)
	}
	return record, nil
}

// GetAllSales returns every registered campaign in creation order.
func (f *Factory) GetAllSales(ctx state.TransactionContext) ([]*SaleRecord, error) {
	count, err := f.saleCount(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]*SaleRecord, 0, count)
	for id := uint64(1); id <= count; id++ {
		record, err := getSaleRecord(ctx, saleRecordKey(id))
		if err != nil {
			return nil, err
		}
		if record == nil {
			return nil, ErrSaleNotFound(id)
		}
		records = append(records, record)
	}

	return records, nil
}

// DeactivateSale hides a campaign from discovery. Only the registry owner
// or the campaign creator may deactivate. Component state is untouched.
func (f *Factory) DeactivateSale(ctx state.TransactionContext, id uint64) error {
	signer, err := state.Sender(ctx)
	if err != nil {
		return state.NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	record, err := f.GetSale(ctx, id)
	if err != nil {
		return err
	}

	owner, err := ctx.GetState(ownerKey)
	if err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to get registry owner", err)
	}
	if signer != record.Creator && (owner == nil || signer != string(owner)) {
		return ErrUnauthorized
	}

	record.Active = false
	if err := setSaleRecord(ctx, saleRecordKey(id), record); err != nil {
		return err
	}

	return emitEvent(ctx, "SaleDeactivated", SaleDeactivatedEvent{ID: id, By: signer})
}

// SaleLedger reconstructs the wired sale component for one campaign.
func (f *Factory) SaleLedger(ctx state.TransactionContext, id uint64) (*sale.Ledger, error) {
	record, err := f.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}
	gate := whitelist.New(record.WhitelistHandle)
	vestingLedger := vesting.New(record.VestingHandle)
	return sale.New(record.SaleHandle, record.AssetToken, gate, vestingLedger), nil
}

// VestingLedger reconstructs the vesting component for one campaign.
func (f *Factory) VestingLedger(ctx state.TransactionContext, id uint64) (*vesting.Ledger, error) {
	record, err := f.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}
	return vesting.New(record.VestingHandle), nil
}

// WhitelistGate reconstructs the whitelist component for one campaign.
func (f *Factory) WhitelistGate(ctx state.TransactionContext, id uint64) (*whitelist.Gate, error) {
	record, err := f.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}
	return whitelist.New(record.WhitelistHandle), nil
}

func (f *Factory) saleCount(ctx state.TransactionContext) (uint64, error) {
	countAsBytes, err := ctx.GetState(saleCountKey)
	if err != nil {
		return 0, state.NewCustomError(http.StatusInternalServerError, "failed to get sale count", err)
	}
	if countAsBytes == nil {
		return 0, nil
	}

	var count uint64
	if _, err := fmt.Sscanf(string(countAsBytes), "%d", &count); err != nil {
		return 0, state.NewCustomError(http.StatusInternalServerError, "failed to parse sale count", err)
	}

	return count, nil
}
