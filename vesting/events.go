package vesting

import (
	"encoding/json"
	"fmt"

	"github.com/sideshiftai/basepulse-ido/state"
)

type VestingScheduleCreatedEvent struct {
	Ledger       string `json:"ledger"`
	ScheduleID   uint64 `json:"scheduleId"`
	Beneficiary  string `json:"beneficiary"`
	TotalAmount  string `json:"totalAmount"`
	StartTime    uint64 `json:"startTime"`
	CliffLength  uint64 `json:"cliffLength"`
	VestDuration uint64 `json:"vestDuration"`
}

type TokensClaimedEvent struct {
	Ledger        string `json:"ledger"`
	ScheduleID    uint64 `json:"scheduleId"`
	Beneficiary   string `json:"beneficiary"`
	Amount        string `json:"amount"`
	ClaimedAmount string `json:"claimedAmount"`
	TotalClaims   string `json:"totalClaims"`
}

type VestingRevokedEvent struct {
	Ledger      string `json:"ledger"`
	ScheduleID  uint64 `json:"scheduleId"`
	Beneficiary string `json:"beneficiary"`
	TotalAmount string `json:"totalAmount"`
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
