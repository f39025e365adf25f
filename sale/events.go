package sale

import (
	"encoding/json"
	"fmt"

	"github.com/sideshiftai/basepulse-ido/state"
)

type SaleConfiguredEvent struct {
	Sale            string `json:"sale"`
	StartTime       uint64 `json:"startTime"`
	EndTime         uint64 `json:"endTime"`
	UnitPrice       string `json:"unitPrice"`
	HardCap         string `json:"hardCap"`
	SoftCap         string `json:"softCap"`
	MinContribution string `json:"minContribution"`
	MaxGasPrice     string `json:"maxGasPrice"`
}

type TierConfiguredEvent struct {
	Sale                   string `json:"sale"`
	TierID                 uint8  `json:"tierId"`
	StartTime              uint64 `json:"startTime"`
	EndTime                uint64 `json:"endTime"`
	UnitPrice              string `json:"unitPrice"`
	MaxAllocationPerWallet string `json:"maxAllocationPerWallet"`
	TotalAllocation        string `json:"totalAllocation"`
}

type VestingParamsSetEvent struct {
	Sale       string `json:"sale"`
	TGEPercent uint64 `json:"tgePercent"`
	Cliff      uint64 `json:"cliff"`
	Duration   uint64 `json:"duration"`
}

type TokensPurchasedEvent struct {
	Sale          string `json:"sale"`
	Buyer         string `json:"buyer"`
	Tier          uint8  `json:"tier"`
	Amount        string `json:"amount"`
	TokenAmount   string `json:"tokenAmount"`
	ReferralBonus string `json:"referralBonus"`
	Referrer      string `json:"referrer,omitempty"`
	TierTotalSold string `json:"tierTotalSold"`
	TotalRaised   string `json:"totalRaised"`
	TotalSold     string `json:"totalSold"`
}

type SaleFinalizedEvent struct {
	Sale        string `json:"sale"`
	TotalRaised string `json:"totalRaised"`
	TotalSold   string `json:"totalSold"`
	Successful  bool   `json:"successful"`
}

type TGEClaimedEvent struct {
	Sale         string `json:"sale"`
	User         string `json:"user"`
	Tier         uint8  `json:"tier"`
	Amount       string `json:"amount"`
	VestedAmount string `json:"vestedAmount"`
	ScheduleID   uint64 `json:"scheduleId,omitempty"`
}

type RefundClaimedEvent struct {
	Sale   string `json:"sale"`
	User   string `json:"user"`
	Tier   uint8  `json:"tier"`
	Amount string `json:"amount"`
}

type SalePausedEvent struct {
	Sale   string `json:"sale"`
	Paused bool   `json:"paused"`
}

type FundsWithdrawnEvent struct {
	Sale           string `json:"sale"`
	To             string `json:"to"`
	Amount         string `json:"amount"`
	TotalWithdrawn string `json:"totalWithdrawn"`
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
