package sale

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sideshiftai/basepulse-ido/state"
)

// SaleConfig is the campaign-wide configuration plus its running totals and
// lifecycle flags. Amounts are decimal strings in payment base units except
// TotalSold, which is in token base units.
type SaleConfig struct {
	StartTime       uint64 `json:"startTime"`
	EndTime         uint64 `json:"endTime"`
	UnitPrice       string `json:"unitPrice"`
	HardCap         string `json:"hardCap"`
	SoftCap         string `json:"softCap"`
	MinContribution string `json:"minContribution"`
	MaxGasPrice     string `json:"maxGasPrice"`
	TotalRaised     string `json:"totalRaised"`
	TotalSold       string `json:"totalSold"`
	IsPaused        bool   `json:"isPaused"`
	IsFinalized     bool   `json:"isFinalized"`
	Successful      bool   `json:"successful"`
}

// Tier is one priced, capped, time-windowed allocation bucket. The wallet and
// total allocation caps are denominated in token base units.
type Tier struct {
	StartTime              uint64 `json:"startTime"`
	EndTime                uint64 `json:"endTime"`
	UnitPrice              string `json:"unitPrice"`
	MaxAllocationPerWallet string `json:"maxAllocationPerWallet"`
	TotalAllocation        string `json:"totalAllocation"`
	TotalSold              string `json:"totalSold"`
}

// Contribution is the per-(participant, tier) accounting record.
type Contribution struct {
	CumulativeAmount        string `json:"cumulativeAmount"`
	TokensAllocated         string `json:"tokensAllocated"`
	ReferralBonus           string `json:"referralBonus"`
	HasClaimedInitialUnlock bool   `json:"hasClaimedInitialUnlock"`
}

// VestingParams govern the schedules opened when participants claim their
// initial unlock: TGEPercent is released immediately, the remainder vests
// over Duration with the given Cliff.
type VestingParams struct {
	TGEPercent uint64 `json:"tgePercent"`
	Cliff      uint64 `json:"cliff"`
	Duration   uint64 `json:"duration"`
}

// SaleConfigParams is the caller-supplied shape for ConfigureSale.
type SaleConfigParams struct {
	StartTime       uint64 `json:"startTime"`
	EndTime         uint64 `json:"endTime"`
	UnitPrice       string `json:"unitPrice"`
	HardCap         string `json:"hardCap"`
	SoftCap         string `json:"softCap"`
	MinContribution string `json:"minContribution"`
	MaxGasPrice     string `json:"maxGasPrice"`
}

// TierParams is the caller-supplied shape for ConfigureTier.
type TierParams struct {
	StartTime              uint64 `json:"startTime"`
	EndTime                uint64 `json:"endTime"`
	UnitPrice              string `json:"unitPrice"`
	MaxAllocationPerWallet string `json:"maxAllocationPerWallet"`
	TotalAllocation        string `json:"totalAllocation"`
}

func getSaleConfig(ctx state.TransactionContext, key string) (*SaleConfig, error) {
	configAsBytes, err := ctx.GetState(key)
	if err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get sale config with Key %s", key), err)
	}
	if configAsBytes == nil {
		return nil, nil
	}

	var config SaleConfig
	if err := json.Unmarshal(configAsBytes, &config); err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, "failed to unmarshal sale config", err)
	}

	return &config, nil
}

func setSaleConfig(ctx state.TransactionContext, key string, config *SaleConfig) error {
	configAsBytes, err := json.Marshal(config)
	if err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to marshal sale config", err)
	}

	if err := ctx.PutState(key, configAsBytes); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set sale config", err)
	}

	return nil
}

func getTier(ctx state.TransactionContext, key string) (*Tier, error) {
	tierAsBytes, err := ctx.GetState(key)
	if err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get tier with Key %s", key), err)
	}
	if tierAsBytes == nil {
		return nil, nil
	}

	var tier Tier
	if err := json.Unmarshal(tierAsBytes, &tier); err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, "failed to unmarshal tier", err)
	}

	return &tier, nil
}

func setTier(ctx state.TransactionContext, key string, tier *Tier) error {
	tierAsBytes, err := json.Marshal(tier)
	if err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to marshal tier", err)
	}

	if err := ctx.PutState(key, tierAsBytes); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set tier", err)
	}

	return nil
}

func getContribution(ctx state.TransactionContext, key string) (*Contribution, error) {
	contributionAsBytes, err := ctx.GetState(key)
	if err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get contribution with Key %s", key), err)
	}
	if contributionAsBytes == nil {
		return &Contribution{
			CumulativeAmount: "0",
			TokensAllocated:  "0",
			ReferralBonus:    "0",
		}, nil
	}

	var contribution Contribution
	if err := json.Unmarshal(contributionAsBytes, &contribution); err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, "failed to unmarshal contribution", err)
	}

	return &contribution, nil
}

func setContribution(ctx state.TransactionContext, key string, contribution *Contribution) error {
	contributionAsBytes, err := json.Marshal(contribution)
	if err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to marshal contribution", err)
	}

	if err := ctx.PutState(key, contributionAsBytes); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set contribution", err)
	}

	return nil
}

func getVestingParams(ctx state.TransactionContext, key string) (*VestingParams, error) {
	paramsAsBytes, err := ctx.GetState(key)
	if err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get vesting params with Key %s", key), err)
	}
	if paramsAsBytes == nil {
		return nil, nil
	}

	var params VestingParams
	if err := json.Unmarshal(paramsAsBytes, &params); err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, "failed to unmarshal vesting params", err)
	}

	return &params, nil
}

func setVestingParams(ctx state.TransactionContext, key string, params *VestingParams) error {
	paramsAsBytes, err := json.Marshal(params)
	if err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to marshal vesting params", err)
	}

	if err := ctx.PutState(key, paramsAsBytes); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set vesting params", err)
	}

	return nil
}
