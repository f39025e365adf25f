package handler

import (
	"math/big"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sideshiftai/basepulse-ido/internal/service"
	"github.com/sideshiftai/basepulse-ido/sale"
	"github.com/sideshiftai/basepulse-ido/state"
)

type SaleHandler struct {
	svc *service.Service
}

func NewSaleHandler(svc *service.Service) *SaleHandler {
	return &SaleHandler{svc: svc}
}

// withSale resolves the sale ledger for the campaign in the path and runs fn
// against it inside one transaction context.
func (h *SaleHandler) withSale(c *gin.Context, from string, gas *big.Int, fn func(ctx state.TransactionContext, ledger *sale.Ledger) error) (string, []state.Event, error) {
	id, ok := saleID(c)
	if !ok {
		return "", nil, errHandled
	}
	return h.svc.Execute(from, gas, func(ctx state.TransactionContext) error {
		ledger, err := h.svc.Factory().SaleLedger(ctx, id)
		if err != nil {
			return err
		}
		return fn(ctx, ledger)
	})
}

func (h *SaleHandler) querySale(c *gin.Context, fn func(ctx state.TransactionContext, ledger *sale.Ledger) error) error {
	id, ok := saleID(c)
	if !ok {
		return errHandled
	}
	return h.svc.Query(c.GetHeader("X-Sender"), func(ctx state.TransactionContext) error {
		ledger, err := h.svc.Factory().SaleLedger(ctx, id)
		if err != nil {
			return err
		}
		return fn(ctx, ledger)
	})
}

type ConfigureSaleRequest struct {
	StartTime       uint64 `json:"startTime" binding:"required"`
	EndTime         uint64 `json:"endTime" binding:"required"`
	UnitPrice       string `json:"unitPrice" binding:"required"`
	HardCap         string `json:"hardCap" binding:"required"`
	SoftCap         string `json:"softCap" binding:"required"`
	MinContribution string `json:"minContribution" binding:"required"`
	MaxGasPrice     string `json:"maxGasPrice"`
}

func (h *SaleHandler) ConfigureSale(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}

	var req ConfigureSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, err)
		return
	}

	txID, events, err := h.withSale(c, from, nil, func(ctx state.TransactionContext, ledger *sale.Ledger) error {
		return ledger.ConfigureSale(ctx, sale.SaleConfigParams{
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			UnitPrice:       req.UnitPrice,
			HardCap:         req.HardCap,
			SoftCap:         req.SoftCap,
			MinContribution: req.MinContribution,
			MaxGasPrice:     req.MaxGasPrice,
		})
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	TxResponse(c, "sale configured", txID, events)
}

type ConfigureTierRequest struct {
	StartTime              uint64 `json:"startTime" binding:"required"`
	EndTime                uint64 `json:"endTime" binding:"required"`
	UnitPrice              string `json:"unitPrice" binding:"required"`
	MaxAllocationPerWallet string `json:"maxAllocationPerWallet" binding:"required"`
	TotalAllocation        string `json:"totalAllocation" binding:"required"`
}

func (h *SaleHandler) ConfigureTier(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}
	tier, ok := tierID(c)
	if !ok {
		return
	}

	var req ConfigureTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, err)
		return
	}

	txID, events, err := h.withSale(c, from, nil, func(ctx state.TransactionContext, ledger *sale.Ledger) error {
		return ledger.ConfigureTier(ctx, tier, sale.TierParams{
			StartTime:              req.StartTime,
			EndTime:                req.EndTime,
			UnitPrice:              req.UnitPrice,
			MaxAllocationPerWallet: req.MaxAllocationPerWallet,
			TotalAllocation:        req.TotalAllocation,
		})
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	TxResponse(c, "tier configured", txID, events)
}

type SetVestingParamsRequest struct {
	TGEPercent uint64 `json:"tgePercent"`
	Cliff      uint64 `json:"cliff"`
	Duration   uint64 `json:"duration" binding:"required"`
}

func (h *SaleHandler) SetVestingParams(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}

	var req SetVestingParamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, err)
		return
	}

	txID, events, err := h.withSale(c, from, nil, func(ctx state.TransactionContext, ledger *sale.Ledger) error {
		return ledger.SetVestingParams(ctx, sale.VestingParams{
			TGEPercent: req.TGEPercent,
			Cliff:      req.Cliff,
			Duration:   req.Duration,
		})
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	TxResponse(c, "vesting params set", txID, events)
}

type ContributeRequest struct {
	Tier     uint8    `json:"tier" binding:"required"`
	Amount   string   `json:"amount" binding:"required"`
	Proof    []string `json:"proof"`
	Referrer string   `json:"referrer"`
}

func (h *SaleHandler) Contribute(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}
	gas, ok := gasPrice(c)
	if !ok {
		return
	}

	var req ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, err)
		return
	}

	txID, events, err := h.withSale(c, from, gas, func(ctx state.TransactionContext, ledger *sale.Ledger) error {
		return ledger.Contribute(ctx, req.Tier, req.Amount, req.Proof, req.Referrer)
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	TxResponse(c, "contribution accepted", txID, events)
}

func (h *SaleHandler) FinalizeSale(c *gin.Context) {
	h.simpleAction(c, "sale finalized", func(ctx state.TransactionContext, ledger *sale.Ledger) error {
		return ledger.FinalizeSale(ctx)
	})
}

func (h *SaleHandler) PauseSale(c *gin.Context) {
	h.simpleAction(c, "sale paused", func(ctx state.TransactionContext, ledger *sale.Ledger) error {
		return ledger.PauseSale(ctx)
	})
}

func (h *SaleHandler) UnpauseSale(c *gin.Context) {
	h.simpleAction(c, "sale unpaused", func(ctx state.TransactionContext, ledger *sale.Ledger) error {
		return ledger.UnpauseSale(ctx)
	})
}

func (h *SaleHandler) WithdrawFunds(c *gin.Context) {
	h.simpleAction(c, "funds withdrawn", func(ctx state.TransactionContext, ledger *sale.Ledger) error {
		return ledger.WithdrawFunds(ctx)
	})
}

func (h *SaleHandler) simpleAction(c *gin.Context, message string, fn func(ctx state.TransactionContext, ledger *sale.Ledger) error) {
	from, ok := sender(c)
	if !ok {
		return
	}

	txID, events, err := h.withSale(c, from, nil, fn)
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	TxResponse(c, message, txID, events)
}

type TierActionRequest struct {
	Tier uint8 `json:"tier" binding:"required"`
}

func (h *SaleHandler) ClaimInitialUnlock(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}

	var req TierActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, err)
		return
	}

	txID, events, err := h.withSale(c, from, nil, func(ctx state.TransactionContext, ledger *sale.Ledger) error {
		return ledger.ClaimInitialUnlock(ctx, req.Tier)
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	TxResponse(c, "initial unlock claimed", txID, events)
}

func (h *SaleHandler) ClaimRefund(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}

	var req TierActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, err)
		return
	}

	txID, events, err := h.withSale(c, from, nil, func(ctx state.TransactionContext, ledger *sale.Ledger) error {
		return ledger.ClaimRefund(ctx, req.Tier)
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	TxResponse(c, "refund claimed", txID, events)
}

func (h *SaleHandler) GetSaleConfig(c *gin.Context) {
	var config *sale.SaleConfig
	err := h.querySale(c, func(ctx state.TransactionContext, ledger *sale.Ledger) error {
		var err error
		config, err = ledger.GetSaleConfig(ctx)
		return err
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "sale config retrieved", config)
}

func (h *SaleHandler) GetTier(c *gin.Context) {
	tier, ok := tierID(c)
	if !ok {
		return
	}

	var result *sale.Tier
	err := h.querySale(c, func(ctx state.TransactionContext, ledger *sale.Ledger) error {
		var err error
		result, err = ledger.GetTier(ctx, tier)
		return err
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "tier retrieved", result)
}

func (h *SaleHandler) GetUserContribution(c *gin.Context) {
	tier, err := strconv.ParseUint(c.Query("tier"), 10, 8)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid tier"})
		return
	}
	address := c.Param("address")

	var contribution *sale.Contribution
	queryErr := h.querySale(c, func(ctx state.TransactionContext, ledger *sale.Ledger) error {
		var err error
		contribution, err = ledger.GetUserContribution(ctx, address, uint8(tier))
		return err
	})
	if queryErr != nil {
		respondUnlessHandled(c, queryErr)
		return
	}

	SuccessResponse(c, http.StatusOK, "contribution retrieved", contribution)
}

func tierID(c *gin.Context) (uint8, bool) {
	tier, err := strconv.ParseUint(c.Param("tier"), 10, 8)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid tier"})
		return 0, false
	}
	return uint8(tier), true
}
