package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sideshiftai/basepulse-ido/internal/service"
	"github.com/sideshiftai/basepulse-ido/registry"
	"github.com/sideshiftai/basepulse-ido/state"
)

type FactoryHandler struct {
	svc *service.Service
}

func NewFactoryHandler(svc *service.Service) *FactoryHandler {
	return &FactoryHandler{svc: svc}
}

type CreateSaleRequest struct {
	AssetToken string `json:"assetToken" binding:"required"`
	Metadata   string `json:"metadata"`
}

func (h *FactoryHandler) CreateSale(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}

	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, err)
		return
	}

	var record *registry.SaleRecord
	txID, _, err := h.svc.Execute(from, nil, func(ctx state.TransactionContext) error {
		var err error
		record, err = h.svc.Factory().CreateSale(ctx, req.AssetToken, req.Metadata)
		return err
	})
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{Success: true, Message: "sale created", TxID: txID, Data: record})
}

func (h *FactoryHandler) GetSales(c *gin.Context) {
	from := c.GetHeader("X-Sender")

	var records []*registry.SaleRecord
	err := h.svc.Query(from, func(ctx state.TransactionContext) error {
		var err error
		records, err = h.svc.Factory().GetAllSales(ctx)
		return err
	})
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "sales retrieved", records)
}

func (h *FactoryHandler) GetSale(c *gin.Context) {
	id, ok := saleID(c)
	if !ok {
		return
	}

	var record *registry.SaleRecord
	err := h.svc.Query(c.GetHeader("X-Sender"), func(ctx state.TransactionContext) error {
		var err error
		record, err = h.svc.Factory().GetSale(ctx, id)
		return err
	})
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "sale retrieved", record)
}

func (h *FactoryHandler) DeactivateSale(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}
	id, ok := saleID(c)
	if !ok {
		return
	}

	txID, events, err := h.svc.Execute(from, nil, func(ctx state.TransactionContext) error {
		return h.svc.Factory().DeactivateSale(ctx, id)
	})
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	TxResponse(c, "sale deactivated", txID, events)
}

func saleID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid sale id"})
		return 0, false
	}
	return id, true
}
