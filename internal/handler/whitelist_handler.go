package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sideshiftai/basepulse-ido/internal/service"
	"github.com/sideshiftai/basepulse-ido/state"
	"github.com/sideshiftai/basepulse-ido/whitelist"
)

type WhitelistHandler struct {
	svc *service.Service
}

func NewWhitelistHandler(svc *service.Service) *WhitelistHandler {
	return &WhitelistHandler{svc: svc}
}

func (h *WhitelistHandler) withGate(c *gin.Context, from string, fn func(ctx state.TransactionContext, gate *whitelist.Gate) error) (string, []state.Event, error) {
	id, ok := saleID(c)
	if !ok {
		return "", nil, errHandled
	}
	return h.svc.Execute(from, nil, func(ctx state.TransactionContext) error {
		gate, err := h.svc.Factory().WhitelistGate(ctx, id)
		if err != nil {
			return err
		}
		return fn(ctx, gate)
	})
}

func (h *WhitelistHandler) queryGate(c *gin.Context, fn func(ctx state.TransactionContext, gate *whitelist.Gate) error) error {
	id, ok := saleID(c)
	if !ok {
		return errHandled
	}
	return h.svc.Query(c.GetHeader("X-Sender"), func(ctx state.TransactionContext) error {
		gate, err := h.svc.Factory().WhitelistGate(ctx, id)
		if err != nil {
			return err
		}
		return fn(ctx, gate)
	})
}

type SetMerkleRootRequest struct {
	Root string `json:"root" binding:"required"`
}

func (h *WhitelistHandler) SetMerkleRoot(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}

	var req SetMerkleRootRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, err)
		return
	}

	txID, events, err := h.withGate(c, from, func(ctx state.TransactionContext, gate *whitelist.Gate) error {
		return gate.SetMerkleRoot(ctx, req.Root)
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	TxResponse(c, "merkle root updated", txID, events)
}

type SetManualWhitelistRequest struct {
	Accounts []string `json:"accounts" binding:"required"`
	Tier     uint8    `json:"tier" binding:"required"`
	Allowed  *bool    `json:"allowed" binding:"required"`
}

func (h *WhitelistHandler) SetManualWhitelist(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}

	var req SetManualWhitelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, err)
		return
	}

	txID, events, err := h.withGate(c, from, func(ctx state.TransactionContext, gate *whitelist.Gate) error {
		if len(req.Accounts) == 1 {
			return gate.SetManualWhitelist(ctx, req.Accounts[0], req.Tier, *req.Allowed)
		}
		return gate.SetManualWhitelistBatch(ctx, req.Accounts, req.Tier, *req.Allowed)
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	TxResponse(c, "manual whitelist updated", txID, events)
}

type SetWhitelistEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *WhitelistHandler) SetWhitelistEnabled(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}

	var req SetWhitelistEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, err)
		return
	}

	txID, events, err := h.withGate(c, from, func(ctx state.TransactionContext, gate *whitelist.Gate) error {
		return gate.SetWhitelistEnabled(ctx, *req.Enabled)
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	TxResponse(c, "whitelist status updated", txID, events)
}

func (h *WhitelistHandler) GetWhitelistInfo(c *gin.Context) {
	address := c.Param("address")
	tier, err := strconv.ParseUint(c.Query("tier"), 10, 8)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid tier"})
		return
	}
	proof := c.QueryArray("proof")

	var info *whitelist.WhitelistInfo
	queryErr := h.queryGate(c, func(ctx state.TransactionContext, gate *whitelist.Gate) error {
		var err error
		info, err = gate.GetWhitelistInfo(ctx, address, uint8(tier), proof)
		return err
	})
	if queryErr != nil {
		respondUnlessHandled(c, queryErr)
		return
	}

	SuccessResponse(c, http.StatusOK, "whitelist info retrieved", info)
}

func (h *WhitelistHandler) GetManualWhitelistStatus(c *gin.Context) {
	address := c.Param("address")

	var status []bool
	err := h.queryGate(c, func(ctx state.TransactionContext, gate *whitelist.Gate) error {
		var err error
		status, err = gate.GetManualWhitelistStatus(ctx, address)
		return err
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "manual whitelist status retrieved", gin.H{"tiers": status})
}

func (h *WhitelistHandler) GetWhitelistState(c *gin.Context) {
	var result *whitelist.State
	err := h.queryGate(c, func(ctx state.TransactionContext, gate *whitelist.Gate) error {
		var err error
		result, err = gate.GetState(ctx)
		return err
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "whitelist state retrieved", result)
}
