package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sideshiftai/basepulse-ido/internal/service"
	"github.com/sideshiftai/basepulse-ido/state"
	"github.com/sideshiftai/basepulse-ido/vesting"
)

type VestingHandler struct {
	svc *service.Service
}

func NewVestingHandler(svc *service.Service) *VestingHandler {
	return &VestingHandler{svc: svc}
}

func (h *VestingHandler) withLedger(c *gin.Context, from string, fn func(ctx state.TransactionContext, ledger *vesting.Ledger) error) (string, []state.Event, error) {
	id, ok := saleID(c)
	if !ok {
		return "", nil, errHandled
	}
	return h.svc.Execute(from, nil, func(ctx state.TransactionContext) error {
		ledger, err := h.svc.Factory().VestingLedger(ctx, id)
		if err != nil {
			return err
		}
		return fn(ctx, ledger)
	})
}

func (h *VestingHandler) queryLedger(c *gin.Context, fn func(ctx state.TransactionContext, ledger *vesting.Ledger) error) error {
	id, ok := saleID(c)
	if !ok {
		return errHandled
	}
	return h.svc.Query(c.GetHeader("X-Sender"), func(ctx state.TransactionContext) error {
		ledger, err := h.svc.Factory().VestingLedger(ctx, id)
		if err != nil {
			return err
		}
		return fn(ctx, ledger)
	})
}

type CreateScheduleRequest struct {
	Beneficiary  string `json:"beneficiary" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
	StartTime    uint64 `json:"startTime" binding:"required"`
	CliffLength  uint64 `json:"cliffLength"`
	VestDuration uint64 `json:"vestDuration" binding:"required"`
}

func (h *VestingHandler) CreateSchedule(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, err)
		return
	}

	var scheduleID uint64
	txID, _, err := h.withLedger(c, from, func(ctx state.TransactionContext, ledger *vesting.Ledger) error {
		var err error
		scheduleID, err = ledger.CreateSchedule(ctx, req.Beneficiary, req.Amount, req.StartTime, req.CliffLength, req.VestDuration)
		return err
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{Success: true, Message: "schedule created", TxID: txID, Data: gin.H{"scheduleId": scheduleID}})
}

type CreateScheduleBatchRequest struct {
	Beneficiaries []string `json:"beneficiaries" binding:"required"`
	Amounts       []string `json:"amounts" binding:"required"`
	StartTime     uint64   `json:"startTime" binding:"required"`
	CliffLength   uint64   `json:"cliffLength"`
	VestDuration  uint64   `json:"vestDuration" binding:"required"`
}

func (h *VestingHandler) CreateScheduleBatch(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}

	var req CreateScheduleBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, err)
		return
	}

	var scheduleIDs []uint64
	txID, _, err := h.withLedger(c, from, func(ctx state.TransactionContext, ledger *vesting.Ledger) error {
		var err error
		scheduleIDs, err = ledger.CreateScheduleBatch(ctx, req.Beneficiaries, req.Amounts, req.StartTime, req.CliffLength, req.VestDuration)
		return err
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{Success: true, Message: "schedules created", TxID: txID, Data: gin.H{"scheduleIds": scheduleIDs}})
}

func (h *VestingHandler) Claim(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}
	scheduleID, ok := scheduleID(c)
	if !ok {
		return
	}

	txID, events, err := h.withLedger(c, from, func(ctx state.TransactionContext, ledger *vesting.Ledger) error {
		return ledger.Claim(ctx, scheduleID)
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	TxResponse(c, "tokens claimed", txID, events)
}

func (h *VestingHandler) Revoke(c *gin.Context) {
	from, ok := sender(c)
	if !ok {
		return
	}
	scheduleID, ok := scheduleID(c)
	if !ok {
		return
	}

	txID, events, err := h.withLedger(c, from, func(ctx state.TransactionContext, ledger *vesting.Ledger) error {
		return ledger.Revoke(ctx, scheduleID)
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	TxResponse(c, "schedule revoked", txID, events)
}

func (h *VestingHandler) GetSchedule(c *gin.Context) {
	scheduleID, ok := scheduleID(c)
	if !ok {
		return
	}

	var schedule *vesting.Schedule
	err := h.queryLedger(c, func(ctx state.TransactionContext, ledger *vesting.Ledger) error {
		var err error
		schedule, err = ledger.GetSchedule(ctx, scheduleID)
		return err
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "schedule retrieved", schedule)
}

func (h *VestingHandler) GetClaimableAmount(c *gin.Context) {
	scheduleID, ok := scheduleID(c)
	if !ok {
		return
	}

	var claimable string
	err := h.queryLedger(c, func(ctx state.TransactionContext, ledger *vesting.Ledger) error {
		amount, err := ledger.GetClaimableAmount(ctx, scheduleID)
		if err != nil {
			return err
		}
		claimable = amount.String()
		return nil
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "claimable amount retrieved", gin.H{"claimable": claimable})
}

func (h *VestingHandler) GetUserSchedules(c *gin.Context) {
	address := c.Param("address")

	var ids []uint64
	err := h.queryLedger(c, func(ctx state.TransactionContext, ledger *vesting.Ledger) error {
		var err error
		ids, err = ledger.GetUserScheduleIds(ctx, address)
		return err
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "schedules retrieved", gin.H{"scheduleIds": ids})
}

func (h *VestingHandler) GetTotalClaims(c *gin.Context) {
	var total string
	err := h.queryLedger(c, func(ctx state.TransactionContext, ledger *vesting.Ledger) error {
		amount, err := ledger.GetTotalClaims(ctx)
		if err != nil {
			return err
		}
		total = amount.String()
		return nil
	})
	if err != nil {
		respondUnlessHandled(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "total claims retrieved", gin.H{"totalClaims": total})
}

func scheduleID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("sid"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid schedule id"})
		return 0, false
	}
	return id, true
}
