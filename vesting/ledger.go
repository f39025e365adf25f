package vesting

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/sideshiftai/basepulse-ido/fixedpoint"
	"github.com/sideshiftai/basepulse-ido/state"
)

// Ledger owns the release schedules of one campaign. Schedules are keyed by
// an opaque incrementing id, so a beneficiary may hold several.
type Ledger struct {
	handle string
}

func New(handle string) *Ledger {
	return &Ledger{handle: handle}
}

func (v *Ledger) Handle() string {
	return v.handle
}

func (v *Ledger) ownerKey() string {
	return fmt.Sprintf("vestingowner_%s", v.handle)
}

func (v *Ledger) authorizedKey() string {
	return fmt.Sprintf("vestingauthorized_%s", v.handle)
}

func (v *Ledger) scheduleKey(scheduleID uint64) string {
	return fmt.Sprintf("schedule_%s_%d", v.handle, scheduleID)
}

func (v *Ledger) counterKey() string {
	return fmt.Sprintf("schedulecount_%s", v.handle)
}

func (v *Ledger) userSchedulesKey(beneficiary string) string {
	return fmt.Sprintf("userschedules_%s_%s", v.handle, beneficiary)
}

func (v *Ledger) totalClaimsKey() string {
	return fmt.Sprintf("totalclaims_%s", v.handle)
}

// Initialize seeds ownership. Called once by the factory.
func (v *Ledger) Initialize(ctx state.TransactionContext, owner string) error {
	owner, err := state.NormalizeAddress(owner)
	if err != nil {
		return state.NewCustomError(http.StatusBadRequest, "invalid owner address", err)
	}

	existing, err := ctx.GetState(v.ownerKey())
	if err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to get vesting owner", err)
	}
	if existing != nil {
		return state.NewCustomError(http.StatusConflict, fmt.Sprintf("vesting ledger %s is already initialized", v.handle), nil)
	}

	if err := ctx.PutState(v.ownerKey(), []byte(owner)); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set vesting owner", err)
	}

	return nil
}

// SetAuthorizedCaller stores the capability that lets the sale ledger open
// schedules when participants claim their initial unlock. Owner only.
func (v *Ledger) SetAuthorizedCaller(ctx state.TransactionContext, caller string) error {
	if err := v.requireOwner(ctx); err != nil {
		return err
	}
	if caller == "" {
		return ErrInvalidConfig
	}
	if err := ctx.PutState(v.authorizedKey(), []byte(caller)); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set authorized caller", err)
	}
	return nil
}

func (v *Ledger) requireOwner(ctx state.TransactionContext) error {
	signer, err := state.Sender(ctx)
	if err != nil {
		return state.NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	owner, err := ctx.GetState(v.ownerKey())
	if err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to get vesting owner", err)
	}
	if owner == nil || signer != string(owner) {
		return ErrUnauthorized
	}

	return nil
}

func (v *Ledger) isAuthorizedCaller(ctx state.TransactionContext, caller string) (bool, error) {
	owner, err := ctx.GetState(v.ownerKey())
	if err != nil {
		return false, state.NewCustomError(http.StatusInternalServerError, "failed to get vesting owner", err)
	}
	if owner != nil && caller == string(owner) {
		return true, nil
	}

	authorized, err := ctx.GetState(v.authorizedKey())
	if err != nil {
		return false, state.NewCustomError(http.StatusInternalServerError, "failed to get authorized caller", err)
	}
	return authorized != nil && caller == string(authorized), nil
}

// CreateSchedule opens a schedule on behalf of the transaction signer, who
// must be the ledger owner. Returns the new schedule id.
func (v *Ledger) CreateSchedule(ctx state.TransactionContext, beneficiary, amount string, startTime, cliffLength, vestDuration uint64) (uint64, error) {
	signer, err := state.Sender(ctx)
	if err != nil {
		return 0, state.NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}
	return v.CreateScheduleFrom(ctx, signer, beneficiary, amount, startTime, cliffLength, vestDuration)
}

// CreateScheduleFrom opens a schedule with an explicit caller capability: the
// ledger owner or the authorized sale ledger handle. The sale ledger uses
// this path when settling initial unlocks.
func (v *Ledger) CreateScheduleFrom(ctx state.TransactionContext, caller, beneficiary, amount string, startTime, cliffLength, vestDuration uint64) (uint64, error) {
	authorized, err := v.isAuthorizedCaller(ctx, caller)
	if err != nil {
		return 0, err
	}
	if !authorized {
		return 0, ErrUnauthorized
	}
	return v.createSchedule(ctx, beneficiary, amount, startTime, cliffLength, vestDuration)
}

// CreateScheduleBatch opens one schedule per beneficiary with shared window
// parameters. Per-entry validation runs before anything persists, so the
// batch is all-or-nothing.
func (v *Ledger) CreateScheduleBatch(ctx state.TransactionContext, beneficiaries, amounts []string, startTime, cliffLength, vestDuration uint64) ([]uint64, error) {
	if err := v.requireOwner(ctx); err != nil {
		return nil, err
	}
	if len(beneficiaries) != len(amounts) {
		return nil, ErrArraysLengthMismatch(len(beneficiaries), len(amounts))
	}
	if len(beneficiaries) == 0 {
		return nil, ErrInvalidConfig
	}

	for i, beneficiary := range beneficiaries {
		if _, err := state.NormalizeAddress(beneficiary); err != nil {
			return nil, err
		}
		amount, err := fixedpoint.Parse(amounts[i])
		if err != nil {
			return nil, ErrInvalidAmount("beneficiary", beneficiaries[i])
		}
		if amount.Sign() <= 0 {
			return nil, ErrZeroVestingAmount(beneficiary)
		}
	}

	scheduleIDs := make([]uint64, len(beneficiaries))
	for i := range beneficiaries {
		scheduleID, err := v.createSchedule(ctx, beneficiaries[i], amounts[i], startTime, cliffLength, vestDuration)
		if err != nil {
			return nil, err
		}
		scheduleIDs[i] = scheduleID
	}

	return scheduleIDs, nil
}

func (v *Ledger) createSchedule(ctx state.TransactionContext, beneficiary, amount string, startTime, cliffLength, vestDuration uint64) (uint64, error) {
	beneficiary, err := state.NormalizeAddress(beneficiary)
	if err != nil {
		return 0, state.NewCustomError(http.StatusBadRequest, "invalid beneficiary address", err)
	}

	total, err := fixedpoint.Parse(amount)
	if err != nil {
		return 0, ErrInvalidAmount("beneficiary", beneficiary)
	}
	if total.Sign() <= 0 {
		return 0, ErrZeroVestingAmount(beneficiary)
	}
	if vestDuration == 0 || cliffLength > vestDuration {
		return 0, ErrInvalidConfig
	}

	counter, err := getCounter(ctx, v.counterKey())
	if err != nil {
		return 0, err
	}
	scheduleID := counter + 1

	if err := setCounter(ctx, v.counterKey(), scheduleID); err != nil {
		return 0, err
	}

	schedule := &Schedule{
		Beneficiary:   beneficiary,
		TotalAmount:   total.String(),
		StartTime:     startTime,
		CliffLength:   cliffLength,
		VestDuration:  vestDuration,
		ClaimedAmount: "0",
	}
	if err := setSchedule(ctx, v.scheduleKey(scheduleID), schedule); err != nil {
		return 0, err
	}

	userScheduleList, err := getUserSchedules(ctx, v.userSchedulesKey(beneficiary))
	if err != nil {
		return 0, err
	}
	userScheduleList = append(userScheduleList, scheduleID)
	if err := setUserSchedules(ctx, v.userSchedulesKey(beneficiary), userScheduleList); err != nil {
		return 0, err
	}

	if err := emitEvent(ctx, "VestingScheduleCreated", VestingScheduleCreatedEvent{
		Ledger:       v.handle,
		ScheduleID:   scheduleID,
		Beneficiary:  beneficiary,
		TotalAmount:  schedule.TotalAmount,
		StartTime:    startTime,
		CliffLength:  cliffLength,
		VestDuration: vestDuration,
	}); err != nil {
		return 0, err
	}

	return scheduleID, nil
}

// VestedAmount is the deterministic release curve: zero before the cliff,
// everything at the end of the vest window, and a linear interpolation over
// the post-cliff interval in between.
func VestedAmount(schedule *Schedule, now uint64) (*big.Int, error) {
	total, err := fixedpoint.Parse(schedule.TotalAmount)
	if err != nil {
		return nil, ErrInvalidAmount("schedule", schedule.TotalAmount)
	}

	if now < schedule.StartTime+schedule.CliffLength {
		return big.NewInt(0), nil
	}
	if now >= schedule.StartTime+schedule.VestDuration {
		return total, nil
	}

	elapsed := new(big.Int).SetUint64(now - schedule.StartTime - schedule.CliffLength)
	span := new(big.Int).SetUint64(schedule.VestDuration - schedule.CliffLength)
	vested := new(big.Int).Mul(total, elapsed)
	return vested.Div(vested, span), nil
}

// ClaimableAmount is the vested-but-unclaimed balance at the given time.
// Revoked schedules compute against their truncated total; Claim still
// refuses to pay them.
func ClaimableAmount(schedule *Schedule, now uint64) (*big.Int, error) {
	vested, err := VestedAmount(schedule, now)
	if err != nil {
		return nil, err
	}

	claimed, err := fixedpoint.Parse(schedule.ClaimedAmount)
	if err != nil {
		return nil, ErrInvalidAmount("schedule", schedule.ClaimedAmount)
	}

	claimable := new(big.Int).Sub(vested, claimed)
	if claimable.Sign() < 0 {
		return big.NewInt(0), nil
	}
	return claimable, nil
}

// Claim pays out the signer's vested balance on one schedule. Revocation is a
// hard stop: once revoked, no claim succeeds regardless of any remaining
// computed balance.
func (v *Ledger) Claim(ctx state.TransactionContext, scheduleID uint64) error {
	signer, err := state.Sender(ctx)
	if err != nil {
		return state.NewCustomError(http.StatusBadRequest, "failed to get client id", err)
	}

	schedule, err := getSchedule(ctx, v.scheduleKey(scheduleID))
	if err != nil {
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound(scheduleID)
	}
	if signer != schedule.Beneficiary {
		return ErrUnauthorized
	}
	if schedule.Revoked {
		return ErrAlreadyRevoked
	}

	now := ctx.GetTxTimestamp()
	claimable, err := ClaimableAmount(schedule, now)
	if err != nil {
		return err
	}
	if claimable.Sign() <= 0 {
		return ErrNothingToClaim
	}

	claimed, err := fixedpoint.Parse(schedule.ClaimedAmount)
	if err != nil {
		return ErrInvalidAmount("schedule", schedule.ClaimedAmount)
	}
	claimed.Add(claimed, claimable)
	schedule.ClaimedAmount = claimed.String()

	if err := setSchedule(ctx, v.scheduleKey(scheduleID), schedule); err != nil {
		return err
	}

	totalClaims, err := getTotalClaims(ctx, v.totalClaimsKey())
	if err != nil {
		return err
	}
	totalClaims.Add(totalClaims, claimable)
	if err := setTotalClaims(ctx, v.totalClaimsKey(), totalClaims); err != nil {
		return err
	}

	// Bookkeeping is committed before any external transfer happens; the
	// event is the instruction to the settlement collaborator.
	return emitEvent(ctx, "TokensClaimed", TokensClaimedEvent{
		Ledger:        v.handle,
		ScheduleID:    scheduleID,
		Beneficiary:   schedule.Beneficiary,
		Amount:        claimable.String(),
		ClaimedAmount: schedule.ClaimedAmount,
		TotalClaims:   totalClaims.String(),
	})
}

// Revoke freezes a schedule's entitlement at the amount vested so far and
// blocks all further claims. Owner only; revoking twice is rejected.
func (v *Ledger) Revoke(ctx state.TransactionContext, scheduleID uint64) error {
	if err := v.requireOwner(ctx); err != nil {
		return err
	}

	schedule, err := getSchedule(ctx, v.scheduleKey(scheduleID))
	if err != nil {
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound(scheduleID)
	}
	if schedule.Revoked {
		return ErrAlreadyRevoked
	}

	vested, err := VestedAmount(schedule, ctx.GetTxTimestamp())
	if err != nil {
		return err
	}

	schedule.TotalAmount = vested.String()
	schedule.Revoked = true
	if err := setSchedule(ctx, v.scheduleKey(scheduleID), schedule); err != nil {
		return err
	}

	return emitEvent(ctx, "VestingRevoked", VestingRevokedEvent{
		Ledger:      v.handle,
		ScheduleID:  scheduleID,
		Beneficiary: schedule.Beneficiary,
		TotalAmount: schedule.TotalAmount,
	})
}

// GetSchedule returns one schedule by id.
func (v *Ledger) GetSchedule(ctx state.TransactionContext, scheduleID uint64) (*Schedule, error) {
	schedule, err := getSchedule(ctx, v.scheduleKey(scheduleID))
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound(scheduleID)
	}
	return schedule, nil
}

// GetClaimableAmount computes a schedule's claimable balance at the current
// transaction time.
func (v *Ledger) GetClaimableAmount(ctx state.TransactionContext, scheduleID uint64) (*big.Int, error) {
	schedule, err := v.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	return ClaimableAmount(schedule, ctx.GetTxTimestamp())
}

// GetUserScheduleIds lists the schedule ids held by a beneficiary.
func (v *Ledger) GetUserScheduleIds(ctx state.TransactionContext, beneficiary string) ([]uint64, error) {
	beneficiary, err := state.NormalizeAddress(beneficiary)
	if err != nil {
		return nil, state.NewCustomError(http.StatusBadRequest, "invalid beneficiary address", err)
	}
	return getUserSchedules(ctx, v.userSchedulesKey(beneficiary))
}

// GetTotalClaims returns the running total paid out by this ledger.
func (v *Ledger) GetTotalClaims(ctx state.TransactionContext) (*big.Int, error) {
	return getTotalClaims(ctx, v.totalClaimsKey())
}
