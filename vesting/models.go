package vesting

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/sideshiftai/basepulse-ido/state"
)

// Schedule is one beneficiary's release schedule: nothing before the cliff,
// then linear release over the remainder of the vest window.
type Schedule struct {
	Beneficiary   string `json:"beneficiary"`
	TotalAmount   string `json:"totalAmount"`
	StartTime     uint64 `json:"startTime"`
	CliffLength   uint64 `json:"cliffLength"`
	VestDuration  uint64 `json:"vestDuration"`
	ClaimedAmount string `json:"claimedAmount"`
	Revoked       bool   `json:"revoked"`
}

// UserSchedules is the per-beneficiary index of schedule ids.
type UserSchedules []uint64

func getSchedule(ctx state.TransactionContext, key string) (*Schedule, error) {
	scheduleAsBytes, err := ctx.GetState(key)
	if err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get schedule with Key %s", key), err)
	}
	if scheduleAsBytes == nil {
		return nil, nil
	}

	var schedule Schedule
	if err := json.Unmarshal(scheduleAsBytes, &schedule); err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, "failed to unmarshal schedule", err)
	}

	return &schedule, nil
}

func setSchedule(ctx state.TransactionContext, key string, schedule *Schedule) error {
	scheduleAsBytes, err := json.Marshal(schedule)
	if err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to marshal schedule", err)
	}

	if err := ctx.PutState(key, scheduleAsBytes); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set schedule", err)
	}

	return nil
}

func getUserSchedules(ctx state.TransactionContext, key string) (UserSchedules, error) {
	userSchedulesJSON, err := ctx.GetState(key)
	if err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get user schedules with Key %s", key), err)
	}
	if userSchedulesJSON == nil {
		return UserSchedules{}, nil
	}

	var userScheduleList UserSchedules
	if err := json.Unmarshal(userSchedulesJSON, &userScheduleList); err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to unmarshal user schedule list with Key %s", key), err)
	}

	return userScheduleList, nil
}

func setUserSchedules(ctx state.TransactionContext, key string, userScheduleList UserSchedules) error {
	updatedUserSchedulesJSON, err := json.Marshal(userScheduleList)
	if err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to marshal user schedule list", err)
	}

	if err := ctx.PutState(key, updatedUserSchedulesJSON); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set user schedule list", err)
	}

	return nil
}

func getCounter(ctx state.TransactionContext, key string) (uint64, error) {
	counterAsBytes, err := ctx.GetState(key)
	if err != nil {
		return 0, state.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get counter with Key %s", key), err)
	}
	if counterAsBytes == nil {
		return 0, nil
	}

	counter := new(big.Int)
	if _, ok := counter.SetString(string(counterAsBytes), 10); !ok {
		return 0, state.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to parse counter with Key %s", key), nil)
	}

	return counter.Uint64(), nil
}

func setCounter(ctx state.TransactionContext, key string, counter uint64) error {
	if err := ctx.PutState(key, []byte(new(big.Int).SetUint64(counter).String())); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set counter with Key %s", key), err)
	}
	return nil
}

func getTotalClaims(ctx state.TransactionContext, key string) (*big.Int, error) {
	totalClaimsAsBytes, err := ctx.GetState(key)
	if err != nil {
		return nil, state.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get total claims with Key %s", key), err)
	}

	totalClaims := big.NewInt(0)
	if totalClaimsAsBytes != nil {
		if _, ok := totalClaims.SetString(string(totalClaimsAsBytes), 10); !ok {
			return nil, state.NewCustomError(http.StatusInternalServerError, "failed to parse total claims", nil)
		}
	}

	return totalClaims, nil
}

func setTotalClaims(ctx state.TransactionContext, key string, totalClaims *big.Int) error {
	if err := ctx.PutState(key, []byte(totalClaims.String())); err != nil {
		return state.NewCustomError(http.StatusInternalServerError, "failed to set total claims", err)
	}
	return nil
}
