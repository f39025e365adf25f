package vesting

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized   = errors.New("Unauthorized")
	ErrNothingToClaim = errors.New("NothingToClaim")
	ErrAlreadyRevoked = errors.New("AlreadyRevoked")
	ErrInvalidConfig  = errors.New("InvalidConfig")
)

func ErrScheduleNotFound(scheduleID uint64) error {
	return fmt.Errorf("ScheduleNotFound: %d", scheduleID)
}

func ErrInvalidAmount(entity, value string) error {
	return fmt.Errorf("InvalidAmount for %s with value %s", entity, value)
}

func ErrArraysLengthMismatch(length1, length2 int) error {
	return fmt.Errorf("ArraysLengthMismatch: length1: %d, length2: %d", length1, length2)
}

func ErrZeroVestingAmount(beneficiary string) error {
	return fmt.Errorf("ZeroVestingAmount for beneficiary: %s", beneficiary)
}
