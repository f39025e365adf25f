package sale

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig     = errors.New("InvalidConfig")
	ErrInvalidTier       = errors.New("InvalidTier")
	ErrBelowMinimum      = errors.New("BelowMinimum")
	ErrUnauthorized      = errors.New("Unauthorized")
	ErrSalePaused        = errors.New("SalePaused")
	ErrSaleFinalized     = errors.New("SaleFinalized")
	ErrAlreadyFinalized  = errors.New("AlreadyFinalized")
	ErrTierInactive      = errors.New("TierInactive")
	ErrTierAlreadySold   = errors.New("TierAlreadySold")
	ErrExceedsWalletCap  = errors.New("ExceedsWalletCap")
	ErrExceedsTierCap    = errors.New("ExceedsTierCap")
	ErrExceedsHardCap    = errors.New("ExceedsHardCap")
	ErrGasPriceTooHigh   = errors.New("GasPriceTooHigh")
	ErrNotWhitelisted    = errors.New("NotWhitelisted")
	ErrNothingToClaim    = errors.New("NothingToClaim")
	ErrNothingToWithdraw = errors.New("NothingToWithdraw")
)

func ErrInvalidAmount(entity, value string) error {
	return fmt.Errorf("InvalidAmount for %s with value %s", entity, value)
}
