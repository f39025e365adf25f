package registry

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sideshiftai/basepulse-ido/state"
)

var (
	ErrUnauthorized = errors.New("Unauthorized")
)

func ErrSaleNotFound(id uint64) error {
	return state.NewCustomError(http.StatusNotFound, fmt.Sprintf("sale with id %d does not exist", id), nil)
}

func ErrInvalidAddress(address string) error {
	return state.NewCustomError(http.StatusBadRequest, fmt.Sprintf("invalid address %s", address), nil)
}
