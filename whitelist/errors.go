package whitelist

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTier  = errors.New("InvalidTier")
	ErrUnauthorized = errors.New("Unauthorized")
)

func ErrInvalidAddress(address string) error {
	return fmt.Errorf("InvalidUserAddress: %s", address)
}

func ErrInvalidRoot(root string) error {
	return fmt.Errorf("InvalidMerkleRoot: %s", root)
}
