package state

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ZeroAddress is the null participant address.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// Sender resolves and validates the caller identity captured on the context.
func Sender(ctx TransactionContext) (string, error) {
	sender := ctx.GetSender()
	return NormalizeAddress(sender)
}

// NormalizeAddress validates a hex address and lowers its case so state keys
// are canonical.
func NormalizeAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("InvalidUserAddress: %s", address)
	}
	return strings.ToLower(common.HexToAddress(address).Hex()), nil
}

// IsZeroAddress reports whether address is empty or the null address.
func IsZeroAddress(address string) bool {
	return address == "" || strings.EqualFold(address, ZeroAddress)
}
