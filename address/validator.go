package address

import (
	"fmt"
	"strings"
)

// The base58 alphabet excludes 0, O, I, and l to avoid visual ambiguity.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	minLength = 32
	maxLength = 44
)

// InvalidAddressError describes a recipient address that is not a
// structurally valid Solana address.
type InvalidAddressError struct {
	Address string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid Solana address: '%s'", e.Address)
}

// Validate verifies that the given address is structurally a valid Solana
// address: base58-encoded and between 32 and 44 characters, inclusive.
// It makes no attempt to verify that the address actually exists on-chain.
func Validate(address string) error {
	if len(address) < minLength || len(address) > maxLength {
		return &InvalidAddressError{Address: address}
	}

	for _, character := range address {
		if !strings.ContainsRune(base58Alphabet, character) {
			return &InvalidAddressError{Address: address}
		}
	}

	return nil
}
