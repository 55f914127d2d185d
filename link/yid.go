package link

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const yidAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

const (
	// DefaultYIDLength is the length of generated tracking identifiers.
	DefaultYIDLength = 10
	// TrackedYIDRandomLength is the length of the random portion of a
	// tracking identifier that carries a caller-supplied prefix.
	TrackedYIDRandomLength = 8
)

// GenerateYID generates a random tracking identifier of the given
// length, drawn uniformly from lowercase letters and digits. Uniqueness
// is probabilistic, not guaranteed; at these lengths, collisions are
// negligible for the correlation purposes the identifier serves.
func GenerateYID(length int) (string, error) {
	alphabetSize := big.NewInt(int64(len(yidAlphabet)))

	characters := make([]byte, length)
	for i := range characters {
		index, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to read randomness for tracking identifier: %w", err)
		}

		characters[i] = yidAlphabet[index.Int64()]
	}

	return string(characters), nil
}
