package gamecode

import (
	"crypto/rand"
	"math/big"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the number of characters in a game code
const Length = 5

// Generate returns a crypto-secure random game code of length n.
// Codes contain only the characters A-Z and 0-9 so they are easy to
// read out loud and type on a phone.
func Generate(n int) (string, error) {
	size := big.NewInt(int64(len(alphabet)))

	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}

		b[i] = alphabet[idx.Int64()]
	}

	return string(b), nil
}
