package token

import (
	"crypto/rand"
	"math/big"
)

// alphabet leaves out characters that are easily confused when read
// aloud at a table (0/O, 1/I/L)
const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// Generate returns a crypto-secure random join code of length n
func Generate(n int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))

	code := make([]byte, n)
	for i := range code {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}

		code[i] = alphabet[v.Int64()]
	}

	return string(code), nil
}
