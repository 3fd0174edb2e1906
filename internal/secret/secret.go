// internal/secret/secret.go
package secret

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// alphabet keeps generated values paste-safe for any env consumer:
// no quoting, no escaping, no shell metacharacters.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generator produces random strings for generated defaults.
type Generator interface {
	Generate(length int) string
}

type CryptoGenerator struct{}

func NewCryptoGenerator() *CryptoGenerator {
	return &CryptoGenerator{}
}

func (g *CryptoGenerator) Generate(length int) string {
	// lengths are validated at parse time, a non-positive one is a bug
	if length <= 0 {
		panic(fmt.Sprintf("secret: non-positive length %d", length))
	}
	size := big.NewInt(int64(len(alphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			panic(fmt.Sprintf("secret: random source unavailable: %v", err))
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b)
}
