package utils

import (
	"crypto/rand"
	"math/big"
)

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateCode returns a random uppercase alphanumeric code of n characters,
// used for pickup verification codes and declaration tracking-ID suffixes.
func GenerateCode(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing is unrecoverable for our purposes
			panic(err)
		}
		out[i] = codeAlphabet[idx.Int64()]
	}
	return string(out)
}
