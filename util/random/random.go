// Package random generates random strings and numbers from crypto/rand.
package random

import (
	"crypto/rand"
	"math/big"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Seq returns a random alphanumeric string of length n.
func Seq(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[num(len(alphabet))]
	}
	return string(b)
}

// num returns a random integer in [0, n).
func num(n int) int {
	r, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return int(r.Int64())
}
