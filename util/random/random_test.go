package random

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestSeq(t *testing.T) {
	s := Seq(32)
	assert.Len(t, s, 32)
	for _, r := range s {
		assert.True(t, unicode.IsLetter(r) || unicode.IsDigit(r), "unexpected rune %q", r)
	}
	assert.NotEqual(t, s, Seq(32))
}

func TestNum(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := num(5)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 5)
	}
}
