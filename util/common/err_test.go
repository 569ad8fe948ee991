package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	assert.NoError(t, Combine(nil, nil))

	first := errors.New("shutdown http")
	second := errors.New("close listener")
	err := Combine(first, nil, second)
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
}

func TestNewErrorf(t *testing.T) {
	assert.EqualError(t, NewErrorf("medicine %d not found", 7), "medicine 7 not found")
}

func TestRecover(t *testing.T) {
	var recovered any
	func() {
		defer func() { recovered = Recover("scan handler") }()
		panic("bad image")
	}()
	assert.Equal(t, "bad image", recovered)
}
