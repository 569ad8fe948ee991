package caching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationRoundTrip(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.Init())

	_, ok := c.GetTranslation("hi", "Nausea, rash")
	assert.False(t, ok)

	c.SetTranslation("hi", "Nausea, rash", "मतली, दाने")
	got, ok := c.GetTranslation("hi", "Nausea, rash")
	assert.True(t, ok)
	assert.Equal(t, "मतली, दाने", got)

	_, ok = c.GetTranslation("fr", "Nausea, rash")
	assert.False(t, ok, "entries are keyed by target language")
	assert.Equal(t, 1, c.ItemCount())
}

func TestClearKeepsCacheUsable(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.Init())
	c.SetTranslation("hi", "a", "b")

	c.Clear()
	assert.Equal(t, 0, c.ItemCount())

	c.SetTranslation("hi", "a", "b")
	assert.Equal(t, 1, c.ItemCount())
}

func TestFlushDetachesStore(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.Init())
	c.SetTranslation("hi", "a", "b")
	require.NoError(t, c.Flush())

	assert.Equal(t, 0, c.ItemCount())
	c.SetTranslation("hi", "a", "b")
	_, ok := c.GetTranslation("hi", "a")
	assert.False(t, ok)
}

func TestUninitialisedCacheIsNoop(t *testing.T) {
	c := NewCache()
	c.SetTranslation("hi", "a", "b")
	_, ok := c.GetTranslation("hi", "a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.ItemCount())
}
