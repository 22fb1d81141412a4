package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetSet(t *testing.T) {
	store := New(time.Minute)

	_, ok := store.Get("kpis|city=|category=")
	assert.False(t, ok)

	store.Set("kpis|city=|category=", 42)

	value, ok := store.Get("kpis|city=|category=")
	assert.True(t, ok)
	assert.Equal(t, 42, value)
}

func TestStore_Expiry(t *testing.T) {
	store := New(10 * time.Millisecond)

	store.Set("trend|city=Recife|category=", "serie")
	time.Sleep(20 * time.Millisecond)

	_, ok := store.Get("trend|city=Recife|category=")
	assert.False(t, ok)
}

func TestStore_SetSweepsExpiredEntries(t *testing.T) {
	store := New(10 * time.Millisecond)

	store.Set("a", 1)
	store.Set("b", 2)
	time.Sleep(20 * time.Millisecond)

	// A escrita remove as entradas expiradas de forma oportunista
	store.Set("c", 3)
	assert.Equal(t, 1, store.Len())
}

func TestStore_Clear(t *testing.T) {
	store := New(time.Minute)

	store.Set("a", 1)
	store.Set("b", 2)
	assert.Equal(t, 2, store.Len())

	store.Clear()
	assert.Equal(t, 0, store.Len())

	_, ok := store.Get("a")
	assert.False(t, ok)
}
