package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSetReplaces(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Set(1, 10, 2))
	require.NoError(t, s.Set(1, 10, 5))

	entries, err := s.Entries(1)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{10: 5}, entries)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Set(1, 10, 2))
	require.NoError(t, s.Delete(1, 10))

	entries, err := s.Entries(1)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Deleting a missing entry is a no-op.
	require.NoError(t, s.Delete(1, 99))
	require.NoError(t, s.Delete(42, 10))
}

func TestMemoryStoreUserIsolation(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Set(1, 10, 2))
	require.NoError(t, s.Set(2, 10, 7))
	require.NoError(t, s.Set(2, 11, 1))

	require.NoError(t, s.ClearUser(2))

	entries, err := s.Entries(1)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{10: 2}, entries)

	entries, err = s.Entries(2)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMemoryStoreEntriesReturnsCopy(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Set(1, 10, 2))

	entries, err := s.Entries(1)
	require.NoError(t, err)
	entries[10] = 99
	entries[11] = 1

	fresh, err := s.Entries(1)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{10: 2}, fresh)
}
