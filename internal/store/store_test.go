package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetMissing(t *testing.T) {
	m := NewMemory()
	_, err := m.Get("resumeData")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_SetOverwritesAndClear(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Set("k", "one"))
	require.NoError(t, m.Set("k", "two"))

	v, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "two", v)

	require.NoError(t, m.Clear())
	_, err = m.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_FailWrites(t *testing.T) {
	quota := errors.New("quota exceeded")
	m := NewMemory()
	m.FailWrites = quota

	err := m.Set("k", "v")
	assert.ErrorIs(t, err, quota)
	_, err = m.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)
}
