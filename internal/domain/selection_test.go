package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelection(t *testing.T) {
	for _, count := range []int{1, 2, 3, 4} {
		s, err := NewSelection(count)

		require.NoError(t, err)
		assert.Equal(t, count, s.Max())
	}

	for _, count := range []int{0, -1, 5} {
		_, err := NewSelection(count)

		assert.ErrorIs(t, err, ErrInvalidSeatCount)
	}
}

func TestSelectionAdd(t *testing.T) {
	s, err := NewSelection(2)
	require.NoError(t, err)

	require.NoError(t, s.Add("A1"))
	require.NoError(t, s.Add("A2"))

	assert.ErrorIs(t, s.Add("A1"), ErrSeatAlreadySelected)
	assert.ErrorIs(t, s.Add("A3"), ErrSelectionFull)

	assert.True(t, s.Complete())
	assert.Equal(t, []string{"A1", "A2"}, s.Seats())
}

func TestSelectionRemove(t *testing.T) {
	s, err := NewSelection(3)
	require.NoError(t, err)

	require.NoError(t, s.Add("A1"))
	require.NoError(t, s.Add("B1"))
	require.NoError(t, s.Add("C1"))

	require.NoError(t, s.Remove("B1"))

	assert.Equal(t, []string{"A1", "C1"}, s.Seats())
	assert.False(t, s.Complete())
	assert.ErrorIs(t, s.Remove("B1"), ErrSeatNotSelected)

	// freed capacity can be reused
	require.NoError(t, s.Add("D1"))
	assert.True(t, s.Complete())
}
