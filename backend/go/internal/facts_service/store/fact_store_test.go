package store

import (
	"testing"

	"DevOpsFacts/backend/go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultStore(t *testing.T) {
	s := NewDefaultStore()

	require.Equal(t, 10, s.Len())
	first, ok := s.At(0)
	require.True(t, ok)
	assert.Equal(t, models.Fact("DevOps is a combination of development and operations."), first)
	last, ok := s.At(9)
	require.True(t, ok)
	assert.Equal(t, models.Fact("DevOps bridges the gap between developers and IT operations."), last)
}

func TestNewStore_RejectsEmpty(t *testing.T) {
	_, err := NewStore(nil)
	assert.ErrorIs(t, err, ErrEmptyStore)
}

func TestFactStore_AtOutOfRange(t *testing.T) {
	s := NewDefaultStore()
	for _, i := range []int{-1, 10, 100} {
		_, ok := s.At(i)
		assert.False(t, ok, "index %d", i)
	}
}

func TestFactStore_IsolatedFromCallers(t *testing.T) {
	src := []models.Fact{"a", "b"}
	s, err := NewStore(src)
	require.NoError(t, err)

	src[0] = "mutated"
	all := s.All()
	all[1] = "mutated"

	assert.Equal(t, []models.Fact{"a", "b"}, s.All())
	assert.False(t, s.Contains("mutated"))
	assert.True(t, s.Contains("a"))
}
