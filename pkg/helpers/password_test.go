package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptAdapter_HashAndCompare(t *testing.T) {
	b := NewBcryptAdapter(bcrypt.MinCost)

	hash, err := b.Hash("_any_value")
	require.NoError(t, err)
	assert.NotEqual(t, "_any_value", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	ok, err := b.Compare("_any_value", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptAdapter_CompareMismatch(t *testing.T) {
	b := NewBcryptAdapter(bcrypt.MinCost)
	hash, err := b.Hash("_any_value")
	require.NoError(t, err)

	ok, err := b.Compare("_other_value", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptAdapter_CompareMalformedHash(t *testing.T) {
	b := NewBcryptAdapter(bcrypt.MinCost)

	ok, err := b.Compare("_any_value", "_invalid_hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewBcryptAdapter_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptAdapter(0).Cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptAdapter(99).Cost)
	assert.Equal(t, 12, NewBcryptAdapter(12).Cost)
}
