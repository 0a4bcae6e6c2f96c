package bcrypt

import (
	"testing"

	"microblog-service/internal/custom_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("cat")
	require.NoError(t, err)
	assert.NotEqual(t, "cat", hash)

	assert.NoError(t, h.Compare(hash, "cat"))
	assert.ErrorIs(t, h.Compare(hash, "dog"), custom_errors.ErrInvalidCredentials)
}

func TestNewHasher_OutOfRangeCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(99).cost)
}
