package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_SaltsEveryHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("secret1")
	require.NoError(t, err)
	second, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("secret1", first))
	assert.True(t, h.Verify("secret1", second))
	assert.False(t, h.Verify("secret2", first))
	assert.False(t, h.Verify("secret2", second))
	assert.False(t, h.Verify("", first))
}

func TestHasher_MalformedHashIsFalse(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	for _, hash := range []string{"", "plain", "$2a$", "$2a$99$abcdefghijklmnopqrstuv"} {
		assert.NotPanics(t, func() {
			assert.False(t, h.Verify("secret1", hash))
		})
	}
}

func TestHasher_RejectsOverlongPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	_, err := h.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = h.Hash(strings.Repeat("a", 72))
	assert.NoError(t, err)
}

func TestNewHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, NewHasher(bcrypt.MinCost).cost)
}

func TestHasher_Burn(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	assert.NotPanics(t, func() { h.Burn("anything") })
	assert.NotEmpty(t, h.dummy)
}
