package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery-staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 12, cost)
}

func TestVerifyPasswordCorrect(t *testing.T) {
	password := "my-secure-password"
	hash, err := HashPassword(password)
	require.NoError(t, err)

	match, err := VerifyPassword(password, hash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestVerifyPasswordWrong(t *testing.T) {
	hash, err := HashPassword("right-password")
	require.NoError(t, err)

	match, err := VerifyPassword("wrong-password", hash)
	require.NoError(t, err, "a mismatch is not an error")
	assert.False(t, match)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	match, err := VerifyPassword("anything", "not-a-bcrypt-digest")
	assert.Error(t, err)
	assert.False(t, match)
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	a, err := HashPassword("same-password")
	require.NoError(t, err)
	b, err := HashPassword("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
