package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	// Низкая стоимость, чтобы тесты не тормозили
	hash, err := HashPassword("super_password123", 4)
	assert.NoError(t, err)
	assert.NotEqual(t, "super_password123", hash)

	assert.True(t, CheckPasswordHash("super_password123", hash))
	assert.False(t, CheckPasswordHash("wrong_password", hash))
}

func TestHashPassword_DefaultCost(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret", 0)
	assert.NoError(t, err)
	assert.True(t, CheckPasswordHash("secret", hash))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	t.Parallel()

	assert.False(t, CheckPasswordHash("secret", "not-a-bcrypt-hash"))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
}
