package auth

import (
	"testing"
	"time"

	"academy_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Name:      "Тестовый Пользователь",
		Email:     "user@test.com",
		Role:      models.UserRoleStudent,
		Active:    true,
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Generate(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "user@test.com", claims.Email)
	assert.Equal(t, models.UserRoleStudent, claims.Role)
	require.NotNil(t, claims.ExpiresAt)
}

func TestTokenIssuer_ZeroTTLMeansNoExpiry(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("test-secret", 0)

	token, err := issuer.Generate(testUser())
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("another-secret", time.Hour)

	token, err := issuer.Generate(testUser())
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Generate(testUser())
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("test-secret", time.Hour)

	_, err := issuer.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Parse("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTTLFromHours(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Duration(0), TTLFromHours(0))
	assert.Equal(t, 168*time.Hour, TTLFromHours(168))
}
