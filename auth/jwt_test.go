package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	s, err := NewService(Config{SecretKey: "test-secret", Duration: time.Hour})
	require.NoError(t, err)

	tok, err := s.GenerateToken(42, "Alice", "alice@example.com")
	assert.NoError(t, err)

	claims, err := s.ValidateToken(tok)
	assert.NoError(t, err)
	if assert.NotNil(t, claims) {
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "Alice", claims.Name)
		assert.Equal(t, "alice@example.com", claims.Email)
	}
}

func TestService_ExpiredAndInvalid(t *testing.T) {
	s, err := NewService(Config{SecretKey: "test-secret", Duration: time.Hour})
	require.NoError(t, err)

	expired, err := NewService(Config{SecretKey: "test-secret", Duration: time.Nanosecond})
	require.NoError(t, err)
	tok, err := expired.GenerateToken(1, "Bob", "bob@example.com")
	assert.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	claims, err := s.ValidateToken(tok)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrExpiredToken)

	claims, err = s.ValidateToken("not-a-token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Wrong secret
	other, err := NewService(Config{SecretKey: "another-secret", Duration: time.Hour})
	require.NoError(t, err)
	tok2, _ := other.GenerateToken(2, "Eve", "eve@example.com")
	claims, err = s.ValidateToken(tok2)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestNewService_RequiresSecret(t *testing.T) {
	_, err := NewService(Config{})
	assert.ErrorIs(t, err, ErrEmptySecretKey)
}
