package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssueAndValidate(t *testing.T) {
	m := NewJWTManager(JWTConfig{Secret: "test-secret", ExpiryMinutes: 30})

	token, err := m.Issue("joao@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "joao@example.com", subject)
}

func TestJWTValidate_RejectsExpiredToken(t *testing.T) {
	expired := NewJWTManager(JWTConfig{Secret: "test-secret", ExpiryMinutes: -1})

	token, err := expired.Issue("joao@example.com")
	require.NoError(t, err)

	_, err = expired.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTValidate_RejectsWrongSecret(t *testing.T) {
	m := NewJWTManager(JWTConfig{Secret: "test-secret", ExpiryMinutes: 30})
	other := NewJWTManager(JWTConfig{Secret: "another-secret", ExpiryMinutes: 30})

	token, err := m.Issue("joao@example.com")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTValidate_RejectsGarbage(t *testing.T) {
	m := NewJWTManager(JWTConfig{Secret: "test-secret", ExpiryMinutes: 30})

	_, err := m.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTRefresh(t *testing.T) {
	m := NewJWTManager(JWTConfig{Secret: "test-secret", ExpiryMinutes: 30})

	token, err := m.Issue("joao@example.com")
	require.NoError(t, err)

	refreshed, err := m.Refresh(token)
	require.NoError(t, err)

	subject, err := m.Validate(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "joao@example.com", subject)
}

func TestJWTRefresh_RejectsExpiredToken(t *testing.T) {
	expired := NewJWTManager(JWTConfig{Secret: "test-secret", ExpiryMinutes: -1})

	token, err := expired.Issue("joao@example.com")
	require.NoError(t, err)

	_, err = expired.Refresh(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
