package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret", 15)

	token, err := m.GenerateAccessToken(42, "reader@example.com", "USER")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), principal.UserID)
	assert.Equal(t, "reader@example.com", principal.Email)
	assert.Equal(t, "USER", principal.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewManager("issuer-secret", 15)
	verifier := NewManager("other-secret", 15)

	token, err := issuer.GenerateAccessToken(1, "a@b.com", "ADMIN")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", 15)

	_, err := m.Validate("not-a-token")
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", -1)

	token, err := m.GenerateAccessToken(7, "late@example.com", "USER")
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.Error(t, err)
}
