package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(7, "waiter@example.com", "Luigi", "v1")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.StaffID)
	assert.Equal(t, "waiter@example.com", claims.Email)
	assert.Equal(t, "Luigi", claims.Name)
	assert.Equal(t, "v1", claims.TokenVersion)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "one")
	token, err := GenerateToken(1, "a@example.com", "A", "v1")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "two")
	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ValidateToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
