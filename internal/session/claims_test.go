package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsignedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return token
}

func TestInspectToken(t *testing.T) {
	exp := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	token := unsignedToken(t, jwt.MapClaims{
		"sub":   "partner-42",
		"email": "asha@example.com",
		"exp":   exp.Unix(),
	})

	claims, err := InspectToken(token)
	require.NoError(t, err)

	assert.Equal(t, "partner-42", claims.Subject)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.True(t, claims.ExpiresAt.Equal(exp))
}

func TestInspectTokenWithoutExpiry(t *testing.T) {
	token := unsignedToken(t, jwt.MapClaims{"sub": "partner-42"})

	claims, err := InspectToken(token)
	require.NoError(t, err)

	assert.Equal(t, "partner-42", claims.Subject)
	assert.True(t, claims.ExpiresAt.IsZero())
}

func TestInspectTokenRejectsOpaqueCredential(t *testing.T) {
	_, err := InspectToken("not-a-jwt")
	assert.Error(t, err)
}
