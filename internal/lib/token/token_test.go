package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestExpiresIn_ReadsExpClaim(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{
		"exp": time.Now().Add(2 * time.Hour).Unix(),
	})

	ttl := ExpiresIn(tok, 24*time.Hour)
	assert.InDelta(t, (2 * time.Hour).Seconds(), ttl.Seconds(), 5)
}

func TestExpiresIn_FallsBack(t *testing.T) {
	fallback := 24 * time.Hour

	tests := []struct {
		name  string
		token string
	}{
		{name: "opaque token", token: "not-a-jwt"},
		{name: "empty token", token: ""},
		{name: "no exp claim", token: signedToken(t, jwt.MapClaims{"sub": "u1"})},
		{name: "already expired", token: signedToken(t, jwt.MapClaims{
			"exp": time.Now().Add(-time.Hour).Unix(),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, fallback, ExpiresIn(tt.token, fallback))
		})
	}
}
