// Package token inspects the bearer tokens issued by the backend. The
// backend signs them; this client never verifies signatures, it only
// reads the expiry so the local session can live exactly as long as the
// credential it carries.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresIn returns how long the token remains valid from now. Tokens
// that are not parseable JWTs, carry no exp claim or are already
// expired yield the fallback duration.
func ExpiresIn(tokenStr string, fallback time.Duration) time.Duration {
	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return fallback
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return fallback
	}
	return ttl
}
