// Package auth inspects the operator's auth token.
//
// The console never signs or verifies tokens: the catalog API issues them and
// is the only party holding the signing secret. What the console can do is
// read the expiry claim without verification, so an operator with a
// long-expired session is sent back to the login screen before a doomed
// round trip to the API.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry returns the expiry time carried by the token, if the token
// parses as a JWT and has an exp claim. Opaque non-JWT tokens report no
// expiry and are passed through untouched; the remote API stays the
// authority on their validity.
func TokenExpiry(tokenString string) (time.Time, bool) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// IsExpired reports whether the token carries an expiry in the past.
func IsExpired(tokenString string, now time.Time) bool {
	exp, ok := TokenExpiry(tokenString)
	return ok && now.After(exp)
}
