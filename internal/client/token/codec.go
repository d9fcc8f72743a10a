// Package token decodes session tokens into display claims.
//
// Decoding is advisory: the signature and expiry are NOT verified here, the
// server re-checks the token on every request. The client only needs the
// identity claims to show who is logged in.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken reports a token that is not structurally a JWT:
// not three dot-separated base64url segments, or a payload that is not
// valid JSON. Matched with errors.Is.
var ErrMalformedToken = errors.New("malformed token")

// Claims carries the identity claims the backend embeds into session tokens.
type Claims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Decode parses the compact form of a session token and returns its claims.
// All malformed input yields ErrMalformedToken; Decode never panics.
func Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return claims, nil
}
