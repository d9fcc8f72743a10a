package token

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, email, username string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email:    email,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestDecode_ValidToken(t *testing.T) {
	s := mintToken(t, "alice@example.com", "alice", time.Now().Add(time.Hour))

	claims, err := Decode(s)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "alice", claims.Username)
}

func TestDecode_ExpiredTokenStillDecodes(t *testing.T) {
	// expiry is the server's concern; decode only extracts display identity
	s := mintToken(t, "bob@example.com", "bob", time.Now().Add(-time.Hour))

	claims, err := Decode(s)
	require.NoError(t, err)
	require.Equal(t, "bob", claims.Username)
}

func TestDecode_MalformedTokens(t *testing.T) {
	notJSON := base64.RawURLEncoding.EncodeToString([]byte("plain text"))

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"single segment", "abc"},
		{"two segments", "a.b"},
		{"four segments", "a.b.c.d"},
		{"payload not base64url", "aGVhZA.%%%.c2ln"},
		{"payload not json", "aGVhZA." + notJSON + ".c2ln"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				claims, err := Decode(tt.token)
				require.Nil(t, claims)
				require.ErrorIs(t, err, ErrMalformedToken)
			})
		})
	}
}
