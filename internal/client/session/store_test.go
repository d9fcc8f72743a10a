package session

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tinylink/internal/client/token"
	"github.com/dmitrijs2005/tinylink/internal/logging"
)

func mintToken(t *testing.T, email, username string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, token.Claims{
		Email:    email,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func newTestStore(t *testing.T, storage TokenStorage) *Store {
	t.Helper()
	return NewStore(context.Background(), storage, logging.NewJSONLogger(io.Discard))
}

func TestStore_LoginSetsIdentityFromToken(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := newTestStore(t, storage)

	require.False(t, store.Current().Authenticated)

	tok := mintToken(t, "alice@example.com", "alice")
	require.NoError(t, store.Login(ctx, tok))

	got := store.Current()
	require.True(t, got.Authenticated)
	require.Equal(t, tok, got.Token)
	require.Equal(t, Identity{Email: "alice@example.com", Username: "alice"}, got.Identity)

	persisted, err := storage.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, tok, persisted)
}

func TestStore_LoginWithMalformedTokenLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := newTestStore(t, storage)

	err := store.Login(ctx, "not.a.token")
	require.ErrorIs(t, err, token.ErrMalformedToken)

	require.False(t, store.Current().Authenticated)
	require.Empty(t, store.Current().Identity)

	persisted, err := storage.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, persisted)
}

func TestStore_LoginThenLogout(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := newTestStore(t, storage)

	require.NoError(t, store.Login(ctx, mintToken(t, "a@b.io", "a")))
	require.NoError(t, store.Logout(ctx))

	got := store.Current()
	require.False(t, got.Authenticated)
	require.Empty(t, got.Token)
	require.Empty(t, got.Identity)

	persisted, err := storage.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, persisted)
}

func TestStore_RehydratesValidToken(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	tok := mintToken(t, "carol@example.com", "carol")
	require.NoError(t, storage.Save(ctx, tok))

	store := newTestStore(t, storage)

	got := store.Current()
	require.True(t, got.Authenticated)
	require.Equal(t, "carol", got.Identity.Username)
}

func TestStore_RehydrateDiscardsCorruptToken(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save(ctx, "garbage"))

	store := newTestStore(t, storage)

	require.False(t, store.Current().Authenticated)

	// the stale value must be wiped, not kept around
	persisted, err := storage.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, persisted)
}

func TestStore_SubscribersNotifiedOnEveryChange(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, NewMemoryStorage())

	var seen []bool
	cancel := store.Subscribe(func(s Session) {
		seen = append(seen, s.Authenticated)
	})

	require.NoError(t, store.Login(ctx, mintToken(t, "a@b.io", "a")))
	require.NoError(t, store.Logout(ctx))
	require.Equal(t, []bool{true, false}, seen)

	cancel()
	require.NoError(t, store.Login(ctx, mintToken(t, "a@b.io", "a")))
	require.Len(t, seen, 2)
}
