// Package session holds the process-wide authenticated-session state:
// the token, the identity derived from it, and durable persistence so a
// restart does not log the user out.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/tinylink/internal/client/token"
	"github.com/dmitrijs2005/tinylink/internal/logging"
)

// Identity is the display identity decoded from the session token.
// It is always derived from the token, never set independently.
type Identity struct {
	Email    string
	Username string
}

// Session is an immutable snapshot of the current session state.
type Session struct {
	Token         string
	Identity      Identity
	Authenticated bool
}

// Store is the single owner of session state. All mutation goes through
// Login and Logout; readers get consistent snapshots via Current.
type Store struct {
	mu      sync.RWMutex
	session Session
	subs    map[int]func(Session)
	nextSub int

	storage TokenStorage
	log     logging.Logger
}

// NewStore builds a Store and rehydrates it from durable storage.
// A stored token that fails to decode is discarded and wiped, so an
// expired or corrupt value is never surfaced as a valid session.
func NewStore(ctx context.Context, storage TokenStorage, log logging.Logger) *Store {
	s := &Store{
		subs:    make(map[int]func(Session)),
		storage: storage,
		log:     log,
	}

	stored, err := storage.Load(ctx)
	if err != nil {
		log.Warn(ctx, "failed to load stored session", "error", err)
		return s
	}
	if stored == "" {
		return s
	}

	claims, err := token.Decode(stored)
	if err != nil {
		log.Warn(ctx, "stored session token is invalid, discarding", "error", err)
		if err := storage.Clear(ctx); err != nil {
			log.Warn(ctx, "failed to clear invalid session token", "error", err)
		}
		return s
	}

	s.session = Session{
		Token:         stored,
		Identity:      Identity{Email: claims.Email, Username: claims.Username},
		Authenticated: true,
	}
	return s
}

// Login decodes tok, and on success atomically switches the store to the
// authenticated state, persists the token, and notifies subscribers.
// If decoding fails the store is left untouched and the decode error is
// returned: a partially-applied login cannot be observed.
func (s *Store) Login(ctx context.Context, tok string) error {
	claims, err := token.Decode(tok)
	if err != nil {
		return err
	}

	next := Session{
		Token:         tok,
		Identity:      Identity{Email: claims.Email, Username: claims.Username},
		Authenticated: true,
	}

	s.mu.Lock()
	s.session = next
	subs := s.snapshotSubs()
	s.mu.Unlock()

	// persistence is best effort, the in-memory session stays valid
	if err := s.storage.Save(ctx, tok); err != nil {
		s.log.Warn(ctx, "failed to persist session token", "error", err)
	}

	for _, fn := range subs {
		fn(next)
	}
	return nil
}

// Logout clears the session and durable storage and notifies subscribers.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.session = Session{}
	subs := s.snapshotSubs()
	s.mu.Unlock()

	clearErr := s.storage.Clear(ctx)
	if clearErr != nil {
		s.log.Warn(ctx, "failed to clear persisted session token", "error", clearErr)
	}

	// subscribers observe the unauthenticated state even if the wipe failed
	for _, fn := range subs {
		fn(Session{})
	}
	return clearErr
}

// Current returns a snapshot of the session state.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Subscribe registers fn to run after every session change. The returned
// function cancels the subscription.
func (s *Store) Subscribe(fn func(Session)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// snapshotSubs must be called with mu held.
func (s *Store) snapshotSubs() []func(Session) {
	subs := make([]func(Session), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}
