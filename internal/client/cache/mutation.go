package cache

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/tinylink/internal/client/models"
)

// ErrMutationInFlight reports a duplicate submission while the previous one
// has not resolved yet.
var ErrMutationInFlight = errors.New("previous submission still in progress")

// Mutator dispatches link mutations for one form. Mutations are never
// coalesced with fetches or with each other, but a Mutator rejects a second
// submission while one is pending: creates are not idempotent, so the guard
// is what prevents accidental duplicates. Each form owns its own Mutator.
type Mutator struct {
	query *Query

	mu       sync.Mutex
	inFlight bool
}

func NewMutator(q *Query) *Mutator {
	return &Mutator{query: q}
}

// Run executes mutate and, on success, invalidates the list cache so every
// consumer converges on the server's state. On failure the cached value is
// left untouched and the error goes back to the caller for display; Run
// never retries.
//
// The returned link is the mutation's own result: the caller can show it
// immediately without waiting for the list to refetch.
func (m *Mutator) Run(ctx context.Context, mutate func(ctx context.Context) (*models.Link, error)) (*models.Link, error) {
	m.mu.Lock()
	if m.inFlight {
		m.mu.Unlock()
		return nil, ErrMutationInFlight
	}
	m.inFlight = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.inFlight = false
		m.mu.Unlock()
	}()

	link, err := mutate(ctx)
	if err != nil {
		return nil, err
	}

	m.query.Invalidate(ctx)
	return link, nil
}
