// Package cache keeps a locally cached view of the server-owned link list
// and keeps it consistent under concurrent mutations and periodic refresh.
//
// The server is the sole source of truth: the cache only replaces its value
// wholesale, it never merges or diffs. Consistency bound: the cached list
// converges with the server within one polling interval or one invalidation
// cycle, whichever comes first.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/tinylink/internal/client/models"
	"github.com/dmitrijs2005/tinylink/internal/logging"
)

// FetchFunc retrieves the authoritative link list from the backend.
type FetchFunc func(ctx context.Context) ([]models.Link, error)

// Query is the cache for one query key. Multiple keys are simply multiple
// Query instances; the client has a single key, the link list.
//
// Guarantees:
//   - regular refreshes are coalesced: at most one is dispatched while a
//     fetch is already in flight;
//   - every issued fetch carries a monotonically increasing sequence number
//     and a response is discarded when a later-issued one was already
//     applied, so out-of-order completion can never roll the value back;
//   - a failed refresh leaves the previous value in place.
type Query struct {
	fetch    FetchFunc
	interval time.Duration
	log      logging.Logger

	mu         sync.Mutex
	value      []models.Link
	hasValue   bool
	fresh      bool
	nextSeq    uint64
	appliedSeq uint64
	inflight   int
	subs       map[int]chan []models.Link
	nextSub    int
	stopPoll   chan struct{}
}

func NewQuery(fetch FetchFunc, interval time.Duration, log logging.Logger) *Query {
	return &Query{
		fetch:    fetch,
		interval: interval,
		log:      log,
		subs:     make(map[int]chan []models.Link),
	}
}

// Subscription is one consumer's attachment to the cached value.
type Subscription struct {
	q  *Query
	id int
	ch chan []models.Link

	closeOnce sync.Once
}

// Updates delivers every newly applied value. The channel holds only the
// latest value: a slow consumer sees the most recent list, not the backlog.
func (s *Subscription) Updates() <-chan []models.Link {
	return s.ch
}

// Close detaches the consumer. Closing the last subscription stops the
// background poller; an in-flight fetch is not aborted, its result is
// simply discarded when it completes with nobody attached.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.q.mu.Lock()
		delete(s.q.subs, s.id)
		if len(s.q.subs) == 0 && s.q.stopPoll != nil {
			close(s.q.stopPoll)
			s.q.stopPoll = nil
		}
		s.q.mu.Unlock()
	})
}

// Subscribe attaches a consumer. The first subscriber starts the background
// poller; if no fresh value exists a fetch is triggered immediately. The
// current value, if any, is delivered right away.
func (q *Query) Subscribe(ctx context.Context) *Subscription {
	q.mu.Lock()
	id := q.nextSub
	q.nextSub++
	ch := make(chan []models.Link, 1)
	q.subs[id] = ch

	if q.hasValue {
		ch <- append([]models.Link(nil), q.value...)
	}
	needFetch := !q.fresh
	if q.stopPoll == nil {
		q.stopPoll = make(chan struct{})
		go q.poll(q.stopPoll)
	}
	q.mu.Unlock()

	if needFetch {
		q.Refresh(ctx)
	}
	return &Subscription{q: q, id: id, ch: ch}
}

// Snapshot returns the current cached value and whether one exists.
func (q *Query) Snapshot() ([]models.Link, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.hasValue {
		return nil, false
	}
	return append([]models.Link(nil), q.value...), true
}

// Refresh issues a background fetch unless one is already in flight
// (coalescing: timer ticks and new subscribers reuse the in-flight request).
func (q *Query) Refresh(ctx context.Context) {
	q.mu.Lock()
	if q.inflight > 0 {
		q.mu.Unlock()
		return
	}
	seq := q.issueLocked()
	q.mu.Unlock()

	go q.fetchAndApply(ctx, seq)
}

// Invalidate marks the cached value stale and schedules an immediate
// refetch. Unlike Refresh it always issues a new fetch, even when one is in
// flight: the in-flight response predates the mutation that triggered the
// invalidation, so it must not be the last word. The sequence-number rule
// makes sure the older response cannot overwrite the newer one.
func (q *Query) Invalidate(ctx context.Context) {
	q.mu.Lock()
	q.fresh = false
	seq := q.issueLocked()
	q.mu.Unlock()

	go q.fetchAndApply(ctx, seq)
}

func (q *Query) issueLocked() uint64 {
	q.inflight++
	q.nextSeq++
	return q.nextSeq
}

func (q *Query) fetchAndApply(ctx context.Context, seq uint64) {
	links, err := q.fetch(ctx)

	q.mu.Lock()
	defer q.mu.Unlock()
	q.inflight--

	if err != nil {
		// keep the previous value; the next tick retries
		q.log.Warn(ctx, "link list refresh failed, keeping cached value", "seq", seq, "error", err)
		return
	}
	if seq < q.appliedSeq {
		q.log.Debug(ctx, "discarding out-of-order response", "seq", seq, "applied", q.appliedSeq)
		return
	}

	q.appliedSeq = seq
	q.value = links
	q.hasValue = true
	q.fresh = true

	for _, ch := range q.subs {
		send(ch, append([]models.Link(nil), links...))
	}
}

// send delivers v keeping only the latest value in the 1-buffered channel.
func send(ch chan []models.Link, v []models.Link) {
	for {
		select {
		case ch <- v:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

func (q *Query) poll(stop chan struct{}) {
	t := time.NewTicker(q.interval)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			// refresh on every tick regardless of staleness, so
			// server-side changes (click counters) stay visible
			q.Refresh(context.Background())
		case <-stop:
			return
		}
	}
}
