// Package live implements the client-side merge engine: it unifies one
// point-in-time snapshot page with the continuous delta stream into a
// single deterministically ordered view.
package live

import (
	"context"
	"fmt"
	"sync"

	"cardledger/pkg/events"
	"cardledger/pkg/models"
	"cardledger/pkg/query"
	"cardledger/pkg/scope"
)

// Session is one subscribed viewer of a scope. A single actor goroutine
// owns the identity-keyed entry map; the stream transport serializes
// event delivery, so the map never has concurrent writers.
type Session struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	mu        sync.RWMutex
	entries   map[string]models.Transaction
	published []models.Transaction
	// primed flips the first time the stream yields a non-empty view.
	// Until then the snapshot seed is preserved, so a slow-starting
	// stream never blanks a populated view; afterwards every stream
	// report, empty included, replaces the view unconditionally.
	primed  bool
	loading bool

	updates chan []models.Transaction
}

// Open seeds a session with one page from the query engine and starts
// consuming the scope's delta stream. Admin scopes subscribe to the
// entire global path; user scopes are bounded to the last pageSize
// entries.
func Open(ctx context.Context, pager query.TransactionPager, stream events.Stream, sc scope.Scope, pageSize int) (*Session, error) {
	s := &Session{
		entries: make(map[string]models.Transaction),
		done:    make(chan struct{}),
		updates: make(chan []models.Transaction, 1),
		loading: true,
	}

	page, err := pager.Page(ctx, sc, pageSize, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to seed live session: %w", err)
	}
	s.published = page.Transactions
	s.loading = false

	lastN := pageSize
	if sc.Admin {
		lastN = 0
	}

	streamCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	ch, err := stream.Subscribe(streamCtx, sc, lastN)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to subscribe live session: %w", err)
	}

	go s.run(ch)
	return s, nil
}

func (s *Session) run(ch <-chan events.Event) {
	defer close(s.done)
	for event := range ch {
		s.apply(event)
	}
}

func (s *Session) apply(event events.Event) {
	if event.Transaction.Id == "" {
		return
	}

	s.mu.Lock()
	switch event.Kind {
	case events.KindAdded, events.KindChanged:
		s.entries[event.Transaction.Id] = event.Transaction
	case events.KindRemoved:
		delete(s.entries, event.Transaction.Id)
	default:
		s.mu.Unlock()
		return
	}

	view := make([]models.Transaction, 0, len(s.entries))
	for _, tx := range s.entries {
		view = append(view, tx)
	}
	models.SortTransactions(view)

	if !s.primed {
		if len(view) == 0 {
			s.mu.Unlock()
			return
		}
		s.primed = true
	}
	s.published = view
	s.mu.Unlock()

	s.notify(view)
}

// notify hands the latest view to the updates channel, replacing any
// stale one still queued.
func (s *Session) notify(view []models.Transaction) {
	for {
		select {
		case s.updates <- view:
			return
		default:
			select {
			case <-s.updates:
			default:
			}
		}
	}
}

// Snapshot returns the currently published, sorted view.
func (s *Session) Snapshot() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, len(s.published))
	copy(out, s.published)
	return out
}

// Loading reports whether the initial seed fetch has resolved. It is
// true only before Open returns.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Updates delivers the freshest published view after each change.
// Latest-wins: a slow reader only ever misses intermediate views.
func (s *Session) Updates() <-chan []models.Transaction {
	return s.updates
}

// Close tears the session down: the stream subscription is released and
// no event mutates the view after Close returns. Safe to call more than
// once.
func (s *Session) Close() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}
