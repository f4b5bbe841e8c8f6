// Package events carries the ledger's add/change/remove delta feed from
// the writer to live viewers.
package events

import (
	"context"

	"cardledger/pkg/models"
	"cardledger/pkg/scope"
)

// Kind identifies what happened to a ledger entry.
type Kind string

const (
	KindAdded   Kind = "added"
	KindChanged Kind = "changed"
	KindRemoved Kind = "removed"
)

// Event is one delta on a subscribed path.
type Event struct {
	Kind        Kind               `json:"kind"`
	Transaction models.Transaction `json:"transaction"`
}

// Publisher defines the interface for emitting ledger deltas onto a path.
type Publisher interface {
	Publish(ctx context.Context, path string, event Event) error
}

// Stream defines the interface for subscribing to a scope's delta feed.
type Stream interface {
	// Subscribe delivers the scope's existing entries as added events
	// followed by live deltas, until ctx is cancelled; the returned
	// channel is closed on teardown. lastN bounds the backfill to the
	// most recent N entries; zero means unbounded.
	Subscribe(ctx context.Context, sc scope.Scope, lastN int) (<-chan Event, error)
}
