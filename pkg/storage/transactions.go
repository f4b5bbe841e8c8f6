package storage

import (
	"context"

	"cardledger/pkg/models"
	"cardledger/pkg/scope"
)

// TransactionAppender defines the write side of the ledger: a single
// append that makes the record visible under both the global and the
// per-owner index path, all-or-nothing.
type TransactionAppender interface {
	// AppendTransaction writes a fully-populated transaction record. The
	// record must not be considered committed unless this call succeeds.
	AppendTransaction(ctx context.Context, tx *models.Transaction) error
}

// TransactionScanner defines the read side of the ledger: range scans
// ordered by the createdAt field. The scan primitive bounds by timestamp
// only; tie-breaking on (createdAt, id) is the query engine's job.
type TransactionScanner interface {
	// ScanBefore returns up to limit rows from the scope's index, newest
	// first, bounded above (inclusive) by beforeTs when non-nil.
	ScanBefore(ctx context.Context, sc scope.Scope, beforeTs *int64, limit int32) ([]models.Transaction, error)

	// ListRecent returns the last lastN rows of the scope's index, or the
	// entire index when lastN is zero. Used to backfill live subscriptions.
	ListRecent(ctx context.Context, sc scope.Scope, lastN int32) ([]models.Transaction, error)
}
