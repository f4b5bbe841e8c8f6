// Package query implements the server-side keyset pagination over the
// role-scoped ledger index.
package query

import (
	"context"
	"fmt"

	"cardledger/pkg/models"
	"cardledger/pkg/scope"
	"cardledger/pkg/storage"
)

const (
	// MinLimit and MaxLimit bound the server-side page size regardless of
	// client input.
	MinLimit = 1
	MaxLimit = 200

	// DefaultLimit is used when the caller does not ask for a page size.
	DefaultLimit = 20

	// cursorSlack is the over-fetch applied to every scan. The store's
	// range primitive bounds by timestamp only, so rows that tie with the
	// cursor on createdAt come back again and are filtered out below; the
	// slack keeps the page full after that filtering. More than
	// cursorSlack rows sharing one millisecond at a page boundary can
	// still starve a page — the slack is a heuristic, not a proof.
	cursorSlack = 5
)

// TransactionPager serves one ledger page at a time. Implemented by
// Engine; consumers (handlers, live sessions) depend on this interface.
type TransactionPager interface {
	Page(ctx context.Context, sc scope.Scope, limit int, cursor *models.Cursor) (*models.Page, error)
}

// Engine is the stateless pagination query engine. One invocation per
// request, no shared mutable state, safe for unlimited concurrent use.
type Engine struct {
	Scanner  storage.TransactionScanner
	Counters storage.CounterReader
}

// NewEngine creates a new Engine.
func NewEngine(scanner storage.TransactionScanner, counters storage.CounterReader) *Engine {
	return &Engine{Scanner: scanner, Counters: counters}
}

// Make sure we conform to the interface
var _ TransactionPager = (*Engine)(nil)

// ClampLimit forces limit into [MinLimit, MaxLimit], defaulting when
// unset.
func ClampLimit(limit int) int {
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Page returns one page of the scope's ledger in (createdAt DESC, id
// DESC) order, the cursor for the page after it, and the advisory total.
// NextCursor is nil exactly when the returned page is empty; exhaustion
// is detected by the subsequent page naturally returning zero rows.
func (e *Engine) Page(ctx context.Context, sc scope.Scope, limit int, cursor *models.Cursor) (*models.Page, error) {
	limit = ClampLimit(limit)

	total, err := e.Counters.GetCounter(ctx, sc.CounterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scope counter: %w", err)
	}

	var beforeTs *int64
	if cursor != nil {
		beforeTs = &cursor.BeforeTs
	}

	rows, err := e.Scanner.ScanBefore(ctx, sc, beforeTs, int32(limit+cursorSlack))
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger: %w", err)
	}

	models.SortTransactions(rows)

	// The scan bound is inclusive; drop every row that is not strictly
	// below the cursor's ordering key. This removes the cursor row itself
	// and any rows that only tied on timestamp but were already returned
	// on the previous page.
	if cursor != nil && cursor.BeforeId != "" {
		kept := rows[:0]
		for i := range rows {
			if models.StrictlyOlder(&rows[i], cursor.BeforeTs, cursor.BeforeId) {
				kept = append(kept, rows[i])
			}
		}
		rows = kept
	}

	if len(rows) > limit {
		rows = rows[:limit]
	}

	var nextCursor *models.Cursor
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		nextCursor = &models.Cursor{BeforeTs: last.CreatedAt, BeforeId: last.Id}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}

	return &models.Page{
		Transactions: rows,
		NextCursor:   nextCursor,
		PageSize:     limit,
		Total:        total,
		TotalPages:   totalPages,
	}, nil
}
