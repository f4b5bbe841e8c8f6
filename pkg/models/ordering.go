package models

import "sort"

// Before reports whether a sorts before b under the ledger's total order:
// createdAt descending, ties broken by descending id comparison. The
// tie-break guarantees a strict, reproducible order even when multiple
// entries share a millisecond.
func Before(a, b *Transaction) bool {
	if a.CreatedAt != b.CreatedAt {
		return a.CreatedAt > b.CreatedAt
	}
	return a.Id > b.Id
}

// StrictlyOlder reports whether tx falls strictly below the (beforeTs,
// beforeId) ordering key, i.e. would appear after it in a sorted ledger.
func StrictlyOlder(tx *Transaction, beforeTs int64, beforeId string) bool {
	if tx.CreatedAt != beforeTs {
		return tx.CreatedAt < beforeTs
	}
	return tx.Id < beforeId
}

// SortTransactions orders txs in place by the ledger ordering key.
func SortTransactions(txs []Transaction) {
	sort.Slice(txs, func(i, j int) bool {
		return Before(&txs[i], &txs[j])
	})
}
