package storage

// Storage defines the root interface for the entire ledger data layer.
// It composes all available store operations. Components should depend on
// the more granular interfaces (LedgerStore, CounterStore, etc.) instead
// of this one.
type Storage interface {
	LedgerStore
	CounterStore
}

// LedgerStore combines the appender and scanner interfaces.
type LedgerStore interface {
	TransactionAppender
	TransactionScanner
}
