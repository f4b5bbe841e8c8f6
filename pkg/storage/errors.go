package storage

import "errors"

// ErrDuplicateTransaction is returned when an append collides with an
// existing transaction id.
var ErrDuplicateTransaction = errors.New("transaction already exists")
