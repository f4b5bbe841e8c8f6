// Package scope maps a verified identity to the ledger paths it may see.
// It is the single place where admin/user branching happens; the writer,
// the query engine, and the live stream all consume the same resolution.
package scope

import "fmt"

// AdminRole is the role marker that grants the global ledger view.
const AdminRole = "admin"

// Scope identifies either the global (admin) or per-owner view of the
// ledger, together with the index path and counter path backing it.
type Scope struct {
	UserId      string
	Admin       bool
	DataPath    string
	CounterPath string
}

// Resolve derives the scope for a verified (uid, roles) identity. It is a
// pure function of its inputs.
func Resolve(uid string, roles []string) Scope {
	for _, role := range roles {
		if role == AdminRole {
			return Scope{
				UserId:      uid,
				Admin:       true,
				DataPath:    "transactions",
				CounterPath: "meta/transactions/count",
			}
		}
	}
	return Scope{
		UserId:      uid,
		DataPath:    fmt.Sprintf("transactions_by_user/%s", uid),
		CounterPath: fmt.Sprintf("meta/transactions_by_user/%s/count", uid),
	}
}

// GlobalDataPath and GlobalCounterPath are the admin-scope paths. The
// writer needs them even for non-admin callers, since every transaction
// is appended under both the global and the per-owner path.
const (
	GlobalDataPath    = "transactions"
	GlobalCounterPath = "meta/transactions/count"
)
