package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_Admin(t *testing.T) {
	sc := Resolve("user-1", []string{"viewer", "admin"})

	assert.True(t, sc.Admin)
	assert.Equal(t, "transactions", sc.DataPath)
	assert.Equal(t, "meta/transactions/count", sc.CounterPath)
	assert.Equal(t, "user-1", sc.UserId)
}

func TestResolve_User(t *testing.T) {
	sc := Resolve("user-1", []string{"viewer"})

	assert.False(t, sc.Admin)
	assert.Equal(t, "transactions_by_user/user-1", sc.DataPath)
	assert.Equal(t, "meta/transactions_by_user/user-1/count", sc.CounterPath)
}

func TestResolve_NoRoles(t *testing.T) {
	sc := Resolve("user-2", nil)

	assert.False(t, sc.Admin)
	assert.Equal(t, "transactions_by_user/user-2", sc.DataPath)
}
