package leave

import (
	"testing"

	"github.com/atlas-hris/leave-console-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotStoreStaleCommitDiscarded(t *testing.T) {
	store := newSnapshotStore()

	// Two overlapping loads: the first to start finishes last.
	genOld := store.BeginRequestLoad("admin-1")
	genNew := store.BeginRequestLoad("admin-1")

	newer := []leave.LeaveRequest{{LeaveRequestID: "new"}}
	assert.True(t, store.CommitRequests("admin-1", genNew, newer))

	older := []leave.LeaveRequest{{LeaveRequestID: "old"}}
	assert.False(t, store.CommitRequests("admin-1", genOld, older))

	got, loaded := store.Requests("admin-1")
	assert.True(t, loaded)
	assert.Len(t, got, 1)
	assert.Equal(t, "new", got[0].LeaveRequestID)
}

func TestSnapshotStorePerAdminIsolation(t *testing.T) {
	store := newSnapshotStore()

	gen := store.BeginRequestLoad("admin-1")
	store.CommitRequests("admin-1", gen, []leave.LeaveRequest{{LeaveRequestID: "42"}})

	_, loaded := store.Requests("admin-2")
	assert.False(t, loaded)

	got, loaded := store.Requests("admin-1")
	assert.True(t, loaded)
	assert.Len(t, got, 1)
}

func TestSnapshotStoreBalancesGeneration(t *testing.T) {
	store := newSnapshotStore()

	genOld := store.BeginBalanceLoad("admin-1")
	genNew := store.BeginBalanceLoad("admin-1")

	assert.True(t, store.CommitBalances("admin-1", genNew, []leave.EmployeeLeaveBalance{{EmployeeID: "7"}}))
	assert.False(t, store.CommitBalances("admin-1", genOld, nil))

	got, loaded := store.Balances("admin-1")
	assert.True(t, loaded)
	assert.Len(t, got, 1)
}
