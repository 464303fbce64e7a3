package leave

import (
	"sync"

	"github.com/atlas-hris/leave-console-go/internal/domain/leave"
)

// snapshotStore holds the per-admin in-memory copies of upstream data. The
// console discards a whole snapshot and re-pulls the full set after every
// mutation; there is no incremental update.
//
// Each load is tagged with a per-admin generation taken when the load is
// issued. A response may only replace the snapshot if its generation is
// still the latest one issued, so a slow response cannot overwrite data
// from a load that started after it.
type snapshotStore struct {
	mu sync.Mutex

	requests       map[string][]leave.LeaveRequest
	requestsLoaded map[string]bool
	requestGen     map[string]uint64

	balances       map[string][]leave.EmployeeLeaveBalance
	balancesLoaded map[string]bool
	balanceGen     map[string]uint64
}

func newSnapshotStore() *snapshotStore {
	return &snapshotStore{
		requests:       make(map[string][]leave.LeaveRequest),
		requestsLoaded: make(map[string]bool),
		requestGen:     make(map[string]uint64),
		balances:       make(map[string][]leave.EmployeeLeaveBalance),
		balancesLoaded: make(map[string]bool),
		balanceGen:     make(map[string]uint64),
	}
}

func (s *snapshotStore) Requests(adminID string) ([]leave.LeaveRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[adminID], s.requestsLoaded[adminID]
}

// BeginRequestLoad issues a new generation for a request load.
func (s *snapshotStore) BeginRequestLoad(adminID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requestGen[adminID]++
	return s.requestGen[adminID]
}

// CommitRequests installs a loaded list if gen is still the latest issued
// generation for the admin. It reports whether the snapshot was replaced.
func (s *snapshotStore) CommitRequests(adminID string, gen uint64, list []leave.LeaveRequest) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.requestGen[adminID] {
		return false
	}
	s.requests[adminID] = list
	s.requestsLoaded[adminID] = true
	return true
}

func (s *snapshotStore) Balances(adminID string) ([]leave.EmployeeLeaveBalance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[adminID], s.balancesLoaded[adminID]
}

func (s *snapshotStore) BeginBalanceLoad(adminID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balanceGen[adminID]++
	return s.balanceGen[adminID]
}

func (s *snapshotStore) CommitBalances(adminID string, gen uint64, list []leave.EmployeeLeaveBalance) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.balanceGen[adminID] {
		return false
	}
	s.balances[adminID] = list
	s.balancesLoaded[adminID] = true
	return true
}
