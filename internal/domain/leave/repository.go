package leave

import (
	"context"
)

// RequestSource - upstream source of leave requests scoped to an admin
type RequestSource interface {
	LeaveRequestsByAdmin(ctx context.Context, adminID string) ([]LeaveRequest, error)
}

// BalanceSource - upstream source of per-employee leave balances
type BalanceSource interface {
	EmployeeLeaveBalances(ctx context.Context, adminID string) ([]EmployeeLeaveBalance, error)
}

// DecisionSubmitter - upstream approval endpoint
type DecisionSubmitter interface {
	SubmitDecision(ctx context.Context, payload DecisionPayload) (string, error)
}

// DecisionRepository - interface for the approval_decisions audit table and
// its per-admin stats. Record writes both atomically.
type DecisionRepository interface {
	Record(ctx context.Context, decision Decision) (Decision, error)
	GetByAdminID(ctx context.Context, adminID string) ([]Decision, error)
	GetStats(ctx context.Context, adminID string) (DecisionStats, error)
}
