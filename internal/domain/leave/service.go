package leave

import (
	"context"
)

type LeaveService interface {
	// Requests
	ListRequests(ctx context.Context, adminID string, filter ListRequestsFilter, refresh bool) (ListLeaveRequestsResponse, error)
	ListBalances(ctx context.Context, adminID string, filter ListBalancesFilter, refresh bool) (ListLeaveBalancesResponse, error)

	// Decisions
	ApproveRequest(ctx context.Context, adminID string, req ApproveRequestRequest) error
	RejectRequest(ctx context.Context, adminID string, req RejectRequestRequest) error
	ListDecisions(ctx context.Context, adminID string) (DecisionLogResponse, error)

	// Reject-reason drafts
	UpdateRejectDraft(ctx context.Context, adminID string, req UpdateRejectDraftRequest) RejectDraftState
	DiscardRejectDraft(ctx context.Context, adminID string, employeeID, leaveRequestID string)
}
