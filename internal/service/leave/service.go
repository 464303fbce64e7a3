package leave

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atlas-hris/leave-console-go/internal/domain/leave"
	"github.com/atlas-hris/leave-console-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.RequestSource
	leave.BalanceSource
	leave.DecisionSubmitter
	leave.DecisionRepository
	snapshots *snapshotStore
	drafts    *draftStore
}

func NewLeaveService(
	requestSource leave.RequestSource,
	balanceSource leave.BalanceSource,
	submitter leave.DecisionSubmitter,
	decisionRepo leave.DecisionRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		RequestSource:      requestSource,
		BalanceSource:      balanceSource,
		DecisionSubmitter:  submitter,
		DecisionRepository: decisionRepo,
		snapshots:          newSnapshotStore(),
		drafts:             newDraftStore(),
	}
}

// loadRequests returns the admin's request snapshot, fetching from upstream
// when none exists or a refresh is forced. On a fetch failure the last good
// snapshot is preserved and the error returned, so a retry can re-pull
// without the console losing what it had.
func (l *LeaveServiceImpl) loadRequests(ctx context.Context, adminID string, refresh bool) ([]leave.LeaveRequest, error) {
	if !refresh {
		if cached, ok := l.snapshots.Requests(adminID); ok {
			return cached, nil
		}
	}

	gen := l.snapshots.BeginRequestLoad(adminID)
	list, err := l.RequestSource.LeaveRequestsByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to load leave requests: %w", err)
	}

	if !l.snapshots.CommitRequests(adminID, gen, list) {
		// A newer load finished first; its snapshot wins.
		slog.Debug("discarded stale leave request load", "admin_id", adminID, "generation", gen)
		if cached, ok := l.snapshots.Requests(adminID); ok {
			return cached, nil
		}
	}
	return list, nil
}

// loadBalances is the secondary loader: failures are logged, never surfaced,
// and the last known (possibly empty) snapshot is served instead.
func (l *LeaveServiceImpl) loadBalances(ctx context.Context, adminID string, refresh bool) []leave.EmployeeLeaveBalance {
	if !refresh {
		if cached, ok := l.snapshots.Balances(adminID); ok {
			return cached
		}
	}

	gen := l.snapshots.BeginBalanceLoad(adminID)
	list, err := l.BalanceSource.EmployeeLeaveBalances(ctx, adminID)
	if err != nil {
		slog.Error("failed to load leave balances", "admin_id", adminID, "error", err)
		cached, _ := l.snapshots.Balances(adminID)
		return cached
	}

	if !l.snapshots.CommitBalances(adminID, gen, list) {
		slog.Debug("discarded stale leave balance load", "admin_id", adminID, "generation", gen)
		if cached, ok := l.snapshots.Balances(adminID); ok {
			return cached
		}
	}
	return list
}

// ListRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListRequests(ctx context.Context, adminID string, filter leave.ListRequestsFilter, refresh bool) (leave.ListLeaveRequestsResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	requests, err := l.loadRequests(ctx, adminID, refresh)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	filtered := filterRequests(requests, filter.Search)
	sorted := sortRequests(filtered, filter.SortBy, filter.SortOrder)

	pages := totalPages(len(sorted))
	page := clampPage(filter.Page, pages)
	start, end := pageBounds(len(sorted), page)

	items := make([]leave.LeaveRequestResponse, 0, end-start)
	for _, req := range sorted[start:end] {
		items = append(items, leave.LeaveRequestResponse{
			LeaveRequestID: req.LeaveRequestID,
			EmployeeID:     req.EmployeeID,
			EmployeeName:   req.EmployeeName,
			LeaveTypeID:    req.LeaveTypeID,
			LeaveTypeName:  req.LeaveTypeName,
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			AppliedDate:    req.AppliedDate,
			Days:           req.Days,
			Duration:       DurationDays(req.StartDate, req.EndDate),
			SessionTypeID:  req.SessionTypeID,
			Reason:         req.Reason,
			Status:         string(req.Status),
			Actionable:     req.Status == leave.StatusPending,
		})
	}

	showing := fmt.Sprintf("%d-%d of %d results", start+1, end, len(sorted))
	if len(sorted) == 0 {
		showing = "0 results"
	}

	return leave.ListLeaveRequestsResponse{
		TotalCount: len(sorted),
		Page:       page,
		Limit:      PageSize,
		TotalPages: pages,
		Showing:    showing,
		Requests:   items,
	}, nil
}

// ListBalances implements leave.LeaveService.
func (l *LeaveServiceImpl) ListBalances(ctx context.Context, adminID string, filter leave.ListBalancesFilter, refresh bool) (leave.ListLeaveBalancesResponse, error) {
	balances := l.loadBalances(ctx, adminID, refresh)

	filtered := filterBalances(balances, filter.Search)

	pages := totalPages(len(filtered))
	page := clampPage(filter.Page, pages)
	start, end := pageBounds(len(filtered), page)

	items := make([]leave.LeaveBalanceResponse, 0, end-start)
	for _, bal := range filtered[start:end] {
		items = append(items, leave.LeaveBalanceResponse{
			EmployeeID:     bal.EmployeeID,
			EmployeeName:   bal.EmployeeName,
			AvailableSL:    bal.AvailableSL,
			AvailableCL:    bal.AvailableCL,
			AvailablePL:    bal.AvailablePL,
			TotalLeave:     bal.TotalLeave,
			RemainingLeave: bal.RemainingLeave,
		})
	}

	return leave.ListLeaveBalancesResponse{
		TotalCount: len(filtered),
		Page:       page,
		Limit:      PageSize,
		TotalPages: pages,
		Balances:   items,
	}, nil
}

// findPending locates the exact pending request a decision targets. The
// request id is mandatory, so an employee with several open requests can
// never have the wrong one acted on.
func (l *LeaveServiceImpl) findPending(ctx context.Context, adminID, employeeID, leaveRequestID string) (leave.LeaveRequest, error) {
	requests, err := l.loadRequests(ctx, adminID, false)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	for _, req := range requests {
		if req.EmployeeID == employeeID && req.LeaveRequestID == leaveRequestID {
			if req.Status != leave.StatusPending {
				return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
			}
			return req, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

// submit ships the decision upstream, audits it, and reconciles by
// reloading the full snapshot. There is no optimistic local mutation; on
// upstream failure the snapshot is untouched.
func (l *LeaveServiceImpl) submit(ctx context.Context, adminID string, target leave.LeaveRequest, action leave.DecisionAction, reason string) error {
	approvalStatus := leave.StatusCodeApproved
	if action == leave.DecisionActionReject {
		approvalStatus = leave.StatusCodeRejected
	}

	payload := leave.DecisionPayload{
		AdminID:        adminID,
		EmployeeID:     target.EmployeeID,
		LeaveTypeID:    target.LeaveTypeID,
		ApprovalStatus: approvalStatus,
		LeaveRequestID: target.LeaveRequestID,
		LeaveStartDate: validator.NormalizeDayFirst(target.StartDate),
		LeaveEndDate:   validator.NormalizeDayFirst(target.EndDate),
		RejectReason:   reason,
		SessionTypeID:  target.SessionTypeID,
	}

	message, err := l.DecisionSubmitter.SubmitDecision(ctx, payload)
	if err != nil {
		return fmt.Errorf("failed to submit leave decision: %w", err)
	}
	if message != "" {
		slog.Info("leave decision accepted", "admin_id", adminID, "leave_request_id", target.LeaveRequestID, "message", message)
	}

	if _, err := l.DecisionRepository.Record(ctx, leave.Decision{
		AdminID:        adminID,
		EmployeeID:     target.EmployeeID,
		LeaveRequestID: target.LeaveRequestID,
		Action:         action,
		Reason:         reason,
	}); err != nil {
		// The upstream already applied the decision; a failed audit write
		// must not make the action look failed.
		slog.Error("failed to audit leave decision", "admin_id", adminID, "leave_request_id", target.LeaveRequestID, "error", err)
	}

	if _, err := l.loadRequests(ctx, adminID, true); err != nil {
		slog.Error("failed to reload leave requests after decision", "admin_id", adminID, "error", err)
	}
	return nil
}

// ApproveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) ApproveRequest(ctx context.Context, adminID string, req leave.ApproveRequestRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	target, err := l.findPending(ctx, adminID, req.EmployeeID, req.LeaveRequestID)
	if err != nil {
		return err
	}

	return l.submit(ctx, adminID, target, leave.DecisionActionApprove, "")
}

// RejectRequest implements leave.LeaveService. Rejection is two-phase: a
// call without a reason (inline or drafted) does not submit, it signals
// that the reason dialog must be completed first. Over-long reasons are
// truncated to the word limit, not refused.
func (l *LeaveServiceImpl) RejectRequest(ctx context.Context, adminID string, req leave.RejectRequestRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	reason := ""
	if req.Reason != nil {
		reason = strings.TrimSpace(*req.Reason)
	}
	key := draftKey{adminID: adminID, employeeID: req.EmployeeID, leaveRequestID: req.LeaveRequestID}
	if reason == "" {
		if draft, ok := l.drafts.Get(key); ok {
			reason = strings.TrimSpace(draft)
		}
	}
	if validator.IsEmpty(reason) {
		return leave.ErrRejectReasonRequired
	}
	reason = submissionReason(reason)

	target, err := l.findPending(ctx, adminID, req.EmployeeID, req.LeaveRequestID)
	if err != nil {
		return err
	}

	if err := l.submit(ctx, adminID, target, leave.DecisionActionReject, reason); err != nil {
		return err
	}

	l.drafts.Delete(key)
	return nil
}

// UpdateRejectDraft implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateRejectDraft(ctx context.Context, adminID string, req leave.UpdateRejectDraftRequest) leave.RejectDraftState {
	state := evaluateDraft(req.EmployeeID, req.LeaveRequestID, req.Reason)

	key := draftKey{adminID: adminID, employeeID: req.EmployeeID, leaveRequestID: req.LeaveRequestID}
	l.drafts.Put(key, state.Reason)

	return state
}

// DiscardRejectDraft implements leave.LeaveService.
func (l *LeaveServiceImpl) DiscardRejectDraft(ctx context.Context, adminID string, employeeID, leaveRequestID string) {
	l.drafts.Delete(draftKey{adminID: adminID, employeeID: employeeID, leaveRequestID: leaveRequestID})
}

// ListDecisions implements leave.LeaveService.
func (l *LeaveServiceImpl) ListDecisions(ctx context.Context, adminID string) (leave.DecisionLogResponse, error) {
	decisions, err := l.DecisionRepository.GetByAdminID(ctx, adminID)
	if err != nil {
		return leave.DecisionLogResponse{}, fmt.Errorf("failed to list decisions: %w", err)
	}

	stats, err := l.DecisionRepository.GetStats(ctx, adminID)
	if err != nil {
		return leave.DecisionLogResponse{}, fmt.Errorf("failed to get decision stats: %w", err)
	}

	responses := make([]leave.DecisionResponse, 0, len(decisions))
	for _, d := range decisions {
		responses = append(responses, leave.DecisionResponse{
			ID:             d.ID,
			EmployeeID:     d.EmployeeID,
			LeaveRequestID: d.LeaveRequestID,
			Action:         string(d.Action),
			Reason:         d.Reason,
			DecidedAt:      d.DecidedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return leave.DecisionLogResponse{
		ApprovedCount: stats.ApprovedCount,
		RejectedCount: stats.RejectedCount,
		Decisions:     responses,
	}, nil
}
