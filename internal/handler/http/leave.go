package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/atlas-hris/leave-console-go/internal/domain/leave"
	"github.com/atlas-hris/leave-console-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type LeaveHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	ListBalances(w http.ResponseWriter, r *http.Request)

	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)

	UpdateRejectDraft(w http.ResponseWriter, r *http.Request)
	DiscardRejectDraft(w http.ResponseWriter, r *http.Request)

	ListDecisions(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// adminIDFromContext pulls the admin id out of the verified JWT claims.
func adminIDFromContext(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	adminID, ok := claims["admin_id"].(string)
	return adminID, ok && adminID != ""
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "admin_id claim is missing or invalid")
		return
	}

	// Parse query parameters
	filter := leave.ListRequestsFilter{}

	filter.Search = r.URL.Query().Get("search")
	filter.SortBy = r.URL.Query().Get("sort_by")
	filter.SortOrder = r.URL.Query().Get("sort_order")

	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	filter.Page = page

	refresh := r.URL.Query().Get("refresh") == "true"

	listResponse, err := l.leaveService.ListRequests(r.Context(), adminID, filter, refresh)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// ListBalances implements LeaveHandler.
func (l *LeaveHandlerImpl) ListBalances(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "admin_id claim is missing or invalid")
		return
	}

	filter := leave.ListBalancesFilter{}
	filter.Search = r.URL.Query().Get("search")

	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	filter.Page = page

	refresh := r.URL.Query().Get("refresh") == "true"

	listResponse, err := l.leaveService.ListBalances(r.Context(), adminID, filter, refresh)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, listResponse)
}

// ApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "admin_id claim is missing or invalid")
		return
	}

	leaveRequestID := chi.URLParam(r, "id")
	if leaveRequestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	var req leave.ApproveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ApproveRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.LeaveRequestID = leaveRequestID

	if err := l.leaveService.ApproveRequest(r.Context(), adminID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", nil)
}

// RejectRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "admin_id claim is missing or invalid")
		return
	}

	leaveRequestID := chi.URLParam(r, "id")
	if leaveRequestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	var req leave.RejectRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RejectRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.LeaveRequestID = leaveRequestID

	if err := l.leaveService.RejectRequest(r.Context(), adminID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected successfully", nil)
}

// UpdateRejectDraft implements LeaveHandler.
func (l *LeaveHandlerImpl) UpdateRejectDraft(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "admin_id claim is missing or invalid")
		return
	}

	leaveRequestID := chi.URLParam(r, "id")
	if leaveRequestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	var req leave.UpdateRejectDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateRejectDraft decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.LeaveRequestID = leaveRequestID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	state := l.leaveService.UpdateRejectDraft(r.Context(), adminID, req)
	response.Success(w, state)
}

// DiscardRejectDraft implements LeaveHandler.
func (l *LeaveHandlerImpl) DiscardRejectDraft(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "admin_id claim is missing or invalid")
		return
	}

	leaveRequestID := chi.URLParam(r, "id")
	if leaveRequestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	l.leaveService.DiscardRejectDraft(r.Context(), adminID, employeeID, leaveRequestID)
	response.SuccessWithMessage(w, "Reject reason draft discarded", nil)
}

// ListDecisions implements LeaveHandler.
func (l *LeaveHandlerImpl) ListDecisions(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "admin_id claim is missing or invalid")
		return
	}

	decisions, err := l.leaveService.ListDecisions(r.Context(), adminID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, decisions)
}
