package leave

import "github.com/atlas-hris/leave-console-go/internal/pkg/validator"

// RejectReasonWordLimit caps rejection remarks at 20 whitespace-separated
// words; longer drafts are truncated, not refused.
const RejectReasonWordLimit = 20

// Columns the request listing can sort on. leave_start_date and
// applied_date compare as calendar instants, days and leave_type_id
// numerically, the rest as case-sensitive strings.
var SortableColumns = []string{
	"employee_name",
	"leave_type_name",
	"leave_type_id",
	"status",
	"leave_start_date",
	"applied_date",
	"days",
}

type ListRequestsFilter struct {
	Search    string `json:"search"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
	Page      int    `json:"page"`
}

func (f *ListRequestsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, SortableColumns) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of the sortable columns",
		})
	}

	if f.SortOrder != "" && f.SortOrder != "asc" && f.SortOrder != "desc" {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be 'asc' or 'desc'",
		})
	}

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListBalancesFilter struct {
	Search string `json:"search"`
	Page   int    `json:"page"`
}

type ApproveRequestRequest struct {
	EmployeeID     string `json:"employee_id"`
	LeaveRequestID string `json:"leave_request_id"`
}

func (r *ApproveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	// Matching by employee alone is unsafe when an employee has several
	// open requests, so the request id is mandatory.
	if validator.IsEmpty(r.LeaveRequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_request_id",
			Message: "leave_request_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectRequestRequest struct {
	EmployeeID     string  `json:"employee_id"`
	LeaveRequestID string  `json:"leave_request_id"`
	Reason         *string `json:"reject_reason,omitempty"`
}

func (r *RejectRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.LeaveRequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_request_id",
			Message: "leave_request_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRejectDraftRequest struct {
	EmployeeID     string `json:"employee_id"`
	LeaveRequestID string `json:"leave_request_id"`
	Reason         string `json:"reject_reason"`
}

func (r *UpdateRejectDraftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.LeaveRequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_request_id",
			Message: "leave_request_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	LeaveRequestID string  `json:"leave_request_id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	LeaveTypeID    int     `json:"leave_type_id"`
	LeaveTypeName  string  `json:"leave_type_name"`
	StartDate      string  `json:"leave_start_date"`
	EndDate        string  `json:"leave_end_date"`
	AppliedDate    string  `json:"applied_date"`
	Days           float64 `json:"days"`
	Duration       int     `json:"duration"`
	SessionTypeID  string  `json:"session_type_id"`
	Reason         string  `json:"reason_of_leave"`
	Status         string  `json:"status"`
	Actionable     bool    `json:"actionable"`
}

type ListLeaveRequestsResponse struct {
	TotalCount int                    `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
	Showing    string                 `json:"showing"`
	Requests   []LeaveRequestResponse `json:"requests"`
}

type LeaveBalanceResponse struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	AvailableSL    float64 `json:"available_sl"`
	AvailableCL    float64 `json:"available_cl"`
	AvailablePL    float64 `json:"available_pl"`
	TotalLeave     float64 `json:"total_leave"`
	RemainingLeave float64 `json:"remaining_leave"`
}

type ListLeaveBalancesResponse struct {
	TotalCount int                    `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
	Balances   []LeaveBalanceResponse `json:"balances"`
}

// RejectDraftState is what the reject-reason dialog renders: the current
// draft text, its word count, and the inline error, if any.
type RejectDraftState struct {
	EmployeeID     string `json:"employee_id"`
	LeaveRequestID string `json:"leave_request_id"`
	Reason         string `json:"reject_reason"`
	Words          int    `json:"word_count"`
	Error          string `json:"error,omitempty"`
}

type DecisionLogResponse struct {
	ApprovedCount int                `json:"approved_count"`
	RejectedCount int                `json:"rejected_count"`
	Decisions     []DecisionResponse `json:"decisions"`
}

type DecisionResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	LeaveRequestID string `json:"leave_request_id"`
	Action         string `json:"action"`
	Reason         string `json:"reason,omitempty"`
	DecidedAt      string `json:"decided_at"`
}
