package leave

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
	StatusUnknown  Status = "Unknown"
)

// Upstream status codes carried on leave_status_id.
const (
	StatusCodePending  = 1
	StatusCodeApproved = 2
	StatusCodeRejected = 3
)

// StatusFromCode maps an upstream status code to its label. Codes outside
// the known set become Unknown rather than an error.
func StatusFromCode(code int) Status {
	switch code {
	case StatusCodePending:
		return StatusPending
	case StatusCodeApproved:
		return StatusApproved
	case StatusCodeRejected:
		return StatusRejected
	default:
		return StatusUnknown
	}
}

// LeaveRequest is one normalized upstream leave request. It is ephemeral:
// the whole set is re-fetched after every mutation, nothing is persisted
// locally. Dates stay in their wire form (DD-MM-YYYY or YYYY-MM-DD) and are
// disambiguated where they are compared or re-serialized.
type LeaveRequest struct {
	LeaveRequestID string
	EmployeeID     string
	EmployeeName   string
	AdminID        string

	LeaveTypeID   int
	LeaveTypeName string

	StartDate   string
	EndDate     string
	AppliedDate string
	Days        float64

	SessionTypeID string
	Reason        string

	StatusCode int
	Status     Status
}

// EmployeeLeaveBalance is read-only secondary information, fetched
// independently of requests and joined only by the shared name filter.
type EmployeeLeaveBalance struct {
	EmployeeID   string
	EmployeeName string

	AvailableSL    float64
	AvailableCL    float64
	AvailablePL    float64
	TotalLeave     float64
	RemainingLeave float64
}

type DecisionAction string

const (
	DecisionActionApprove DecisionAction = "approve"
	DecisionActionReject  DecisionAction = "reject"
)

// Decision is one audited approval outcome, stored locally after the
// upstream accepts it.
type Decision struct {
	ID             string
	AdminID        string
	EmployeeID     string
	LeaveRequestID string
	Action         DecisionAction
	Reason         string
	DecidedAt      time.Time
}

// DecisionStats is the running approve/reject tally per admin, maintained
// alongside the audit rows.
type DecisionStats struct {
	AdminID       string
	ApprovedCount int
	RejectedCount int
}

// DecisionPayload is the wire payload for the upstream approval endpoint.
// Dates are always DD-MM-YYYY regardless of how they arrived.
type DecisionPayload struct {
	AdminID        string `json:"admin_id"`
	EmployeeID     string `json:"employee_id"`
	LeaveTypeID    int    `json:"leave_type_id"`
	ApprovalStatus int    `json:"approval_status"`
	LeaveRequestID string `json:"leave_request_id"`
	LeaveStartDate string `json:"leave_start_date"`
	LeaveEndDate   string `json:"leave_end_date"`
	RejectReason   string `json:"reject_reason"`
	SessionTypeID  string `json:"session_type_id"`
}
