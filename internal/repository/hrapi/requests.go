package hrapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/atlas-hris/leave-console-go/internal/domain/leave"
)

const leaveRequestsPath = "/leaveRequestsByAdmin"

// leaveRequestRecord mirrors one upstream leave request before defaulting.
// Pointer fields distinguish absent from zero where the default is not zero.
type leaveRequestRecord struct {
	LeaveRequestID flexString  `json:"leave_request_id"`
	EmployeeID     flexString  `json:"employee_id"`
	EmployeeName   string      `json:"employee_name"`
	AdminID        flexString  `json:"admin_id"`
	LeaveTypeID    flexNumber  `json:"leave_type_id"`
	LeaveTypeName  string      `json:"leave_type_name"`
	LeaveStartDate string      `json:"leave_start_date"`
	LeaveEndDate   string      `json:"leave_end_date"`
	AppliedDate    string      `json:"applied_date"`
	Days           flexNumber  `json:"days"`
	SessionTypeID  flexString  `json:"session_type_id"`
	ReasonOfLeave  string      `json:"reason_of_leave"`
	LeaveStatusID  *flexNumber `json:"leave_status_id"`
}

// LeaveRequestsByAdmin implements leave.RequestSource. The response is
// normalized into flat records: any of the three envelope shapes is
// accepted, missing fields default to "", 0, or Pending, and the numeric
// status code is mapped to its label. An unknown shape yields an empty
// list, not an error.
func (c *Client) LeaveRequestsByAdmin(ctx context.Context, adminID string) ([]leave.LeaveRequest, error) {
	query := url.Values{}
	query.Set("admin_id", adminID)

	body, err := c.get(ctx, leaveRequestsPath, query)
	if err != nil {
		return nil, err
	}

	shape, items := decodeEnvelope(body, "leave_requests")
	if shape == ShapeUnknown {
		return []leave.LeaveRequest{}, nil
	}

	var records []leaveRequestRecord
	if err := json.Unmarshal(items, &records); err != nil {
		return nil, fmt.Errorf("decode leave requests: %w", err)
	}

	requests := make([]leave.LeaveRequest, 0, len(records))
	for _, rec := range records {
		requests = append(requests, normalizeRequest(rec, adminID))
	}
	return requests, nil
}

func normalizeRequest(rec leaveRequestRecord, adminID string) leave.LeaveRequest {
	// Absent status means the request was never acted on.
	statusCode := leave.StatusCodePending
	if rec.LeaveStatusID != nil {
		statusCode = rec.LeaveStatusID.Int()
	}

	recAdminID := rec.AdminID.String()
	if recAdminID == "" {
		recAdminID = adminID
	}

	sessionTypeID := rec.SessionTypeID.String()
	if sessionTypeID == "" {
		sessionTypeID = "1"
	}

	return leave.LeaveRequest{
		LeaveRequestID: rec.LeaveRequestID.String(),
		EmployeeID:     rec.EmployeeID.String(),
		EmployeeName:   rec.EmployeeName,
		AdminID:        recAdminID,
		LeaveTypeID:    rec.LeaveTypeID.Int(),
		LeaveTypeName:  rec.LeaveTypeName,
		StartDate:      rec.LeaveStartDate,
		EndDate:        rec.LeaveEndDate,
		AppliedDate:    rec.AppliedDate,
		Days:           rec.Days.Float(),
		SessionTypeID:  sessionTypeID,
		Reason:         rec.ReasonOfLeave,
		StatusCode:     statusCode,
		Status:         leave.StatusFromCode(statusCode),
	}
}
