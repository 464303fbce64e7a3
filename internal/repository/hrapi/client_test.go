package hrapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/atlas-hris/leave-console-go/internal/config"
	"github.com/atlas-hris/leave-console-go/internal/domain/auth"
	"github.com/atlas-hris/leave-console-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.HRAPIConfig{
		BaseURL: server.URL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	})
}

const requestItem = `{
	"leave_request_id": 42,
	"employee_id": "7",
	"employee_name": "Alice Tan",
	"leave_type_id": "2",
	"leave_type_name": "Casual Leave",
	"leave_start_date": "15-03-2024",
	"leave_end_date": "2024-03-17",
	"applied_date": "01-03-2024",
	"days": "3",
	"reason_of_leave": "family event",
	"leave_status_id": 1
}`

func TestLeaveRequestsByAdmin_EnvelopeShapes(t *testing.T) {
	bodies := map[string]string{
		"bare array":  `[` + requestItem + `]`,
		"data array":  `{"data": [` + requestItem + `]}`,
		"data nested": `{"data": {"leave_requests": [` + requestItem + `]}}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, leaveRequestsPath, r.URL.Path)
				assert.Equal(t, "9", r.URL.Query().Get("admin_id"))
				assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
				w.Write([]byte(body))
			})

			requests, err := client.LeaveRequestsByAdmin(context.Background(), "9")
			require.NoError(t, err)
			require.Len(t, requests, 1)

			req := requests[0]
			assert.Equal(t, "42", req.LeaveRequestID)
			assert.Equal(t, "7", req.EmployeeID)
			assert.Equal(t, "Alice Tan", req.EmployeeName)
			assert.Equal(t, 2, req.LeaveTypeID)
			assert.Equal(t, "15-03-2024", req.StartDate)
			assert.Equal(t, float64(3), req.Days)
			assert.Equal(t, leave.StatusPending, req.Status)
		})
	}
}

func TestLeaveRequestsByAdmin_UnknownShapeYieldsEmptyList(t *testing.T) {
	bodies := []string{
		`{"results": []}`,
		`{"data": "nothing"}`,
		`{"data": {"wrong_key": []}}`,
		`"just a string"`,
	}
	for _, body := range bodies {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})

		requests, err := client.LeaveRequestsByAdmin(context.Background(), "9")
		require.NoError(t, err, "body %s", body)
		assert.Empty(t, requests, "body %s", body)
	}
}

func TestLeaveRequestsByAdmin_Defaulting(t *testing.T) {
	// No status, no session type, no admin id on the record.
	body := `{"data": [{"leave_request_id": "42", "employee_id": "7", "employee_name": "Alice Tan"}]}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})

	requests, err := client.LeaveRequestsByAdmin(context.Background(), "9")
	require.NoError(t, err)
	require.Len(t, requests, 1)

	req := requests[0]
	assert.Equal(t, leave.StatusCodePending, req.StatusCode)
	assert.Equal(t, leave.StatusPending, req.Status)
	assert.Equal(t, "1", req.SessionTypeID)
	assert.Equal(t, "9", req.AdminID)
	assert.Zero(t, req.Days)
}

func TestLeaveRequestsByAdmin_UnknownStatusCode(t *testing.T) {
	body := `[{"leave_request_id": "42", "employee_id": "7", "leave_status_id": 9}]`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})

	requests, err := client.LeaveRequestsByAdmin(context.Background(), "9")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, leave.StatusUnknown, requests[0].Status)
}

func TestLeaveRequestsByAdmin_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "database exploded"}`))
	})

	_, err := client.LeaveRequestsByAdmin(context.Background(), "9")
	require.Error(t, err)
	assert.ErrorIs(t, err, leave.ErrUpstreamUnavailable)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "database exploded", apiErr.Message)
}

func TestEmployeeLeaveBalances_NestedEnvelope(t *testing.T) {
	body := `{"data": {"leave_balances": [{
		"employee_id": 7,
		"employee_name": "Alice Tan",
		"available_sl": "2",
		"available_cl": 3,
		"available_pl": 1.5,
		"total_leave": 12,
		"remaining_leave": "6.5"
	}]}}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, leaveBalancesPath, r.URL.Path)
		w.Write([]byte(body))
	})

	balances, err := client.EmployeeLeaveBalances(context.Background(), "9")
	require.NoError(t, err)
	require.Len(t, balances, 1)

	bal := balances[0]
	assert.Equal(t, "7", bal.EmployeeID)
	assert.Equal(t, 2.0, bal.AvailableSL)
	assert.Equal(t, 3.0, bal.AvailableCL)
	assert.Equal(t, 1.5, bal.AvailablePL)
	assert.Equal(t, 6.5, bal.RemainingLeave)
}

func TestSubmitDecision(t *testing.T) {
	var received leave.DecisionPayload
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, approvalPath, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"message": "Request updated"}`))
	})

	payload := leave.DecisionPayload{
		AdminID:        "9",
		EmployeeID:     "7",
		LeaveTypeID:    2,
		ApprovalStatus: leave.StatusCodeRejected,
		LeaveRequestID: "42",
		LeaveStartDate: "15-03-2024",
		LeaveEndDate:   "17-03-2024",
		RejectReason:   "insufficient balance",
		SessionTypeID:  "1",
	}
	message, err := client.SubmitDecision(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "Request updated", message)
	assert.Equal(t, payload, received)
}

func TestSubmitDecision_MalformedAckIsNotAFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	message, err := client.SubmitDecision(context.Background(), leave.DecisionPayload{LeaveRequestID: "42"})
	assert.NoError(t, err)
	assert.Empty(t, message)
}

func TestVerifyAdmin_Success(t *testing.T) {
	bodies := map[string]string{
		"wrapped": `{"data": {"admin_id": 9, "admin_name": "Root Admin", "email": "admin@example.com"}}`,
		"flat":    `{"admin_id": "9", "admin_name": "Root Admin", "email": "admin@example.com"}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, adminLoginPath, r.URL.Path)
				var creds map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
				assert.Equal(t, "admin@example.com", creds["email"])
				w.Write([]byte(body))
			})

			profile, err := client.VerifyAdmin(context.Background(), "admin@example.com", "secret")
			require.NoError(t, err)
			assert.Equal(t, "9", profile.AdminID)
			assert.Equal(t, "Root Admin", profile.Name)
			assert.Equal(t, "admin@example.com", profile.Email)
		})
	}
}

func TestVerifyAdmin_InvalidCredentials(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"message": "invalid credentials"}`))
		})

		_, err := client.VerifyAdmin(context.Background(), "admin@example.com", "wrong")
		assert.Equal(t, auth.ErrInvalidCredentials, err, "status %d", status)
	}
}

func TestVerifyAdmin_MissingAdminID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {}}`))
	})

	_, err := client.VerifyAdmin(context.Background(), "admin@example.com", "secret")
	assert.True(t, errors.Is(err, auth.ErrInvalidCredentials))
}
