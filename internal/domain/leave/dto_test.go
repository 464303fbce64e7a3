package leave

import (
	"errors"
	"testing"

	"github.com/atlas-hris/leave-console-go/internal/pkg/validator"
)

func TestListRequestsFilterValidate(t *testing.T) {
	cases := []struct {
		name    string
		filter  ListRequestsFilter
		wantErr bool
	}{
		{"empty filter", ListRequestsFilter{}, false},
		{"valid sort", ListRequestsFilter{SortBy: "employee_name", SortOrder: "asc"}, false},
		{"valid date sort", ListRequestsFilter{SortBy: "leave_start_date", SortOrder: "desc"}, false},
		{"unknown column", ListRequestsFilter{SortBy: "salary"}, true},
		{"bad order", ListRequestsFilter{SortBy: "status", SortOrder: "sideways"}, true},
		{"negative page", ListRequestsFilter{Page: -1}, true},
	}
	for _, c := range cases {
		err := c.filter.Validate()
		if (err != nil) != c.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", c.name, err, c.wantErr)
		}
	}
}

func TestApproveRequestRequestValidate(t *testing.T) {
	req := ApproveRequestRequest{EmployeeID: "7", LeaveRequestID: "42"}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	missing := ApproveRequestRequest{EmployeeID: "7"}
	err := missing.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error for missing leave_request_id")
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Validate() error type = %T, want ValidationErrors", err)
	}
	if _, ok := verrs.ToMap()["leave_request_id"]; !ok {
		t.Errorf("validation errors missing leave_request_id field: %v", verrs)
	}
}

func TestRejectRequestRequestValidateAllowsLongReason(t *testing.T) {
	// Over-limit reasons are truncated at submission, never rejected here.
	long := "one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen sixteen seventeen eighteen nineteen twenty twentyone"
	req := RejectRequestRequest{EmployeeID: "7", LeaveRequestID: "42", Reason: &long}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil for long reason", err)
	}
}

func TestRejectRequestRequestValidateRequiresIDs(t *testing.T) {
	req := RejectRequestRequest{}
	err := req.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Validate() error type = %T, want ValidationErrors", err)
	}
	fields := verrs.ToMap()
	if _, ok := fields["employee_id"]; !ok {
		t.Errorf("validation errors missing employee_id field: %v", verrs)
	}
	if _, ok := fields["leave_request_id"]; !ok {
		t.Errorf("validation errors missing leave_request_id field: %v", verrs)
	}
}
