package hrapi

import (
	"context"
	"encoding/json"

	"github.com/atlas-hris/leave-console-go/internal/domain/leave"
)

const approvalPath = "/approvalOfEmployeeLeaveRequestByAdmin"

// SubmitDecision implements leave.DecisionSubmitter. The payload carries
// approval_status 2 (approve) or 3 (reject) and DD-MM-YYYY dates; the
// service builds it, this method only ships it.
func (c *Client) SubmitDecision(ctx context.Context, payload leave.DecisionPayload) (string, error) {
	body, err := c.post(ctx, approvalPath, payload)
	if err != nil {
		return "", err
	}

	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		// The decision went through; a malformed ack body is not a failure.
		return "", nil
	}
	return parsed.Message, nil
}
