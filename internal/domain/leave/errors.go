package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("Leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("Leave request already processed")
	ErrRejectReasonRequired         = errors.New("Reject reason required")
	ErrUpstreamUnavailable          = errors.New("HR API unavailable")
)
