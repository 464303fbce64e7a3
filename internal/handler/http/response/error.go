package response

import (
	"errors"
	"net/http"

	"github.com/atlas-hris/leave-console-go/internal/domain/auth"
	"github.com/atlas-hris/leave-console-go/internal/domain/leave"
	"github.com/atlas-hris/leave-console-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrRejectReasonRequired):
		ValidationError(w, map[string]string{
			"reject_reason": "Reject reason is required",
		})
	case errors.Is(err, leave.ErrUpstreamUnavailable):
		BadGateway(w, "HR API request failed, please retry")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
