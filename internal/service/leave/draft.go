package leave

import (
	"strings"
	"sync"

	"github.com/atlas-hris/leave-console-go/internal/domain/leave"
	"github.com/atlas-hris/leave-console-go/internal/pkg/validator"
)

// A reject-reason draft lives only while its dialog is open: it is keyed by
// the admin, employee and request it belongs to, and discarded on close or
// on a confirmed rejection.
type draftKey struct {
	adminID        string
	employeeID     string
	leaveRequestID string
}

type draftStore struct {
	mu     sync.Mutex
	drafts map[draftKey]string
}

func newDraftStore() *draftStore {
	return &draftStore{drafts: make(map[draftKey]string)}
}

func (s *draftStore) Get(key draftKey) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reason, ok := s.drafts[key]
	return reason, ok
}

func (s *draftStore) Put(key draftKey, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[key] = reason
}

func (s *draftStore) Delete(key draftKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, key)
}

// evaluateDraft applies the remark rules: the reason must be non-empty
// after trimming and at most 20 words. Over-long input is truncated to the
// first 20 words and flagged, never refused; truncation is idempotent.
func evaluateDraft(employeeID, leaveRequestID, reason string) leave.RejectDraftState {
	state := leave.RejectDraftState{
		EmployeeID:     employeeID,
		LeaveRequestID: leaveRequestID,
	}

	if validator.WordCount(reason) > leave.RejectReasonWordLimit {
		reason = validator.TruncateWords(reason, leave.RejectReasonWordLimit)
		state.Error = "Reject reason cannot exceed 20 words"
	} else if validator.IsEmpty(reason) {
		state.Error = "Reject reason is required"
	}

	state.Reason = reason
	state.Words = validator.WordCount(reason)
	return state
}

// submissionReason normalizes a reason for the upstream payload: trimmed,
// and capped at the word limit.
func submissionReason(reason string) string {
	reason = strings.TrimSpace(reason)
	return validator.TruncateWords(reason, leave.RejectReasonWordLimit)
}
