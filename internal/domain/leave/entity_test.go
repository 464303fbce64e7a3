package leave

import "testing"

func TestStatusFromCode(t *testing.T) {
	cases := []struct {
		code int
		want Status
	}{
		{1, StatusPending},
		{2, StatusApproved},
		{3, StatusRejected},
		{0, StatusUnknown},
		{4, StatusUnknown},
		{-1, StatusUnknown},
		{99, StatusUnknown},
	}
	for _, c := range cases {
		got := StatusFromCode(c.code)
		if got != c.want {
			t.Errorf("StatusFromCode(%d) = %q, want %q", c.code, got, c.want)
		}
	}
}
