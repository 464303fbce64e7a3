package leave

import (
	"math"
	"sort"
	"strings"

	"github.com/atlas-hris/leave-console-go/internal/domain/leave"
	"github.com/atlas-hris/leave-console-go/internal/pkg/validator"
)

// PageSize is the fixed page size of every console listing.
const PageSize = 10

// filterRequests keeps requests whose employee name contains the search
// term, case-insensitively. Only the name is matched.
func filterRequests(requests []leave.LeaveRequest, search string) []leave.LeaveRequest {
	search = strings.TrimSpace(search)
	if search == "" {
		return requests
	}

	needle := strings.ToLower(search)
	filtered := make([]leave.LeaveRequest, 0, len(requests))
	for _, req := range requests {
		if strings.Contains(strings.ToLower(req.EmployeeName), needle) {
			filtered = append(filtered, req)
		}
	}
	return filtered
}

func filterBalances(balances []leave.EmployeeLeaveBalance, search string) []leave.EmployeeLeaveBalance {
	search = strings.TrimSpace(search)
	if search == "" {
		return balances
	}

	needle := strings.ToLower(search)
	filtered := make([]leave.EmployeeLeaveBalance, 0, len(balances))
	for _, bal := range balances {
		if strings.Contains(strings.ToLower(bal.EmployeeName), needle) {
			filtered = append(filtered, bal)
		}
	}
	return filtered
}

// sortKey is one row's value under the active sort column. Rows whose value
// is missing or unparseable sort last regardless of direction.
type sortKey struct {
	str     string
	num     float64
	numeric bool
	valid   bool
}

func requestSortKey(req leave.LeaveRequest, column string) sortKey {
	switch column {
	case "employee_name":
		return sortKey{str: req.EmployeeName, valid: req.EmployeeName != ""}
	case "leave_type_name":
		return sortKey{str: req.LeaveTypeName, valid: req.LeaveTypeName != ""}
	case "status":
		return sortKey{str: string(req.Status), valid: req.Status != ""}
	case "leave_type_id":
		return sortKey{num: float64(req.LeaveTypeID), numeric: true, valid: true}
	case "days":
		return sortKey{num: req.Days, numeric: true, valid: true}
	case "leave_start_date":
		return dateSortKey(req.StartDate)
	case "applied_date":
		return dateSortKey(req.AppliedDate)
	default:
		return sortKey{}
	}
}

func dateSortKey(raw string) sortKey {
	t, ok := validator.ParseFlexibleDate(raw)
	if !ok {
		return sortKey{numeric: true}
	}
	return sortKey{num: float64(t.Unix()), numeric: true, valid: true}
}

// sortRequests orders requests by the given column and direction. The sort
// is stable so ties keep their load order.
func sortRequests(requests []leave.LeaveRequest, sortBy, sortOrder string) []leave.LeaveRequest {
	if sortBy == "" {
		return requests
	}

	sorted := make([]leave.LeaveRequest, len(requests))
	copy(sorted, requests)

	descending := sortOrder == "desc"

	sort.SliceStable(sorted, func(i, j int) bool {
		a := requestSortKey(sorted[i], sortBy)
		b := requestSortKey(sorted[j], sortBy)

		// Invalid values go last whichever way the column is sorted.
		if a.valid != b.valid {
			return a.valid
		}
		if !a.valid {
			return false
		}

		var less bool
		if a.numeric {
			if a.num == b.num {
				return false
			}
			less = a.num < b.num
		} else {
			if a.str == b.str {
				return false
			}
			less = a.str < b.str
		}

		if descending {
			return !less
		}
		return less
	})

	return sorted
}

// totalPages reports how many pages a result set spans. An empty set is one
// empty page, never zero.
func totalPages(count int) int {
	if count == 0 {
		return 1
	}
	return int(math.Ceil(float64(count) / float64(PageSize)))
}

// clampPage normalizes a requested page index into [1, totalPages].
func clampPage(page, pages int) int {
	if page < 1 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}

// pageBounds returns the [start, end) slice bounds of a page.
func pageBounds(count, page int) (int, int) {
	start := (page - 1) * PageSize
	if start > count {
		start = count
	}
	end := start + PageSize
	if end > count {
		end = count
	}
	return start, end
}

// DurationDays is the inclusive day count between two leave dates, each in
// either wire format. Unparseable input yields 0.
func DurationDays(start, end string) int {
	startDate, okStart := validator.ParseFlexibleDate(start)
	endDate, okEnd := validator.ParseFlexibleDate(end)
	if !okStart || !okEnd {
		return 0
	}

	diff := endDate.Sub(startDate)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}
