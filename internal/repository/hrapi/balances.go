package hrapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/atlas-hris/leave-console-go/internal/domain/leave"
)

const leaveBalancesPath = "/employeeAvailableLeaveList"

type leaveBalanceRecord struct {
	EmployeeID     flexString `json:"employee_id"`
	EmployeeName   string     `json:"employee_name"`
	AvailableSL    flexNumber `json:"available_sl"`
	AvailableCL    flexNumber `json:"available_cl"`
	AvailablePL    flexNumber `json:"available_pl"`
	TotalLeave     flexNumber `json:"total_leave"`
	RemainingLeave flexNumber `json:"remaining_leave"`
}

// EmployeeLeaveBalances implements leave.BalanceSource with the same
// envelope tolerance as the request loader.
func (c *Client) EmployeeLeaveBalances(ctx context.Context, adminID string) ([]leave.EmployeeLeaveBalance, error) {
	query := url.Values{}
	query.Set("admin_id", adminID)

	body, err := c.get(ctx, leaveBalancesPath, query)
	if err != nil {
		return nil, err
	}

	shape, items := decodeEnvelope(body, "leave_balances")
	if shape == ShapeUnknown {
		return []leave.EmployeeLeaveBalance{}, nil
	}

	var records []leaveBalanceRecord
	if err := json.Unmarshal(items, &records); err != nil {
		return nil, fmt.Errorf("decode leave balances: %w", err)
	}

	balances := make([]leave.EmployeeLeaveBalance, 0, len(records))
	for _, rec := range records {
		balances = append(balances, leave.EmployeeLeaveBalance{
			EmployeeID:     rec.EmployeeID.String(),
			EmployeeName:   rec.EmployeeName,
			AvailableSL:    rec.AvailableSL.Float(),
			AvailableCL:    rec.AvailableCL.Float(),
			AvailablePL:    rec.AvailablePL.Float(),
			TotalLeave:     rec.TotalLeave.Float(),
			RemainingLeave: rec.RemainingLeave.Float(),
		})
	}
	return balances, nil
}
