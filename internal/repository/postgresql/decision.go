package postgresql

import (
	"context"
	"time"

	"github.com/atlas-hris/leave-console-go/internal/domain/leave"
	"github.com/atlas-hris/leave-console-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type decisionRepositoryImpl struct {
	db *database.DB
}

// Record implements leave.DecisionRepository. The audit row and the
// per-admin tally must agree, so both writes share one transaction.
func (r *decisionRepositoryImpl) Record(ctx context.Context, decision leave.Decision) (leave.Decision, error) {
	if decision.ID == "" {
		decision.ID = uuid.NewString()
	}
	if decision.DecidedAt.IsZero() {
		decision.DecidedAt = time.Now().UTC()
	}

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		insertQuery := `
			INSERT INTO approval_decisions (id, admin_id, employee_id, leave_request_id, action, reason, decided_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		_, err := q.Exec(txCtx, insertQuery,
			decision.ID,
			decision.AdminID,
			decision.EmployeeID,
			decision.LeaveRequestID,
			string(decision.Action),
			decision.Reason,
			decision.DecidedAt,
		)
		if err != nil {
			return err
		}

		approved := 0
		rejected := 0
		if decision.Action == leave.DecisionActionApprove {
			approved = 1
		} else {
			rejected = 1
		}

		statsQuery := `
			INSERT INTO approval_decision_stats (admin_id, approved_count, rejected_count)
			VALUES ($1, $2, $3)
			ON CONFLICT (admin_id) DO UPDATE
			SET approved_count = approval_decision_stats.approved_count + EXCLUDED.approved_count,
			    rejected_count = approval_decision_stats.rejected_count + EXCLUDED.rejected_count
		`
		_, err = q.Exec(txCtx, statsQuery, decision.AdminID, approved, rejected)
		return err
	})
	if err != nil {
		return leave.Decision{}, err
	}

	return decision, nil
}

// GetByAdminID implements leave.DecisionRepository.
func (r *decisionRepositoryImpl) GetByAdminID(ctx context.Context, adminID string) ([]leave.Decision, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, admin_id, employee_id, leave_request_id, action, reason, decided_at
		FROM approval_decisions
		WHERE admin_id = $1
		ORDER BY decided_at DESC
	`

	rows, err := q.Query(ctx, query, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decisions []leave.Decision
	for rows.Next() {
		var d leave.Decision
		var action string
		err := rows.Scan(
			&d.ID,
			&d.AdminID,
			&d.EmployeeID,
			&d.LeaveRequestID,
			&action,
			&d.Reason,
			&d.DecidedAt,
		)
		if err != nil {
			return nil, err
		}
		d.Action = leave.DecisionAction(action)
		decisions = append(decisions, d)
	}

	return decisions, rows.Err()
}

// GetStats implements leave.DecisionRepository. An admin with no decisions
// yet gets zero counts, not an error.
func (r *decisionRepositoryImpl) GetStats(ctx context.Context, adminID string) (leave.DecisionStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT admin_id, approved_count, rejected_count
		FROM approval_decision_stats
		WHERE admin_id = $1
	`

	stats := leave.DecisionStats{AdminID: adminID}
	err := q.QueryRow(ctx, query, adminID).Scan(&stats.AdminID, &stats.ApprovedCount, &stats.RejectedCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.DecisionStats{AdminID: adminID}, nil
		}
		return leave.DecisionStats{}, err
	}

	return stats, nil
}

func NewDecisionRepository(db *database.DB) leave.DecisionRepository {
	return &decisionRepositoryImpl{db: db}
}
