package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveRequestSelect = `
		SELECT lr.id, lr.employee_id, e.employee_code, e.first_name || ' ' || e.last_name,
			COALESCE(d.name, ''), lr.type, lr.start_date, lr.end_date, lr.duration, lr.status,
			lr.reason, lr.approved_by,
			CASE WHEN ap.id IS NULL THEN NULL ELSE ap.first_name || ' ' || ap.last_name END,
			lr.approved_at, lr.created_at, lr.updated_at
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		LEFT JOIN employees ap ON ap.user_id = lr.approved_by`

func scanLeaveRequest(row rowScanner) (leave.Request, error) {
	var r leave.Request
	var leaveType, status string

	err := row.Scan(
		&r.ID,
		&r.EmployeeID,
		&r.EmployeeCode,
		&r.EmployeeName,
		&r.DepartmentName,
		&leaveType,
		&r.StartDate,
		&r.EndDate,
		&r.Duration,
		&status,
		&r.Reason,
		&r.ApprovedBy,
		&r.ApproverName,
		&r.ApprovedAt,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return leave.Request{}, err
	}

	r.Type = leave.Type(leaveType)
	r.Status = leave.Status(status)
	return r, nil
}

func leaveWhere(q report.LeaveQuery) *where {
	w := newWhere()
	if q.StartIn != nil {
		w.add("lr.start_date >= ?", q.StartIn.Start)
		w.add("lr.start_date < ?", q.StartIn.EndExclusive())
	}
	if q.EmployeeID != nil {
		w.add("lr.employee_id = ?", *q.EmployeeID)
	}
	if q.Status != nil {
		w.add("lr.status = ?", string(*q.Status))
	}
	if q.Type != nil {
		w.add("lr.type = ?", string(*q.Type))
	}
	return w
}

type leaveRequestRepositoryImpl struct {
	db database.Querier
}

func NewLeaveRequestRepository(db database.Querier) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	w := leaveWhere(report.LeaveQuery{Status: filter.Status, EmployeeID: filter.EmployeeID})
	query := leaveRequestSelect + w.clause() + "\n\t\tORDER BY lr.created_at DESC"

	rows, err := q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return requests, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanLeaveRequest(q.QueryRow(ctx, leaveRequestSelect+" WHERE lr.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return req, nil
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, type, start_date, end_date, duration, status, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	`
	_, err := q.Exec(ctx, query,
		request.ID,
		request.EmployeeID,
		string(request.Type),
		request.StartDate,
		request.EndDate,
		request.Duration,
		string(request.Status),
		request.Reason,
		request.CreatedAt,
	)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return r.GetByID(ctx, request.ID)
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, request leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET type = $2, start_date = $3, end_date = $4, duration = $5, reason = $6, updated_at = $7
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		request.ID,
		string(request.Type),
		request.StartDate,
		request.EndDate,
		request.Duration,
		request.Reason,
		request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, approvedBy *string, approvedAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, approved_by = $3, approved_at = $4, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, id, string(status), approvedBy, approvedAt)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}
