package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workline-hq/attendance-backend-go/internal/domain/leave"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository. Duplicate requests for the
// same (employee, date) are permitted; the table carries no uniqueness
// constraint on the pair.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, leave_date, leave_type, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID,
		request.LeaveDate,
		request.Type,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_date, leave_type, status,
			   reviewed_by, reviewed_at, created_at, updated_at
		FROM leave_requests
		WHERE id = $1
	`

	var request leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.EmployeeID, &request.LeaveDate, &request.Type, &request.Status,
		&request.ReviewedBy, &request.ReviewedAt, &request.CreatedAt, &request.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return request, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus, reviewedBy *string, reviewedAt *time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, reviewedBy, reviewedAt)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	query := `
		SELECT id, employee_id, leave_date, leave_type, status,
			   reviewed_by, reviewed_at, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`
	return r.queryRequests(ctx, query, employeeID)
}

// ListPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	query := `
		SELECT lr.id, lr.employee_id, lr.leave_date, lr.leave_type, lr.status,
			   lr.reviewed_by, lr.reviewed_at, lr.created_at, lr.updated_at, e.full_name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.status = 'pending'
		ORDER BY lr.created_at
	`

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var request leave.LeaveRequest
		err := rows.Scan(
			&request.ID, &request.EmployeeID, &request.LeaveDate, &request.Type, &request.Status,
			&request.ReviewedBy, &request.ReviewedAt, &request.CreatedAt, &request.UpdatedAt,
			&request.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}

// GetApprovedDates implements leave.LeaveRequestRepository. DISTINCT keeps
// duplicate approved requests for the same date from double-counting in
// payroll.
func (r *leaveRequestRepository) GetApprovedDates(ctx context.Context, employeeID string, from, to time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT leave_date
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = 'approved'
		  AND leave_date >= $2
		  AND leave_date <= $3
		ORDER BY leave_date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved leave dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan leave date: %w", err)
		}
		dates = append(dates, date)
	}

	return dates, rows.Err()
}

func (r *leaveRequestRepository) queryRequests(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var request leave.LeaveRequest
		err := rows.Scan(
			&request.ID, &request.EmployeeID, &request.LeaveDate, &request.Type, &request.Status,
			&request.ReviewedBy, &request.ReviewedAt, &request.CreatedAt, &request.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}
