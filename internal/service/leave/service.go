package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workline-hq/attendance-backend-go/internal/domain/employee"
	"github.com/workline-hq/attendance-backend-go/internal/domain/leave"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
	loc          *time.Location
}

func NewLeaveService(
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		loc:          loc,
	}
}

func claimsFromContext(ctx context.Context) (employeeID string, isAdmin bool, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", false, employee.ErrEmployeeNotFound
	}

	isAdmin, _ = claims["is_admin"].(bool)

	return employeeID, isAdmin, nil
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	parsed, _ := validator.IsValidDate(req.LeaveDate)
	leaveDate := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, s.loc)

	request := leave.LeaveRequest{
		EmployeeID: employeeID,
		LeaveDate:  leaveDate,
		Type:       leave.LeaveType(req.Type),
		Status:     leave.LeaveRequestStatusPending,
	}

	created, err := s.leaveRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToResponse(created), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	return s.review(ctx, requestID, leave.LeaveRequestStatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	return s.review(ctx, requestID, leave.LeaveRequestStatusRejected)
}

// review performs the administrator-only pending -> approved/rejected
// transition. Approved and rejected are terminal; anything already processed
// stays as it is.
func (s *LeaveServiceImpl) review(ctx context.Context, requestID string, status leave.LeaveRequestStatus) (leave.LeaveRequestResponse, error) {
	reviewerID, isAdmin, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !isAdmin {
		return leave.LeaveRequestResponse{}, employee.ErrAdminOnly
	}

	request, err := s.leaveRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	reviewedAt := time.Now()
	if err := s.leaveRepo.UpdateStatus(ctx, requestID, status, &reviewerID, &reviewedAt); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	request.Status = status
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &reviewedAt

	return leave.ToResponse(request), nil
}

// GetMyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	employeeID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return toResponses(requests), nil
}

// GetPendingRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) GetPendingRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	_, isAdmin, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, employee.ErrAdminOnly
	}

	requests, err := s.leaveRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave requests: %w", err)
	}

	return toResponses(requests), nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, leave.ToResponse(request))
	}
	return responses
}
