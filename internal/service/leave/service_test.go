package leave

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workline-hq/attendance-backend-go/internal/domain/employee"
	"github.com/workline-hq/attendance-backend-go/internal/domain/leave"
)

const (
	testEmployeeID = "8f14e45f-ceea-4e77-8fa0-22e65d9a7c01"
	testAdminID    = "9b74c989-7cb9-4f29-bb2d-37a7d2f5e802"
)

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest), nextID: 1}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	request.ID = "req-" + strconv.Itoa(f.nextID)
	f.nextID++
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus, reviewedBy *string, reviewedAt *time.Time) error {
	request, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	request.Status = status
	request.ReviewedBy = reviewedBy
	request.ReviewedAt = reviewedAt
	f.requests[id] = request
	return nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if request.EmployeeID == employeeID {
			out = append(out, request)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if request.Status == leave.LeaveRequestStatusPending {
			out = append(out, request)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) GetApprovedDates(ctx context.Context, employeeID string, from, to time.Time) ([]time.Time, error) {
	seen := make(map[string]bool)
	var out []time.Time
	for _, request := range f.requests {
		if request.EmployeeID != employeeID || request.Status != leave.LeaveRequestStatusApproved {
			continue
		}
		key := request.LeaveDate.Format("2006-01-02")
		if seen[key] || request.LeaveDate.Before(from) || request.LeaveDate.After(to) {
			continue
		}
		seen[key] = true
		out = append(out, request.LeaveDate)
	}
	return out, nil
}

type fakeEmployeeRepo struct{}

func (fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if id != testEmployeeID && id != testAdminID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id, FullName: "Asha Verma"}, nil
}

func (fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (fakeEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func authedContext(t *testing.T, employeeID string, isAdmin bool) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"is_admin":    isAdmin,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo *fakeLeaveRepo) leave.LeaveService {
	return NewLeaveService(repo, fakeEmployeeRepo{}, time.UTC)
}

func TestApply(t *testing.T) {
	ctx := authedContext(t, testEmployeeID, false)

	t.Run("creates a pending request", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRepo())

		resp, err := svc.Apply(ctx, leave.ApplyLeaveRequest{LeaveDate: "2025-09-15", Type: "sick"})
		require.NoError(t, err)
		assert.Equal(t, testEmployeeID, resp.EmployeeID)
		assert.Equal(t, "2025-09-15", resp.LeaveDate)
		assert.Equal(t, string(leave.LeaveRequestStatusPending), resp.Status)
	})

	t.Run("allows duplicate requests for the same date", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRepo())

		_, err := svc.Apply(ctx, leave.ApplyLeaveRequest{LeaveDate: "2025-09-15", Type: "sick"})
		require.NoError(t, err)
		_, err = svc.Apply(ctx, leave.ApplyLeaveRequest{LeaveDate: "2025-09-15", Type: "casual"})
		require.NoError(t, err)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRepo())

		_, err := svc.Apply(ctx, leave.ApplyLeaveRequest{LeaveDate: "15-09-2025", Type: "sick"})
		assert.Error(t, err)
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRepo())

		_, err := svc.Apply(ctx, leave.ApplyLeaveRequest{LeaveDate: "2025-09-15", Type: "sabbatical"})
		assert.Error(t, err)
	})
}

func TestReview(t *testing.T) {
	employeeCtx := authedContext(t, testEmployeeID, false)
	adminCtx := authedContext(t, testAdminID, true)

	apply := func(t *testing.T, svc leave.LeaveService) string {
		t.Helper()
		resp, err := svc.Apply(employeeCtx, leave.ApplyLeaveRequest{LeaveDate: "2025-09-15", Type: "sick"})
		require.NoError(t, err)
		return resp.ID
	}

	t.Run("admin approves a pending request", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRepo())
		id := apply(t, svc)

		resp, err := svc.Approve(adminCtx, id)
		require.NoError(t, err)
		assert.Equal(t, string(leave.LeaveRequestStatusApproved), resp.Status)
		require.NotNil(t, resp.ReviewedBy)
		assert.Equal(t, testAdminID, *resp.ReviewedBy)
	})

	t.Run("admin rejects a pending request", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRepo())
		id := apply(t, svc)

		resp, err := svc.Reject(adminCtx, id)
		require.NoError(t, err)
		assert.Equal(t, string(leave.LeaveRequestStatusRejected), resp.Status)
	})

	t.Run("non-admin cannot review", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRepo())
		id := apply(t, svc)

		_, err := svc.Approve(employeeCtx, id)
		assert.ErrorIs(t, err, employee.ErrAdminOnly)
	})

	t.Run("processed requests are terminal", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRepo())
		id := apply(t, svc)

		_, err := svc.Approve(adminCtx, id)
		require.NoError(t, err)

		_, err = svc.Reject(adminCtx, id)
		assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	})

	t.Run("unknown request", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRepo())

		_, err := svc.Approve(adminCtx, "missing")
		assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	})
}

func TestGetPendingRequests(t *testing.T) {
	employeeCtx := authedContext(t, testEmployeeID, false)
	adminCtx := authedContext(t, testAdminID, true)

	svc := newTestService(newFakeLeaveRepo())
	_, err := svc.Apply(employeeCtx, leave.ApplyLeaveRequest{LeaveDate: "2025-09-15", Type: "sick"})
	require.NoError(t, err)

	t.Run("admin sees pending requests", func(t *testing.T) {
		requests, err := svc.GetPendingRequests(adminCtx)
		require.NoError(t, err)
		assert.Len(t, requests, 1)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		_, err := svc.GetPendingRequests(employeeCtx)
		assert.ErrorIs(t, err, employee.ErrAdminOnly)
	})
}

func TestGetMyRequests(t *testing.T) {
	ctx := authedContext(t, testEmployeeID, false)

	svc := newTestService(newFakeLeaveRepo())
	_, err := svc.Apply(ctx, leave.ApplyLeaveRequest{LeaveDate: "2025-09-15", Type: "sick"})
	require.NoError(t, err)
	_, err = svc.Apply(ctx, leave.ApplyLeaveRequest{LeaveDate: "2025-09-16", Type: "casual"})
	require.NoError(t, err)

	requests, err := svc.GetMyRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, requests, 2)
}
