package leave

import (
	"context"
)

// LeaveService defines business logic for the leave ledger
type LeaveService interface {
	// Apply creates a pending request for the caller. Duplicate requests
	// for the same date are permitted by the ledger.
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveRequestResponse, error)

	// Approve moves a pending request to approved (administrator only).
	Approve(ctx context.Context, requestID string) (LeaveRequestResponse, error)

	// Reject moves a pending request to rejected (administrator only).
	Reject(ctx context.Context, requestID string) (LeaveRequestResponse, error)

	// GetMyRequests returns the caller's requests, newest first.
	GetMyRequests(ctx context.Context) ([]LeaveRequestResponse, error)

	// GetPendingRequests returns all pending requests (administrator only).
	GetPendingRequests(ctx context.Context) ([]LeaveRequestResponse, error)
}
