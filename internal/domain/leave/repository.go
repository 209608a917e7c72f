package leave

import (
	"context"
	"time"
)

// RequestRepository - interface for leave_requests table
type RequestRepository interface {
	List(ctx context.Context, filter ListFilter) ([]Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	Create(ctx context.Context, request Request) (Request, error)
	Update(ctx context.Context, request Request) error
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy *string, approvedAt *time.Time) error
}
