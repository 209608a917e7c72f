package leave

import "context"

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]RequestResponse, error)
	Create(ctx context.Context, callerID string, req CreateRequest) (RequestResponse, error)
	Update(ctx context.Context, callerID string, req UpdateRequest) (RequestResponse, error)
	Approve(ctx context.Context, callerID, id string) error
	Reject(ctx context.Context, callerID, id string) error
	Cancel(ctx context.Context, callerID, id string) error
}
