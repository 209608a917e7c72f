package training

import "context"

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]TrainingResponse, error)
	Create(ctx context.Context, callerID string, req CreateTrainingRequest) (TrainingResponse, error)
	Update(ctx context.Context, callerID string, req UpdateTrainingRequest) (TrainingResponse, error)
	Delete(ctx context.Context, callerID, id string) error
	Assign(ctx context.Context, callerID string, req AssignRequest) error
	UpdateStatus(ctx context.Context, callerID string, req UpdateStatusRequest) (AssignmentResponse, error)
}
