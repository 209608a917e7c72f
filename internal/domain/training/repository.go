package training

import "context"

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Training, error)
	GetByID(ctx context.Context, id string) (Training, error)
	Create(ctx context.Context, t Training) (Training, error)
	Update(ctx context.Context, t Training) error
	Delete(ctx context.Context, id string) error

	// AssignUsers creates NOT_STARTED assignments, skipping users already assigned.
	// It returns the number of new assignments.
	AssignUsers(ctx context.Context, trainingID string, userIDs []string) (int, error)
	ActiveEmployeeUserIDs(ctx context.Context) ([]string, error)
	GetAssignment(ctx context.Context, id string) (Assignment, error)
	UpdateAssignment(ctx context.Context, a Assignment) error
}
