package training

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/activity"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/training"
	"github.com/cmlabs-hris/hris-report-go/internal/repository/postgresql"
	"github.com/google/uuid"
)

type TrainingServiceImpl struct {
	repo       training.Repository
	transactor postgresql.Transactor
	recorder   activity.Recorder
	now        func() time.Time
}

func NewTrainingService(repo training.Repository, transactor postgresql.Transactor, recorder activity.Recorder) training.Service {
	return &TrainingServiceImpl{
		repo:       repo,
		transactor: transactor,
		recorder:   recorder,
		now:        time.Now,
	}
}

func (s *TrainingServiceImpl) List(ctx context.Context, filter training.ListFilter) ([]training.TrainingResponse, error) {
	trainings, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]training.TrainingResponse, len(trainings))
	for i, t := range trainings {
		responses[i] = training.ToTrainingResponse(t)
	}
	return responses, nil
}

// Create stores the training. A required training is assigned to every active
// employee's user in the same transaction.
func (s *TrainingServiceImpl) Create(ctx context.Context, callerID string, req training.CreateTrainingRequest) (training.TrainingResponse, error) {
	if err := req.Validate(); err != nil {
		return training.TrainingResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return training.TrainingResponse{}, fmt.Errorf("failed to generate training id: %w", err)
	}

	var created training.Training
	var assigned int
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.Create(ctx, training.Training{
			ID:          id.String(),
			Title:       req.Title,
			Description: req.Description,
			Type:        training.Type(req.Type),
			Category:    req.Category,
			Required:    req.Required,
			DueDate:     req.ParsedDueDate(),
			CreatedBy:   &callerID,
			CreatedAt:   s.now().UTC(),
		})
		if err != nil {
			return err
		}
		if !created.Required {
			return nil
		}

		userIDs, err := s.repo.ActiveEmployeeUserIDs(ctx)
		if err != nil {
			return err
		}
		assigned, err = s.repo.AssignUsers(ctx, created.ID, userIDs)
		return err
	})
	if err != nil {
		return training.TrainingResponse{}, err
	}

	s.record(ctx, callerID, activity.ActionCreate, activity.EntityTraining, fmt.Sprintf("Created training %s", created.Title), created.ID)

	resp := training.ToTrainingResponse(created)
	if created.Required {
		resp.Assigned = &assigned
	}
	return resp, nil
}

func (s *TrainingServiceImpl) Update(ctx context.Context, callerID string, req training.UpdateTrainingRequest) (training.TrainingResponse, error) {
	if err := req.Validate(); err != nil {
		return training.TrainingResponse{}, err
	}

	var updated training.Training
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if req.Title != nil {
			current.Title = *req.Title
		}
		if req.Description != nil {
			current.Description = req.Description
		}
		if req.Type != nil {
			current.Type = training.Type(*req.Type)
		}
		if req.Category != nil {
			current.Category = req.Category
		}
		if req.Required != nil {
			current.Required = *req.Required
		}
		if due := req.ParsedDueDate(); due != nil {
			current.DueDate = due
		}
		current.UpdatedAt = s.now().UTC()

		if err := s.repo.Update(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return training.TrainingResponse{}, err
	}

	s.record(ctx, callerID, activity.ActionUpdate, activity.EntityTraining, fmt.Sprintf("Updated training %s", updated.Title), updated.ID)
	return training.ToTrainingResponse(updated), nil
}

func (s *TrainingServiceImpl) Delete(ctx context.Context, callerID, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ctx, callerID, activity.ActionDelete, activity.EntityTraining, "Deleted training", id)
	return nil
}

// Assign is idempotent: assigning an already assigned user changes nothing.
func (s *TrainingServiceImpl) Assign(ctx context.Context, callerID string, req training.AssignRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	t, err := s.repo.GetByID(ctx, req.TrainingID)
	if err != nil {
		return err
	}
	if _, err := s.repo.AssignUsers(ctx, t.ID, []string{req.UserID}); err != nil {
		return err
	}

	s.record(ctx, callerID, activity.ActionCreate, activity.EntityTrainingStatus, fmt.Sprintf("Assigned training %s", t.Title), t.ID)
	return nil
}

func (s *TrainingServiceImpl) UpdateStatus(ctx context.Context, callerID string, req training.UpdateStatusRequest) (training.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return training.AssignmentResponse{}, err
	}

	var updated training.Assignment
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		a, err := s.repo.GetAssignment(ctx, req.AssignmentID)
		if err != nil {
			return err
		}

		a.ApplyStatus(training.Status(req.Status), req.Progress, s.now().UTC())
		if err := s.repo.UpdateAssignment(ctx, a); err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		return training.AssignmentResponse{}, err
	}

	s.record(ctx, callerID, activity.ActionUpdate, activity.EntityTrainingStatus,
		fmt.Sprintf("Updated training status to %s", updated.Status), updated.ID)
	return training.ToAssignmentResponse(updated), nil
}

func (s *TrainingServiceImpl) record(ctx context.Context, callerID string, action activity.Action, entityType, description, id string) {
	s.recorder.Record(ctx, activity.RecordRequest{
		UserID:      callerID,
		Action:      action,
		Description: description,
		EntityType:  entityType,
		EntityID:    &id,
	})
}
