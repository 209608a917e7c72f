package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/activity"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-report-go/internal/repository/postgresql"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leave.RequestRepository
	transactor postgresql.Transactor
	recorder   activity.Recorder
	now        func() time.Time
}

func NewLeaveService(repo leave.RequestRepository, transactor postgresql.Transactor, recorder activity.Recorder) leave.Service {
	return &LeaveServiceImpl{
		RequestRepository: repo,
		transactor:        transactor,
		recorder:          recorder,
		now:               time.Now,
	}
}

func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.RequestResponse, error) {
	requests, err := s.RequestRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.RequestResponse, len(requests))
	for i, r := range requests {
		responses[i] = leave.ToResponse(r)
	}
	return responses, nil
}

func (s *LeaveServiceImpl) Create(ctx context.Context, callerID string, req leave.CreateRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}
	start, end := req.Period()

	id, err := uuid.NewV7()
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to generate leave request id: %w", err)
	}

	created, err := s.RequestRepository.Create(ctx, leave.Request{
		ID:         id.String(),
		EmployeeID: req.EmployeeID,
		Type:       leave.Type(req.Type),
		StartDate:  start,
		EndDate:    end,
		Duration:   leave.Duration(start, end),
		Status:     leave.StatusPending,
		Reason:     req.Reason,
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	s.record(ctx, callerID, activity.ActionCreate, "Created leave request", created.ID)
	return leave.ToResponse(created), nil
}

// Update rewrites a pending request; the duration is recomputed from the new dates.
func (s *LeaveServiceImpl) Update(ctx context.Context, callerID string, req leave.UpdateRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}
	start, end := req.Period()

	var updated leave.Request
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.RequestRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if current.Status != leave.StatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		if req.Type != nil {
			current.Type = leave.Type(*req.Type)
		}
		if req.Reason != nil {
			current.Reason = req.Reason
		}
		current.StartDate = start
		current.EndDate = end
		current.Duration = leave.Duration(start, end)
		current.UpdatedAt = s.now().UTC()

		if err := s.RequestRepository.Update(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	s.record(ctx, callerID, activity.ActionUpdate, "Updated leave request", updated.ID)
	return leave.ToResponse(updated), nil
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, callerID, id string) error {
	return s.decide(ctx, callerID, id, leave.StatusApproved, "Approved leave request")
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, callerID, id string) error {
	return s.decide(ctx, callerID, id, leave.StatusRejected, "Rejected leave request")
}

// decide moves a pending request to status, stamping the approver.
func (s *LeaveServiceImpl) decide(ctx context.Context, callerID, id string, status leave.Status, description string) error {
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.RequestRepository.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current.Status != leave.StatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		now := s.now().UTC()
		return s.RequestRepository.UpdateStatus(ctx, id, status, &callerID, &now)
	})
	if err != nil {
		return err
	}

	s.record(ctx, callerID, activity.ActionUpdate, description, id)
	return nil
}

// Cancel withdraws a pending or approved request.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, callerID, id string) error {
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.RequestRepository.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current.Status != leave.StatusPending && current.Status != leave.StatusApproved {
			return leave.ErrLeaveRequestNotCancellable
		}
		return s.RequestRepository.UpdateStatus(ctx, id, leave.StatusCancelled, current.ApprovedBy, current.ApprovedAt)
	})
	if err != nil {
		return err
	}

	s.record(ctx, callerID, activity.ActionUpdate, "Cancelled leave request", id)
	return nil
}

func (s *LeaveServiceImpl) record(ctx context.Context, callerID string, action activity.Action, description, id string) {
	s.recorder.Record(ctx, activity.RecordRequest{
		UserID:      callerID,
		Action:      action,
		Description: description,
		EntityType:  activity.EntityLeave,
		EntityID:    &id,
	})
}
