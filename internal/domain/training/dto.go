package training

import (
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/pkg/validator"
)

type ListFilter struct {
	Search *string
	Type   *Type
}

type CreateTrainingRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Type        string  `json:"type"`
	Category    *string `json:"category,omitempty"`
	Required    bool    `json:"required"`
	DueDate     *string `json:"due_date,omitempty"`

	dueDate *time.Time
}

func (r *CreateTrainingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs.Add("title", "title is required")
	}
	if len(r.Title) > 255 {
		errs.Add("title", "title must not exceed 255 characters")
	}
	if !validator.IsInSlice(r.Type, Types) {
		errs.Add("type", "type is invalid")
	}
	if r.DueDate != nil {
		r.dueDate = validator.DateField(&errs, "due_date", *r.DueDate)
	}

	return errs.Err()
}

func (r *CreateTrainingRequest) ParsedDueDate() *time.Time {
	return r.dueDate
}

type UpdateTrainingRequest struct {
	ID          string  `json:"-"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty"`
	Category    *string `json:"category,omitempty"`
	Required    *bool   `json:"required,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`

	dueDate *time.Time
}

func (r *UpdateTrainingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs.Add("title", "title must not be empty")
	}
	if r.Type != nil && !validator.IsInSlice(*r.Type, Types) {
		errs.Add("type", "type is invalid")
	}
	if r.DueDate != nil {
		r.dueDate = validator.DateField(&errs, "due_date", *r.DueDate)
	}

	return errs.Err()
}

func (r *UpdateTrainingRequest) ParsedDueDate() *time.Time {
	return r.dueDate
}

type AssignRequest struct {
	TrainingID string `json:"-"`
	UserID     string `json:"user_id"`
}

func (r *AssignRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.TrainingID) {
		errs.Add("training_id", "training_id is required")
	}
	if validator.IsEmpty(r.UserID) {
		errs.Add("user_id", "user_id is required")
	}
	return errs.Err()
}

type UpdateStatusRequest struct {
	AssignmentID string `json:"-"`
	Status       string `json:"status"`
	Progress     int    `json:"progress"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.AssignmentID) {
		errs.Add("id", "id is required")
	}
	if !validator.IsInSlice(r.Status, Statuses) {
		errs.Add("status", "status is invalid")
	}
	if r.Progress < 0 || r.Progress > 100 {
		errs.Add("progress", "progress must be between 0 and 100")
	}
	return errs.Err()
}

type TrainingResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Type        Type      `json:"type"`
	Category    *string   `json:"category,omitempty"`
	Required    bool      `json:"required"`
	DueDate     *string   `json:"due_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Assigned    *int      `json:"assigned,omitempty"`
}

func ToTrainingResponse(t Training) TrainingResponse {
	resp := TrainingResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Type:        t.Type,
		Category:    t.Category,
		Required:    t.Required,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.DueDate != nil {
		d := t.DueDate.Format(validator.DateLayout)
		resp.DueDate = &d
	}
	return resp
}

type AssignmentResponse struct {
	ID          string     `json:"id"`
	TrainingID  string     `json:"training_id"`
	UserID      string     `json:"user_id"`
	Status      Status     `json:"status"`
	Progress    int        `json:"progress"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Score       *float64   `json:"score,omitempty"`
}

func ToAssignmentResponse(a Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:          a.ID,
		TrainingID:  a.TrainingID,
		UserID:      a.UserID,
		Status:      a.Status,
		Progress:    a.Progress,
		StartedAt:   a.StartedAt,
		CompletedAt: a.CompletedAt,
		Score:       a.Score,
	}
}
