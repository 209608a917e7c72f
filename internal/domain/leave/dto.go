package leave

import (
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/pkg/validator"
)

type CreateRequest struct {
	EmployeeID string  `json:"employee_id"`
	Type       string  `json:"type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason,omitempty"`

	start, end time.Time
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	} else {
		validator.UUIDField(&errs, "employee_id", r.EmployeeID)
	}
	if !validator.IsInSlice(r.Type, Types) {
		errs.Add("type", "type is invalid")
	}
	r.start, r.end = validatePeriod(&errs, r.StartDate, r.EndDate)

	return errs.Err()
}

// Period returns the parsed dates; valid only after Validate succeeded.
func (r *CreateRequest) Period() (time.Time, time.Time) {
	return r.start, r.end
}

type UpdateRequest struct {
	ID        string  `json:"-"`
	Type      *string `json:"type,omitempty"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    *string `json:"reason,omitempty"`

	start, end time.Time
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Type != nil && !validator.IsInSlice(*r.Type, Types) {
		errs.Add("type", "type is invalid")
	}
	r.start, r.end = validatePeriod(&errs, r.StartDate, r.EndDate)

	return errs.Err()
}

func (r *UpdateRequest) Period() (time.Time, time.Time) {
	return r.start, r.end
}

func validatePeriod(errs *validator.ValidationErrors, startDate, endDate string) (time.Time, time.Time) {
	if validator.IsEmpty(startDate) {
		errs.Add("start_date", "start_date is required")
	}
	if validator.IsEmpty(endDate) {
		errs.Add("end_date", "end_date is required")
	}
	start := validator.DateField(errs, "start_date", startDate)
	end := validator.DateField(errs, "end_date", endDate)
	if start == nil || end == nil {
		return time.Time{}, time.Time{}
	}
	if Duration(*start, *end) < 1 {
		errs.Add("end_date", "end_date must not be before start_date")
	}
	return *start, *end
}

type ListFilter struct {
	Status     *Status
	EmployeeID *string
}

type RequestResponse struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	EmployeeCode   string     `json:"employee_code"`
	EmployeeName   string     `json:"employee_name"`
	DepartmentName string     `json:"department_name"`
	Type           Type       `json:"type"`
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	Duration       int        `json:"duration"`
	Status         Status     `json:"status"`
	Reason         *string    `json:"reason,omitempty"`
	ApprovedBy     *string    `json:"approved_by,omitempty"`
	ApproverName   *string    `json:"approver_name,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToResponse(r Request) RequestResponse {
	return RequestResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		EmployeeCode:   r.EmployeeCode,
		EmployeeName:   r.EmployeeName,
		DepartmentName: r.DepartmentName,
		Type:           r.Type,
		StartDate:      r.StartDate.Format(validator.DateLayout),
		EndDate:        r.EndDate.Format(validator.DateLayout),
		Duration:       r.Duration,
		Status:         r.Status,
		Reason:         r.Reason,
		ApprovedBy:     r.ApprovedBy,
		ApproverName:   r.ApproverName,
		ApprovedAt:     r.ApprovedAt,
		CreatedAt:      r.CreatedAt,
	}
}
