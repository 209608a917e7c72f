package training

import "time"

type Type string

const (
	TypeCourse        Type = "COURSE"
	TypeWorkshop      Type = "WORKSHOP"
	TypeWebinar       Type = "WEBINAR"
	TypeCertification Type = "CERTIFICATION"
	TypeConference    Type = "CONFERENCE"
)

var Types = []string{
	string(TypeCourse),
	string(TypeWorkshop),
	string(TypeWebinar),
	string(TypeCertification),
	string(TypeConference),
}

type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

var Statuses = []string{
	string(StatusNotStarted),
	string(StatusInProgress),
	string(StatusCompleted),
}

type Training struct {
	ID          string
	Title       string
	Description *string
	Type        Type
	Category    *string
	Required    bool
	DueDate     *time.Time
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Assignment is the per-user training status, joined with the training and,
// when the user is an employee, the employee.
type Assignment struct {
	ID            string
	TrainingID    string
	TrainingTitle string
	TrainingType  Type
	UserID        string

	EmployeeID       *string
	EmployeeCode     *string
	EmployeeName     string
	Email            string
	DepartmentID     *string
	DepartmentName   string
	PerformanceScore *float64

	Status      Status
	Progress    int
	StartedAt   *time.Time
	CompletedAt *time.Time
	Score       *float64
	UpdatedAt   time.Time
}

// ApplyStatus moves an assignment to status/progress, stamping started_at when work
// begins from zero progress and completed_at on completion. Leaving COMPLETED clears completed_at.
func (a *Assignment) ApplyStatus(status Status, progress int, now time.Time) {
	if status == StatusInProgress && a.Progress == 0 && a.StartedAt == nil {
		a.StartedAt = &now
	}
	if status == StatusCompleted {
		a.CompletedAt = &now
		progress = 100
		if a.StartedAt == nil {
			a.StartedAt = &now
		}
	} else {
		a.CompletedAt = nil
	}
	a.Status = status
	a.Progress = progress
	a.UpdatedAt = now
}
