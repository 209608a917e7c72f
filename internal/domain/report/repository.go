package report

import (
	"context"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/training"
)

type Department struct {
	ID   string
	Name string
}

type Skill struct {
	ID       string
	Name     string
	Category string
}

type EmployeeSkill struct {
	SkillID        string
	EmployeeID     string
	EmployeeName   string
	DepartmentName string
	Proficiency    int
}

type EmployeeOrder int

const (
	OrderByName EmployeeOrder = iota
	OrderByPerformanceDesc
	OrderByUpdatedDesc
	OrderBySalaryDesc
)

// EmployeeQuery filters employees. Zero values mean "no constraint".
type EmployeeQuery struct {
	DepartmentID         *string
	Statuses             []employee.Status
	Position             *string
	Search               *string
	WithSalary           bool
	WithPerformanceScore bool
	UpdatedIn            *DateRange
	OrderBy              EmployeeOrder
	Limit                int
}

type AttendanceQuery struct {
	Range      *DateRange
	EmployeeID *string
	Status     *attendance.Status
}

type LeaveQuery struct {
	StartIn    *DateRange
	EmployeeID *string
	Status     *leave.Status
	Type       *leave.Type
}

type TrainingQuery struct {
	ID           *string
	RequiredOnly bool
}

type AssignmentQuery struct {
	TrainingID   *string
	DepartmentID *string
	RequiredOnly bool
}

type SkillQuery struct {
	Category     *string
	DepartmentID *string
}

// Repository is the read-only query layer behind reports and exports.
type Repository interface {
	ListDepartments(ctx context.Context) ([]Department, error)
	ListEmployees(ctx context.Context, q EmployeeQuery) ([]employee.Employee, error)
	CountEmployees(ctx context.Context, q EmployeeQuery) (int, error)
	ListAttendance(ctx context.Context, q AttendanceQuery) ([]attendance.Record, error)
	ListLeaveRequests(ctx context.Context, q LeaveQuery) ([]leave.Request, error)
	ListTrainings(ctx context.Context, q TrainingQuery) ([]training.Training, error)
	ListAssignments(ctx context.Context, q AssignmentQuery) ([]training.Assignment, error)
	ListSkills(ctx context.Context, q SkillQuery) ([]Skill, error)
	ListEmployeeSkills(ctx context.Context, q SkillQuery) ([]EmployeeSkill, error)
}
