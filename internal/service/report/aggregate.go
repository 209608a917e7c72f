package report

import (
	"math"
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/training"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	unknownGroup     = "Unknown"
	performanceLimit = 10
)

// percent returns round(100 * part / whole), or 0 when whole is 0.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}

func groupName(name string) string {
	if name == "" {
		return unknownGroup
	}
	return name
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(validator.DateLayout)
	return &s
}

// headcountByDepartment counts active employees per department. Every department
// is listed, in the given order, including those with no employees.
func headcountByDepartment(departments []report.Department, active []employee.Employee) []report.DepartmentHeadcount {
	counts := make(map[string]int, len(departments))
	for _, e := range active {
		if e.Status != employee.StatusActive || e.DepartmentID == nil {
			continue
		}
		counts[*e.DepartmentID]++
	}

	result := make([]report.DepartmentHeadcount, 0, len(departments))
	for _, d := range departments {
		result = append(result, report.DepartmentHeadcount{Name: d.Name, Total: counts[d.ID]})
	}
	return result
}

// topPerformers returns at most ten scored employees, best first.
func topPerformers(employees []employee.Employee) []report.EmployeePerformance {
	scored := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if e.PerformanceScore != nil {
			scored = append(scored, e)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return *scored[i].PerformanceScore > *scored[j].PerformanceScore
	})
	if len(scored) > performanceLimit {
		scored = scored[:performanceLimit]
	}

	result := make([]report.EmployeePerformance, 0, len(scored))
	for _, e := range scored {
		result = append(result, report.EmployeePerformance{
			ID:               e.ID,
			EmployeeCode:     e.EmployeeCode,
			Name:             e.FullName(),
			Department:       groupName(e.DepartmentName),
			Position:         e.Position,
			PerformanceScore: *e.PerformanceScore,
		})
	}
	return result
}

// trainingCompletion rates each required training against the active headcount.
func trainingCompletion(trainings []training.Training, assignments []training.Assignment, activeEmployees int) []report.TrainingCompletion {
	completed := make(map[string]int)
	for _, a := range assignments {
		if a.Status == training.StatusCompleted {
			completed[a.TrainingID]++
		}
	}

	result := make([]report.TrainingCompletion, 0, len(trainings))
	for _, t := range trainings {
		if !t.Required {
			continue
		}
		result = append(result, report.TrainingCompletion{
			ID:             t.ID,
			Title:          t.Title,
			CompletionRate: percent(completed[t.ID], activeEmployees),
			CompletedCount: completed[t.ID],
			TotalEmployees: activeEmployees,
		})
	}
	return result
}

// attendanceStats counts records inside r by status and by department and status.
// Combinations without records are absent from the maps.
func attendanceStats(records []attendance.Record, r report.DateRange) report.AttendanceStats {
	stats := report.AttendanceStats{
		StartDate:        r.Start.Format(validator.DateLayout),
		EndDate:          r.End.Format(validator.DateLayout),
		StatusCounts:     make(map[string]int),
		DepartmentCounts: make(map[string]map[string]int),
	}

	end := r.EndExclusive()
	for _, rec := range records {
		if rec.Date.Before(r.Start) || !rec.Date.Before(end) {
			continue
		}
		status := string(rec.Status)
		stats.StatusCounts[status]++

		dept := groupName(rec.DepartmentName)
		if stats.DepartmentCounts[dept] == nil {
			stats.DepartmentCounts[dept] = make(map[string]int)
		}
		stats.DepartmentCounts[dept][status]++
		stats.TotalRecords++
	}
	return stats
}

// leaveStats sums approved leave starting in year. A request is attributed
// entirely to the month it starts in.
func leaveStats(requests []leave.Request, year int) report.LeaveStats {
	stats := report.LeaveStats{
		Year:        year,
		TypeCounts:  make(map[string]int),
		MonthlyData: make([]report.MonthlyLeave, 12),
	}
	for i := range stats.MonthlyData {
		stats.MonthlyData[i].Month = i + 1
	}

	for _, req := range requests {
		if req.Status != leave.StatusApproved || req.StartDate.Year() != year {
			continue
		}
		days := req.Duration
		stats.TypeCounts[string(req.Type)] += days

		m := &stats.MonthlyData[req.StartDate.Month()-1]
		m.Requests++
		m.Days += days

		stats.TotalRequests++
		stats.TotalDays += days
	}
	return stats
}

// turnoverReport rates terminated employees against the whole workforce.
func turnoverReport(terminated []employee.Employee, totalEmployees int) report.TurnoverReport {
	result := report.TurnoverReport{
		TerminatedEmployees: make([]report.TurnoverEmployee, 0, len(terminated)),
		TerminatedCount:     len(terminated),
		TotalEmployees:      totalEmployees,
	}
	for _, e := range terminated {
		result.TerminatedEmployees = append(result.TerminatedEmployees, report.TurnoverEmployee{
			ID:              e.ID,
			EmployeeCode:    e.EmployeeCode,
			Name:            e.FullName(),
			Department:      groupName(e.DepartmentName),
			Position:        e.Position,
			HireDate:        e.HireDate.UTC().Format(validator.DateLayout),
			TerminationDate: dateString(e.TerminationDate),
		})
	}

	if totalEmployees > 0 {
		rate := 100 * float64(len(terminated)) / float64(totalEmployees)
		result.TurnoverRate = math.Round(math.Min(rate, 100)*100) / 100
	}
	return result
}

// skillsReport averages proficiency per skill over the given links.
func skillsReport(skills []report.Skill, links []report.EmployeeSkill) report.SkillsReport {
	bySkill := make(map[string][]report.EmployeeSkill)
	for _, l := range links {
		bySkill[l.SkillID] = append(bySkill[l.SkillID], l)
	}

	result := report.SkillsReport{
		Skills:      make([]report.SkillSummary, 0, len(skills)),
		TotalSkills: len(skills),
	}
	for _, s := range skills {
		holders := bySkill[s.ID]
		summary := report.SkillSummary{
			ID:            s.ID,
			Name:          s.Name,
			Category:      s.Category,
			EmployeeCount: len(holders),
			Employees:     make([]report.SkillHolder, 0, len(holders)),
		}

		total := 0
		for _, h := range holders {
			total += h.Proficiency
			summary.Employees = append(summary.Employees, report.SkillHolder{
				EmployeeID:  h.EmployeeID,
				Name:        h.EmployeeName,
				Department:  groupName(h.DepartmentName),
				Proficiency: h.Proficiency,
			})
		}
		if len(holders) > 0 {
			summary.AverageProficiency = int(math.Round(float64(total) / float64(len(holders))))
		}
		result.Skills = append(result.Skills, summary)
	}
	return result
}

// compensationReport sums salaries per department and position in one pass and
// divides once at the end.
func compensationReport(employees []employee.Employee) report.CompensationReport {
	result := report.CompensationReport{
		Employees:       make([]report.CompensationEmployee, 0, len(employees)),
		AverageSalary:   decimal.Zero,
		DepartmentStats: make(map[string]report.GroupStats),
		PositionStats:   make(map[string]report.GroupStats),
	}

	add := func(groups map[string]report.GroupStats, key string, salary decimal.Decimal) {
		g := groups[key]
		g.Count++
		g.Total = g.Total.Add(salary)
		groups[key] = g
	}

	total := decimal.Zero
	for _, e := range employees {
		if e.Salary == nil {
			continue
		}
		salary := *e.Salary
		dept := groupName(e.DepartmentName)
		position := groupName(e.Position)

		result.Employees = append(result.Employees, report.CompensationEmployee{
			ID:           e.ID,
			EmployeeCode: e.EmployeeCode,
			Name:         e.FullName(),
			Department:   dept,
			Position:     e.Position,
			Salary:       salary,
		})
		total = total.Add(salary)
		add(result.DepartmentStats, dept, salary)
		add(result.PositionStats, position, salary)
	}

	result.TotalEmployees = len(result.Employees)
	result.AverageSalary = mean(total, result.TotalEmployees)
	for _, groups := range []map[string]report.GroupStats{result.DepartmentStats, result.PositionStats} {
		for k, g := range groups {
			g.Avg = mean(g.Total, g.Count)
			groups[k] = g
		}
	}
	return result
}

func mean(total decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(n))).Round(2)
}

// trainingReport summarizes assignments per training.
func trainingReport(trainings []training.Training, assignments []training.Assignment) report.TrainingReport {
	byTraining := make(map[string][]training.Assignment)
	for _, a := range assignments {
		byTraining[a.TrainingID] = append(byTraining[a.TrainingID], a)
	}

	result := report.TrainingReport{Trainings: make([]report.TrainingSummary, 0, len(trainings))}
	for _, t := range trainings {
		assigned := byTraining[t.ID]
		summary := report.TrainingSummary{
			ID:                  t.ID,
			Title:               t.Title,
			Type:                string(t.Type),
			TotalAssigned:       len(assigned),
			EmployeesWithScores: make([]report.ScoredEmployee, 0),
		}
		for _, a := range assigned {
			if a.Status != training.StatusCompleted {
				continue
			}
			summary.Completed++
			if a.EmployeeID != nil && a.PerformanceScore != nil {
				summary.EmployeesWithScores = append(summary.EmployeesWithScores, report.ScoredEmployee{
					EmployeeID:       *a.EmployeeID,
					Name:             a.EmployeeName,
					Department:       groupName(a.DepartmentName),
					PerformanceScore: *a.PerformanceScore,
				})
			}
		}
		summary.CompletionRate = percent(summary.Completed, summary.TotalAssigned)
		result.Trainings = append(result.Trainings, summary)
	}
	return result
}
