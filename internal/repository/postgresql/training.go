package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/training"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const trainingSelect = `
		SELECT t.id, t.title, t.description, t.type, t.category, t.required, t.due_date,
			t.created_by, t.created_at, t.updated_at
		FROM trainings t`

const assignmentSelect = `
		SELECT ts.id, ts.training_id, t.title, t.type, ts.user_id,
			e.id, e.employee_code,
			COALESCE(e.first_name || ' ' || e.last_name, u.name, ''), COALESCE(e.email, u.email, ''),
			e.department_id, COALESCE(d.name, ''), e.performance_score,
			ts.status, ts.progress, ts.started_at, ts.completed_at, ts.score, ts.updated_at
		FROM training_statuses ts
		JOIN trainings t ON t.id = ts.training_id
		JOIN users u ON u.id = ts.user_id
		LEFT JOIN employees e ON e.user_id = ts.user_id
		LEFT JOIN departments d ON d.id = e.department_id`

func scanTraining(row rowScanner) (training.Training, error) {
	var t training.Training
	var trainingType string

	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&trainingType,
		&t.Category,
		&t.Required,
		&t.DueDate,
		&t.CreatedBy,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return training.Training{}, err
	}

	t.Type = training.Type(trainingType)
	return t, nil
}

func scanAssignment(row rowScanner) (training.Assignment, error) {
	var a training.Assignment
	var trainingType, status string

	err := row.Scan(
		&a.ID,
		&a.TrainingID,
		&a.TrainingTitle,
		&trainingType,
		&a.UserID,
		&a.EmployeeID,
		&a.EmployeeCode,
		&a.EmployeeName,
		&a.Email,
		&a.DepartmentID,
		&a.DepartmentName,
		&a.PerformanceScore,
		&status,
		&a.Progress,
		&a.StartedAt,
		&a.CompletedAt,
		&a.Score,
		&a.UpdatedAt,
	)
	if err != nil {
		return training.Assignment{}, err
	}

	a.TrainingType = training.Type(trainingType)
	a.Status = training.Status(status)
	return a, nil
}

func trainingWhere(q report.TrainingQuery) *where {
	w := newWhere()
	if q.ID != nil {
		w.add("t.id = ?", *q.ID)
	}
	if q.RequiredOnly {
		w.raw("t.required = true")
	}
	return w
}

func assignmentWhere(q report.AssignmentQuery) *where {
	w := newWhere()
	if q.TrainingID != nil {
		w.add("ts.training_id = ?", *q.TrainingID)
	}
	if q.DepartmentID != nil {
		w.add("e.department_id = ?", *q.DepartmentID)
	}
	if q.RequiredOnly {
		w.raw("t.required = true")
	}
	return w
}

type trainingRepositoryImpl struct {
	db database.Querier
}

func NewTrainingRepository(db database.Querier) training.Repository {
	return &trainingRepositoryImpl{db: db}
}

func (r *trainingRepositoryImpl) List(ctx context.Context, filter training.ListFilter) ([]training.Training, error) {
	q := GetQuerier(ctx, r.db)

	w := newWhere()
	if filter.Search != nil {
		w.add("(t.title ILIKE ? OR t.description ILIKE ? OR t.category ILIKE ?)", containsPattern(*filter.Search))
	}
	if filter.Type != nil {
		w.add("t.type = ?", string(*filter.Type))
	}
	query := trainingSelect + w.clause() + "\n\t\tORDER BY t.created_at DESC"

	rows, err := q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trainings: %w", err)
	}
	defer rows.Close()

	return collectTrainings(rows)
}

func collectTrainings(rows pgx.Rows) ([]training.Training, error) {
	var trainings []training.Training
	for rows.Next() {
		t, err := scanTraining(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan training: %w", err)
		}
		trainings = append(trainings, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return trainings, nil
}

func (r *trainingRepositoryImpl) GetByID(ctx context.Context, id string) (training.Training, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTraining(q.QueryRow(ctx, trainingSelect+" WHERE t.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return training.Training{}, training.ErrTrainingNotFound
		}
		return training.Training{}, fmt.Errorf("failed to get training: %w", err)
	}
	return t, nil
}

func (r *trainingRepositoryImpl) Create(ctx context.Context, t training.Training) (training.Training, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO trainings (id, title, description, type, category, required, due_date, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	`
	_, err := q.Exec(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		string(t.Type),
		t.Category,
		t.Required,
		t.DueDate,
		t.CreatedBy,
		t.CreatedAt,
	)
	if err != nil {
		return training.Training{}, fmt.Errorf("failed to create training: %w", err)
	}

	t.UpdatedAt = t.CreatedAt
	return t, nil
}

func (r *trainingRepositoryImpl) Update(ctx context.Context, t training.Training) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE trainings
		SET title = $2, description = $3, type = $4, category = $5, required = $6, due_date = $7, updated_at = $8
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		string(t.Type),
		t.Category,
		t.Required,
		t.DueDate,
		t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update training: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return training.ErrTrainingNotFound
	}
	return nil
}

// Delete removes the training; its assignments go with it via ON DELETE CASCADE.
func (r *trainingRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM trainings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete training: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return training.ErrTrainingNotFound
	}
	return nil
}

func (r *trainingRepositoryImpl) AssignUsers(ctx context.Context, trainingID string, userIDs []string) (int, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)
	now := time.Now().UTC()

	const cols = 5
	valueStrings := make([]string, 0, len(userIDs))
	valueArgs := make([]interface{}, 0, len(userIDs)*cols)
	for i, userID := range userIDs {
		id, err := uuid.NewV7()
		if err != nil {
			return 0, fmt.Errorf("failed to generate assignment id: %w", err)
		}
		base := i * cols
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, 0, $%d)",
			base+1, base+2, base+3, base+4, base+5,
		))
		valueArgs = append(valueArgs, id.String(), trainingID, userID, string(training.StatusNotStarted), now)
	}

	query := fmt.Sprintf(`
		INSERT INTO training_statuses (id, training_id, user_id, status, progress, updated_at)
		VALUES %s
		ON CONFLICT (training_id, user_id) DO NOTHING
	`, strings.Join(valueStrings, ", "))

	tag, err := q.Exec(ctx, query, valueArgs...)
	if err != nil {
		return 0, fmt.Errorf("failed to assign training: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *trainingRepositoryImpl) ActiveEmployeeUserIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT user_id FROM employees
		WHERE status = $1 AND user_id IS NOT NULL
		ORDER BY user_id
	`, string(employee.StatusActive))
	if err != nil {
		return nil, fmt.Errorf("failed to query active employee users: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return ids, nil
}

func (r *trainingRepositoryImpl) GetAssignment(ctx context.Context, id string) (training.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAssignment(q.QueryRow(ctx, assignmentSelect+" WHERE ts.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return training.Assignment{}, training.ErrAssignmentNotFound
		}
		return training.Assignment{}, fmt.Errorf("failed to get training assignment: %w", err)
	}
	return a, nil
}

func (r *trainingRepositoryImpl) UpdateAssignment(ctx context.Context, a training.Assignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE training_statuses
		SET status = $2, progress = $3, started_at = $4, completed_at = $5, updated_at = $6
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, a.ID, string(a.Status), a.Progress, a.StartedAt, a.CompletedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update training assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return training.ErrAssignmentNotFound
	}
	return nil
}
