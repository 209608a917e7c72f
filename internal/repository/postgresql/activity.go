package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/activity"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/database"
)

const activityColumns = 7

type activityRepository struct {
	db database.Querier
}

func NewActivityRepository(db database.Querier) activity.Repository {
	return &activityRepository{db: db}
}

// CreateBatch inserts all entries with one multi-row INSERT.
func (r *activityRepository) CreateBatch(ctx context.Context, activities []*activity.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	valueStrings := make([]string, 0, len(activities))
	valueArgs := make([]interface{}, 0, len(activities)*activityColumns)

	for i, a := range activities {
		base := i * activityColumns
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
		))
		valueArgs = append(valueArgs,
			a.ID,
			a.UserID,
			string(a.Action),
			a.Description,
			a.EntityType,
			a.EntityID,
			a.CreatedAt,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO activities (id, user_id, action, description, entity_type, entity_id, created_at)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	if _, err := q.Exec(ctx, query, valueArgs...); err != nil {
		return fmt.Errorf("failed to batch create activities: %w", err)
	}

	return nil
}

// List returns the newest activities first, optionally for one user.
func (r *activityRepository) List(ctx context.Context, filter activity.ListFilter) ([]activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	w := newWhere()
	if filter.UserID != nil {
		w.add("user_id = ?", *filter.UserID)
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, action, description, entity_type, entity_id, created_at
		FROM activities%s
		ORDER BY created_at DESC
		LIMIT %s
	`, w.clause(), w.arg(filter.Limit))

	rows, err := q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []activity.Activity
	for rows.Next() {
		var a activity.Activity
		var action string
		if err := rows.Scan(&a.ID, &a.UserID, &action, &a.Description, &a.EntityType, &a.EntityID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		a.Action = activity.Action(action)
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return activities, nil
}
