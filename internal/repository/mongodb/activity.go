package mongodb

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/activity"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/database"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const activityCollection = "activities"

type activityRepository struct {
	activities *mongo.Collection
}

// NewActivityRepository stores the trail in MongoDB, creating its indexes first.
func NewActivityRepository(ctx context.Context, db *database.MongoDB) (activity.Repository, error) {
	activities := db.Collection(activityCollection)

	if _, err := activities.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}); err != nil {
		return nil, fmt.Errorf("create activities indexes: %w", err)
	}

	return &activityRepository{activities: activities}, nil
}

func (r *activityRepository) CreateBatch(ctx context.Context, activities []*activity.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	docs := make([]interface{}, len(activities))
	for i, a := range activities {
		docs[i] = a
	}

	if _, err := r.activities.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false)); err != nil {
		return fmt.Errorf("insert activities: %w", err)
	}
	return nil
}

func (r *activityRepository) List(ctx context.Context, filter activity.ListFilter) ([]activity.Activity, error) {
	query := bson.M{}
	if filter.UserID != nil {
		query["user_id"] = *filter.UserID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(filter.Limit))

	cursor, err := r.activities.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find activities: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []activity.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return activities, nil
}
