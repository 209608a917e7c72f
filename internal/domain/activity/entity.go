package activity

import "time"

type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionReport Action = "REPORT"
	ActionExport Action = "EXPORT"
)

// Entity types recorded on the trail.
const (
	EntityLeave          = "LEAVE"
	EntityTraining       = "TRAINING"
	EntityTrainingStatus = "TRAINING_STATUS"
	EntityReport         = "REPORT"
)

// Activity is an immutable audit entry.
type Activity struct {
	ID          string    `bson:"_id"`
	UserID      string    `bson:"user_id"`
	Action      Action    `bson:"action"`
	Description string    `bson:"description"`
	EntityType  string    `bson:"entity_type"`
	EntityID    *string   `bson:"entity_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
}
