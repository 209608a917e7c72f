package activity

import "time"

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// RecordRequest describes one entry for the trail.
type RecordRequest struct {
	UserID      string
	Action      Action
	Description string
	EntityType  string
	EntityID    *string
}

type ListFilter struct {
	UserID *string
	Limit  int
}

// Normalize clamps Limit to [1, MaxListLimit], defaulting to DefaultListLimit.
func (f *ListFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
}

type ActivityResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Action      Action    `json:"action"`
	Description string    `json:"description"`
	EntityType  string    `json:"entity_type"`
	EntityID    *string   `json:"entity_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
