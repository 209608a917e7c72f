package activity

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, activities []*Activity) error
	List(ctx context.Context, filter ListFilter) ([]Activity, error)
}
