package activity

import "context"

// Recorder is the fire-and-forget audit sink. Record never blocks on storage and
// never reports failure to the caller.
type Recorder interface {
	Record(ctx context.Context, req RecordRequest)
}

type Service interface {
	Recorder
	List(ctx context.Context, filter ListFilter) ([]ActivityResponse, error)
	Stop()
}
