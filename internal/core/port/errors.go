package port

import "fmt"

// PredictionError wraps a model artifact failure for a single row, for
// example an unseen categorical level. It is fatal for the request that
// produced it: the model is deterministic, so retrying would reproduce
// the identical failure.
type PredictionError struct {
	Err error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("prediction failed: %v", e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }

// StoreError wraps a persistence failure. Append is atomic, so no
// partial-state cleanup is needed after one.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
