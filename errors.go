package tsp_evolve

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three failure families. Callers branch with
// errors.Is; the wrapping message carries the specifics.
var (
	// ErrInvalidTour means a route is not a permutation of 0..N-1. The
	// operators cannot produce one, so hitting this is a contract
	// violation that aborts the run.
	ErrInvalidTour = errors.New("invalid tour")

	// ErrConfiguration means a parameter is outside its documented range.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrInputData means a cost matrix or instance file is malformed.
	ErrInputData = errors.New("invalid input data")
)

// RunError tags a failure with the run index and the generation that was
// executing when it happened. Generation 0 means population setup.
type RunError struct {
	Run        int
	Generation int
	Err        error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("run %d, generation %d: %v", e.Run, e.Generation, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// firstError returns the first non-nil entry, preserving run order.
func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
