package algorithm

import "github.com/cbarrick/lgp"

// Hook observes the population at one point in the generational loop and may
// abort the run by returning a non-nil error.
type Hook func(*lgp.Population) error

// EventHooks holds the five optional observers of the generational loop. Any
// field left nil is skipped.
type EventHooks struct {
	AfterInit      Hook
	AfterEvaluate  Hook
	AfterRank      Hook
	AfterSelection Hook
	AfterBreed     Hook
}

// call invokes hook if non-nil, wrapping any error with name so callers can
// tell which stage of the loop aborted the run.
func call(hook Hook, name string, pop *lgp.Population) error {
	if hook == nil {
		return nil
	}
	if err := hook(pop); err != nil {
		return &hookError{stage: name, err: err}
	}
	return nil
}

// hookError reports which observer aborted a run.
type hookError struct {
	stage string
	err   error
}

func (e *hookError) Error() string {
	return "algorithm: after " + e.stage + " hook: " + e.err.Error()
}

func (e *hookError) Unwrap() error {
	return e.err
}
