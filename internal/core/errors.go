package core

import (
	"fmt"
	"strings"
)

// ValidationError reports a scheduling request that was rejected before
// any store call was made. State is guaranteed unchanged.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// NotFoundError reports a reference to an entity missing from the current
// snapshot.
type NotFoundError struct {
	Kind string // "task", "venture", "day"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// PersistenceError reports that the store rejected a batch. The whole
// batch is rolled back; FailedIDs names the tasks the store could
// distinguish as failing, and is empty for a generic batch failure.
type PersistenceError struct {
	Op        string
	FailedIDs []string
	Err       error
}

func (e *PersistenceError) Error() string {
	if len(e.FailedIDs) > 0 {
		return fmt.Sprintf("%s: persisting tasks [%s]: %v", e.Op, strings.Join(e.FailedIDs, ", "), e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
