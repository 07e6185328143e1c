package session

import "fmt"

// InvalidStateError reports an operation attempted in the wrong session mode.
type InvalidStateError struct {
	Op   string
	Mode Mode
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: not allowed while %s", e.Op, e.Mode)
}

// PersistenceError wraps a storage failure during finalization. The session
// stays in the finalizing mode so the write can be retried.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
