package mood

import (
	"errors"
	"fmt"
)

// ErrInvalidQuery is returned before any collaborator call when the
// query text is empty or the limit is out of range.
var ErrInvalidQuery = errors.New("invalid search query")

// CollaboratorError wraps a failure of an external collaborator
// (embedding provider or vector store). The pipeline never retries;
// the caller decides on retry or fallback based on Op.
type CollaboratorError struct {
	Op  string // "embed" or "vector_search"
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("collaborator %s failed: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// IsCollaboratorError reports whether err originates at the
// collaborator boundary.
func IsCollaboratorError(err error) bool {
	var ce *CollaboratorError
	return errors.As(err, &ce)
}
