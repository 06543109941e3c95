package domain

import (
	"errors"
	"fmt"
)

// ErrRetrieval matches any *RetrievalError via errors.Is.
var ErrRetrieval = errors.New("data source retrieval failed")

// RetrievalError reports an unrecoverable failure while querying a DataSource.
type RetrievalError struct {
	ID  string
	Err error
}

func NewRetrievalError(id string, err error) *RetrievalError {
	return &RetrievalError{ID: id, Err: err}
}

func (e *RetrievalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("retrieve %q: %v", e.ID, ErrRetrieval)
	}
	return fmt.Sprintf("retrieve %q: %v", e.ID, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

func (e *RetrievalError) Is(target error) bool { return target == ErrRetrieval }
