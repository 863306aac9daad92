package document

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange reports an index outside [0, pageCount) on access, or
// outside [0, pageCount] on insert. Callers that respect the documented
// index contracts never see it.
var ErrIndexOutOfRange = errors.New("page index out of range")

// ErrProvisionalConflict reports an operation that touches pages inside the
// provisional (unsaved draft) range. The user must save or discard the draft
// first.
var ErrProvisionalConflict = errors.New("operation conflicts with provisional pages")

// ParseError reports malformed container bytes on load. Load still returns
// a usable empty document alongside it.
type ParseError struct {
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse container: %v", e.Err)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
