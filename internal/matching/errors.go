package matching

import "fmt"

// ErrInvalidInput indicates a request parameter the engine refuses to work
// with, such as a negative result cap or a score threshold outside [0,1].
type ErrInvalidInput struct {
	Field  string
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}
