package compare

import (
	"fmt"
)

// ValidationError reports an input rejected at the comparison boundary,
// before any diffing work begins.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
