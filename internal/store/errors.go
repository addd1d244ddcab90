package store

import "fmt"

// NotFoundError reports a missing library. It propagates unchanged to
// callers; access control and retry policy are outside the adapter's
// scope.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
