package learn

import "fmt"

// MalformedStateError reports a structurally invalid snapshot: an
// unknown card id, an out-of-range mastery value, or a negative
// counter. Callers must discard the snapshot and start a fresh engine;
// the engine never repairs corrupt state silently.
type MalformedStateError struct {
	Reason string
}

func (e *MalformedStateError) Error() string {
	return fmt.Sprintf("malformed session state: %s", e.Reason)
}

func malformed(format string, args ...any) error {
	return &MalformedStateError{Reason: fmt.Sprintf(format, args...)}
}
