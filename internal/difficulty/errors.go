package difficulty

import "fmt"

// RatingLockedError is returned when a rating is submitted for a card
// whose previous rating is still locked. Callers should surface a
// message and disable the control rather than retry.
type RatingLockedError struct {
	CardID string
}

func (e *RatingLockedError) Error() string {
	return fmt.Sprintf("difficulty rating for card %q is locked", e.CardID)
}
