package difficulty

// Choice is a learner's self-reported difficulty rating for a card.
// It is independent of the engine's own correctness-based result.
type Choice string

const (
	ChoiceVeryHard Choice = "very_hard"
	ChoiceHard     Choice = "hard"
	ChoiceAgain    Choice = "again"
	ChoiceNormal   Choice = "normal"
)

// Valid reports whether c is one of the known choices.
func (c Choice) Valid() bool {
	switch c {
	case ChoiceVeryHard, ChoiceHard, ChoiceAgain, ChoiceNormal:
		return true
	}
	return false
}

// ParseChoice converts a stored or user-supplied string into a Choice.
func ParseChoice(s string) (Choice, bool) {
	c := Choice(s)
	return c, c.Valid()
}
