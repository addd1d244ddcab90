package learn

// MaxMastery is the terminal mastery level. A card at MaxMastery can
// still regress on an incorrect answer.
const MaxMastery = 5

// CardState holds the mutable learning state for a single card.
// One entry exists per card for the lifetime of a session.
type CardState struct {
	ID            string
	Mastery       int // 0..MaxMastery
	StreakCorrect int // consecutive correct answers
	WrongStreak   int // consecutive incorrect answers
	LastResult    Result
	NextDue       int // session-relative position; smaller = sooner
	SeenCount     int
	WrongCount    int
}

// Mastered reports whether the card has reached terminal mastery.
func (cs *CardState) Mastered() bool {
	return cs.Mastery >= MaxMastery
}

// Due reports whether the card is due at the given session position.
func (cs *CardState) Due(position int) bool {
	return cs.NextDue <= position
}
