package learn

// Result classifies a graded answer.
type Result string

const (
	// ResultNew marks a card that has not been answered yet. It is only
	// ever a LastResult value, never returned by grading.
	ResultNew Result = "new"

	ResultCorrect Result = "correct"

	// ResultCorrectMinor is a success that required normalization or typo
	// tolerance to match. It counts toward mastery but is reported
	// separately so the UI can show the canonical form.
	ResultCorrectMinor Result = "correct_minor"

	ResultIncorrect Result = "incorrect"

	// ResultSkip is the sentinel for answers that could not be graded,
	// e.g. a stale card id from the UI. It never mutates state.
	ResultSkip Result = "skip"
)

// Valid reports whether r is a known result value.
func (r Result) Valid() bool {
	switch r {
	case ResultNew, ResultCorrect, ResultCorrectMinor, ResultIncorrect, ResultSkip:
		return true
	}
	return false
}

// Success reports whether r counts as a correct answer for mastery.
func (r Result) Success() bool {
	return r == ResultCorrect || r == ResultCorrectMinor
}
