package learn

// Policy holds the engine's tunable selection and grading constants.
type Policy struct {
	// TypedRecallMastery is the mastery level at which questions switch
	// from multiple choice to typed recall.
	TypedRecallMastery int

	// OptionCount is the number of options a multiple-choice question
	// carries, including the correct answer, distractors permitting.
	OptionCount int

	// FuzzyShortLen splits answers into short and long for typo
	// tolerance: normalized answers shorter than this many runes use
	// FuzzyShortDistance, longer ones FuzzyLongDistance.
	FuzzyShortLen      int
	FuzzyShortDistance int
	FuzzyLongDistance  int
}

// DefaultPolicy returns the standard engine policy.
func DefaultPolicy() Policy {
	return Policy{
		TypedRecallMastery: 3,
		OptionCount:        4,
		FuzzyShortLen:      8,
		FuzzyShortDistance: 1,
		FuzzyLongDistance:  2,
	}
}
