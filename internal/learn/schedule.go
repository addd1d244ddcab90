package learn

// reviewGaps defines the expanding question-gap schedule, indexed by
// mastery level after a correct answer. A card at mastery m is next due
// reviewGaps[m] questions from now.
var reviewGaps = [MaxMastery + 1]int{1, 2, 4, 8, 16, 32}

// retryGap is how soon an incorrectly answered card comes back.
const retryGap = 1

// gapForMastery returns the scheduling gap for a mastery level,
// clamping out-of-range values.
func gapForMastery(mastery int) int {
	if mastery < 0 {
		mastery = 0
	}
	if mastery > MaxMastery {
		mastery = MaxMastery
	}
	return reviewGaps[mastery]
}
