package learn

import (
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// normalizeAnswer lowercases, trims, and collapses internal whitespace.
func normalizeAnswer(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// gradeAnswer compares the learner's input against the canonical answer.
//
// Rules, in order:
//   - byte-identical after trimming: Correct
//   - identical after normalization: CorrectMinor (case/whitespace slip)
//   - within the edit-distance bound on normalized strings: CorrectMinor
//   - otherwise: Incorrect
func gradeAnswer(canonical, raw string, p Policy) Result {
	if strings.TrimSpace(raw) == strings.TrimSpace(canonical) {
		return ResultCorrect
	}

	normCanonical := normalizeAnswer(canonical)
	normRaw := normalizeAnswer(raw)
	if normRaw == "" {
		return ResultIncorrect
	}
	if normRaw == normCanonical {
		return ResultCorrectMinor
	}

	bound := p.FuzzyLongDistance
	if utf8.RuneCountInString(normCanonical) < p.FuzzyShortLen {
		bound = p.FuzzyShortDistance
	}
	if levenshtein.Distance(normCanonical, normRaw, nil) <= bound {
		return ResultCorrectMinor
	}
	return ResultIncorrect
}
