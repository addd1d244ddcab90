package learn

import (
	"math/rand"

	"github.com/tpnguyen/vocadrill/internal/deck"
)

// Mode discriminates the two question forms.
type Mode string

const (
	// ModeMultipleChoice shows the prompt with shuffled options.
	ModeMultipleChoice Mode = "multiple_choice"

	// ModeTypedRecall shows the prompt only; the answer is free text.
	ModeTypedRecall Mode = "typed_recall"
)

// Question is a transient prompt produced by the engine. Options is
// populated only for multiple choice and always contains exactly one
// correct answer.
type Question struct {
	CardID  string
	Prompt  string
	Mode    Mode
	Options []string
}

// buildOptions assembles the shuffled option list for a multiple-choice
// question: the correct answer plus distractors drawn preferentially
// from cards sharing the target's domain, backfilled from the full set.
// Option strings are unique; positions are re-randomized on every call.
func buildOptions(target deck.Card, cards []deck.Card, count int, rng *rand.Rand) []string {
	used := map[string]bool{target.Back: true}
	options := []string{target.Back}

	sameDomain := make([]string, 0, len(cards))
	others := make([]string, 0, len(cards))
	for _, c := range cards {
		if c.ID == target.ID || used[c.Back] {
			continue
		}
		used[c.Back] = true
		if target.Domain != "" && c.Domain == target.Domain {
			sameDomain = append(sameDomain, c.Back)
		} else {
			others = append(others, c.Back)
		}
	}

	rng.Shuffle(len(sameDomain), func(i, j int) {
		sameDomain[i], sameDomain[j] = sameDomain[j], sameDomain[i]
	})
	rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	for _, pool := range [][]string{sameDomain, others} {
		for _, back := range pool {
			if len(options) >= count {
				break
			}
			options = append(options, back)
		}
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
