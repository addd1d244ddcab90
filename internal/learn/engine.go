// Package learn implements the adaptive review engine: question
// selection, answer grading with typo tolerance, and per-card mastery
// scheduling over a session-relative due ordering.
package learn

import (
	"math/rand"
	"time"

	"github.com/tpnguyen/vocadrill/internal/deck"
	"github.com/tpnguyen/vocadrill/internal/difficulty"
)

// Engine selects questions and grades answers for one card library.
// It owns the card-state table exclusively; all methods are
// synchronous and must not be called concurrently.
type Engine struct {
	cards  []deck.Card
	states []*CardState
	index  map[string]int // card id -> position in cards/states
	asked  int            // questions answered so far
	policy Policy
	gate   *difficulty.Gate
	rng    *rand.Rand
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithRand replaces the engine's randomness source. Selection and
// grading are deterministic regardless; only option shuffling uses it.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// NewEngine creates an engine over the given cards. Every card gets a
// fresh state eagerly; initial due positions follow card order so the
// first pass through the deck is the authored order.
func NewEngine(cards []deck.Card, policy Policy, gate *difficulty.Gate, opts ...Option) *Engine {
	e := &Engine{
		cards:  cards,
		states: make([]*CardState, len(cards)),
		index:  make(map[string]int, len(cards)),
		policy: policy,
		gate:   gate,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for i, c := range cards {
		e.states[i] = newCardState(c.ID, i)
		e.index[c.ID] = i
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func newCardState(id string, position int) *CardState {
	return &CardState{
		ID:         id,
		LastResult: ResultNew,
		NextDue:    position,
	}
}

// Asked returns the number of questions answered so far.
func (e *Engine) Asked() int {
	return e.asked
}

// NextQuestion picks the next card and builds its question, or returns
// nil when every card is mastered and none is due (the session is
// finished).
//
// Selection: among cards due at the current position, smallest NextDue
// wins; ties break by lowest mastery, then original card order. If
// nothing is due but unmastered cards remain, the card with the
// earliest upcoming NextDue is pulled forward so the session never
// stalls.
func (e *Engine) NextQuestion() *Question {
	pick := e.selectCard()
	if pick < 0 {
		return nil
	}

	card := e.cards[pick]
	cs := e.states[pick]

	mode := ModeMultipleChoice
	if cs.Mastery >= e.policy.TypedRecallMastery {
		mode = ModeTypedRecall
	}

	q := &Question{
		CardID: card.ID,
		Prompt: card.Front,
		Mode:   mode,
	}
	if mode == ModeMultipleChoice {
		options := buildOptions(card, e.cards, e.policy.OptionCount, e.rng)
		if len(options) < 2 {
			// A lone card has no distractors to offer.
			q.Mode = ModeTypedRecall
		} else {
			q.Options = options
		}
	}
	return q
}

func (e *Engine) selectCard() int {
	due := -1
	upcoming := -1
	for i, cs := range e.states {
		if cs.Due(e.asked) {
			if due < 0 || lessDue(cs, e.states[due]) {
				due = i
			}
			continue
		}
		if cs.Mastered() {
			continue
		}
		if upcoming < 0 || lessDue(cs, e.states[upcoming]) {
			upcoming = i
		}
	}
	if due >= 0 {
		return due
	}
	return upcoming
}

// lessDue orders card states by NextDue, then mastery. Callers iterate
// in card order, so keeping the earlier candidate on ties preserves the
// original-order tie-break.
func lessDue(a, b *CardState) bool {
	if a.NextDue != b.NextDue {
		return a.NextDue < b.NextDue
	}
	return a.Mastery < b.Mastery
}

// SubmitAnswer grades the learner's input for a card and applies the
// scheduling side effects. An unknown card id yields ResultSkip with no
// state change; this is a routine stale-UI case, not an error.
func (e *Engine) SubmitAnswer(cardID, rawAnswer string) Result {
	i, ok := e.index[cardID]
	if !ok {
		return ResultSkip
	}
	cs := e.states[i]
	result := gradeAnswer(e.cards[i].Back, rawAnswer, e.policy)

	e.asked++
	cs.SeenCount++
	cs.LastResult = result

	if result.Success() {
		cs.StreakCorrect++
		cs.WrongStreak = 0
		if cs.Mastery < MaxMastery {
			cs.Mastery++
		}
		cs.NextDue = e.asked + gapForMastery(cs.Mastery)
	} else {
		cs.StreakCorrect = 0
		cs.WrongStreak++
		cs.WrongCount++
		if cs.Mastery > 0 {
			cs.Mastery--
		}
		cs.NextDue = e.asked + retryGap
	}
	return result
}

// Card returns the immutable card for an id. The second return is
// false for an unknown id.
func (e *Engine) Card(cardID string) (deck.Card, bool) {
	i, ok := e.index[cardID]
	if !ok {
		return deck.Card{}, false
	}
	return e.cards[i], true
}

// GetCardState returns the live state for a card, or nil for an
// unknown id.
func (e *Engine) GetCardState(cardID string) *CardState {
	i, ok := e.index[cardID]
	if !ok {
		return nil
	}
	return e.states[i]
}

// MarkCardAsHard pulls a card to the front of the queue and counts it
// as a miss, without touching mastery or streaks. Used when the learner
// flags a card instead of answering it.
func (e *Engine) MarkCardAsHard(cardID string) {
	i, ok := e.index[cardID]
	if !ok {
		return
	}
	cs := e.states[i]
	cs.NextDue = e.asked
	cs.WrongCount++
}

// Finished reports whether every card is at terminal mastery with
// nothing due.
func (e *Engine) Finished() bool {
	for _, cs := range e.states {
		if !cs.Mastered() || cs.Due(e.asked) {
			return false
		}
	}
	return true
}

// RecordChoice records a self-reported difficulty rating, subject to
// the gate's lock. Unknown card ids are ignored like SubmitAnswer.
func (e *Engine) RecordChoice(cardID string, choice difficulty.Choice) error {
	i, ok := e.index[cardID]
	if !ok {
		return nil
	}
	return e.gate.RecordChoice(cardID, choice, e.gateStats(e.states[i]))
}

// DifficultyMeta computes the rating status for a card. The second
// return is false for an unknown id.
func (e *Engine) DifficultyMeta(cardID string) (difficulty.Meta, bool) {
	i, ok := e.index[cardID]
	if !ok {
		return difficulty.Meta{}, false
	}
	return e.gate.Evaluate(cardID, e.gateStats(e.states[i])), true
}

func (e *Engine) gateStats(cs *CardState) difficulty.Stats {
	return difficulty.Stats{
		Mastery:     cs.Mastery,
		SeenCount:   cs.SeenCount,
		WrongCount:  cs.WrongCount,
		WrongStreak: cs.WrongStreak,
	}
}
