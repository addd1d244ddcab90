// Package difficulty implements the self-rating gate that decides when a
// learner should be prompted for a difficulty rating and when a recorded
// rating is locked against changes.
package difficulty

import "sort"

// Config holds the gate's policy thresholds.
type Config struct {
	// PromptWrongStreak triggers a rating prompt once a card has been
	// answered incorrectly this many times in a row.
	PromptWrongStreak int

	// PromptWrongCount triggers a rating prompt once a card's total wrong
	// count grows by this much (absolute before the first rating, delta
	// since the last rating afterwards).
	PromptWrongCount int

	// AdjustAfter unlocks a recorded rating after this many further
	// questions on the card.
	AdjustAfter int
}

// DefaultConfig returns the standard gate thresholds.
func DefaultConfig() Config {
	return Config{
		PromptWrongStreak: 3,
		PromptWrongCount:  4,
		AdjustAfter:       5,
	}
}

// Stats is the slice of a card's learning state the gate evaluates.
// The caller recomputes it from live card state on every call; the gate
// itself stores only the recorded choices.
type Stats struct {
	Mastery     int
	SeenCount   int
	WrongCount  int
	WrongStreak int
}

// Meta is the derived rating status for one card. It is recomputed on
// demand and never persisted.
type Meta struct {
	ShouldPrompt bool
	WrongCount   int
	WrongStreak  int
	Mastery      int
	LastChoice   *Choice
	CanAdjust    bool
}

// ChoiceRecord is a recorded rating together with the card counters at
// the moment it was recorded. The counters anchor the re-fire and
// unlock windows.
type ChoiceRecord struct {
	CardID        string `json:"card_id"`
	Choice        Choice `json:"choice"`
	SeenAtChoice  int    `json:"seen_at_choice"`
	WrongAtChoice int    `json:"wrong_at_choice"`
}

// Gate tracks recorded difficulty choices per card.
type Gate struct {
	cfg     Config
	records map[string]*ChoiceRecord
}

// NewGate creates an empty gate with the given thresholds.
func NewGate(cfg Config) *Gate {
	return &Gate{
		cfg:     cfg,
		records: make(map[string]*ChoiceRecord),
	}
}

// Evaluate computes the rating status for a card given its current stats.
func (g *Gate) Evaluate(cardID string, s Stats) Meta {
	m := Meta{
		WrongCount:  s.WrongCount,
		WrongStreak: s.WrongStreak,
		Mastery:     s.Mastery,
	}

	rec := g.records[cardID]
	if rec == nil {
		m.ShouldPrompt = s.WrongStreak >= g.cfg.PromptWrongStreak ||
			s.WrongCount >= g.cfg.PromptWrongCount
		m.CanAdjust = true
		return m
	}

	choice := rec.Choice
	m.LastChoice = &choice

	// A wrong streak re-fires only if it was built entirely after the
	// recorded choice; a streak carried over from before the choice is
	// the same episode, not a new signal. Accumulated wrongs use the
	// delta since the choice so an ever-growing total cannot keep the
	// gate permanently open.
	seenSince := s.SeenCount - rec.SeenAtChoice
	wrongSince := s.WrongCount - rec.WrongAtChoice
	refired := (s.WrongStreak >= g.cfg.PromptWrongStreak && s.WrongStreak <= seenSince) ||
		wrongSince >= g.cfg.PromptWrongCount
	aged := seenSince >= g.cfg.AdjustAfter

	m.ShouldPrompt = refired
	m.CanAdjust = refired || aged
	return m
}

// RecordChoice validates the choice against the current lock state and,
// if permitted, stores it and re-locks the gate for this card.
func (g *Gate) RecordChoice(cardID string, c Choice, s Stats) error {
	meta := g.Evaluate(cardID, s)
	if !meta.CanAdjust {
		return &RatingLockedError{CardID: cardID}
	}
	g.records[cardID] = &ChoiceRecord{
		CardID:        cardID,
		Choice:        c,
		SeenAtChoice:  s.SeenCount,
		WrongAtChoice: s.WrongCount,
	}
	return nil
}

// LastChoice returns the recorded choice for a card, or nil.
func (g *Gate) LastChoice(cardID string) *Choice {
	rec := g.records[cardID]
	if rec == nil {
		return nil
	}
	c := rec.Choice
	return &c
}

// Records exports all recorded choices sorted by card id, for inclusion
// in the session snapshot.
func (g *Gate) Records() []ChoiceRecord {
	out := make([]ChoiceRecord, 0, len(g.records))
	for _, rec := range g.records {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CardID < out[j].CardID })
	return out
}

// Load replaces the gate's records with ones restored from a snapshot.
// Structural validation of the records is the restorer's responsibility.
func (g *Gate) Load(records []ChoiceRecord) {
	g.records = make(map[string]*ChoiceRecord, len(records))
	for i := range records {
		rec := records[i]
		g.records[rec.CardID] = &rec
	}
}
