package learn

import "github.com/tpnguyen/vocadrill/internal/difficulty"

// SnapshotVersion is the current serialization format version.
const SnapshotVersion = 1

// SerializedState is the durable form of a session: the card-state
// table in card order, the monotonic asked counter, and the recorded
// difficulty choices. It round-trips losslessly through Serialize and
// Restore.
type SerializedState struct {
	Version int                       `json:"version"`
	Asked   int                       `json:"asked"`
	Cards   []CardStateData           `json:"cards"`
	Choices []difficulty.ChoiceRecord `json:"choices,omitempty"`
}

// CardStateData is the serialized form of one CardState.
type CardStateData struct {
	ID            string `json:"id"`
	Mastery       int    `json:"mastery"`
	StreakCorrect int    `json:"streak_correct"`
	WrongStreak   int    `json:"wrong_streak"`
	LastResult    string `json:"last_result"`
	NextDue       int    `json:"next_due"`
	SeenCount     int    `json:"seen_count"`
	WrongCount    int    `json:"wrong_count"`
}

// Serialize exports the engine's full state. Card states are emitted in
// construction order so repeated serialization is deterministic.
func (e *Engine) Serialize() SerializedState {
	snap := SerializedState{
		Version: SnapshotVersion,
		Asked:   e.asked,
		Cards:   make([]CardStateData, len(e.states)),
	}
	for i, cs := range e.states {
		snap.Cards[i] = CardStateData{
			ID:            cs.ID,
			Mastery:       cs.Mastery,
			StreakCorrect: cs.StreakCorrect,
			WrongStreak:   cs.WrongStreak,
			LastResult:    string(cs.LastResult),
			NextDue:       cs.NextDue,
			SeenCount:     cs.SeenCount,
			WrongCount:    cs.WrongCount,
		}
	}
	snap.Choices = e.gate.Records()
	return snap
}

// Restore replaces the engine's state with a previously serialized one.
// It validates the snapshot structurally before touching any state and
// returns a MalformedStateError on the first violation, leaving the
// engine unchanged.
func (e *Engine) Restore(snap SerializedState) error {
	if snap.Version != SnapshotVersion {
		return malformed("unsupported version %d", snap.Version)
	}
	if snap.Asked < 0 {
		return malformed("negative asked counter %d", snap.Asked)
	}

	restored := make(map[string]*CardState, len(snap.Cards))
	for _, cd := range snap.Cards {
		if _, ok := e.index[cd.ID]; !ok {
			return malformed("unknown card id %q", cd.ID)
		}
		if _, dup := restored[cd.ID]; dup {
			return malformed("duplicate card id %q", cd.ID)
		}
		if cd.Mastery < 0 || cd.Mastery > MaxMastery {
			return malformed("card %q: mastery %d out of range", cd.ID, cd.Mastery)
		}
		if cd.StreakCorrect < 0 || cd.WrongStreak < 0 || cd.SeenCount < 0 || cd.WrongCount < 0 {
			return malformed("card %q: negative counter", cd.ID)
		}
		if cd.NextDue < 0 {
			return malformed("card %q: negative next_due", cd.ID)
		}
		result := Result(cd.LastResult)
		if !result.Valid() {
			return malformed("card %q: unknown result %q", cd.ID, cd.LastResult)
		}
		restored[cd.ID] = &CardState{
			ID:            cd.ID,
			Mastery:       cd.Mastery,
			StreakCorrect: cd.StreakCorrect,
			WrongStreak:   cd.WrongStreak,
			LastResult:    result,
			NextDue:       cd.NextDue,
			SeenCount:     cd.SeenCount,
			WrongCount:    cd.WrongCount,
		}
	}

	choiceSeen := make(map[string]bool, len(snap.Choices))
	for _, rec := range snap.Choices {
		if _, ok := e.index[rec.CardID]; !ok {
			return malformed("choice for unknown card id %q", rec.CardID)
		}
		if choiceSeen[rec.CardID] {
			return malformed("duplicate choice for card %q", rec.CardID)
		}
		choiceSeen[rec.CardID] = true
		if !rec.Choice.Valid() {
			return malformed("card %q: unknown choice %q", rec.CardID, rec.Choice)
		}
		if rec.SeenAtChoice < 0 || rec.WrongAtChoice < 0 {
			return malformed("card %q: negative choice counter", rec.CardID)
		}
	}

	e.asked = snap.Asked
	for i, c := range e.cards {
		if cs, ok := restored[c.ID]; ok {
			e.states[i] = cs
			continue
		}
		// Cards added to the library after the snapshot start fresh.
		e.states[i] = newCardState(c.ID, i)
	}
	e.gate.Load(snap.Choices)
	return nil
}
