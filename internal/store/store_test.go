package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/tpnguyen/vocadrill/internal/deck"
	"github.com/tpnguyen/vocadrill/internal/learn"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testDeck() *deck.Deck {
	return &deck.Deck{
		ID:   "vi-animals",
		Name: "Vietnamese Animals",
		Cards: []deck.Card{
			{ID: "cat", Front: "cat", Back: "con mèo", Domain: "animals", Difficulty: deck.DifficultyEasy},
			{ID: "dog", Front: "dog", Back: "con chó", Domain: "animals"},
			{ID: "red", Front: "red", Back: "màu đỏ", Domain: "colors", Difficulty: deck.DifficultyMedium},
		},
	}
}

func TestImportAndLoadCards(t *testing.T) {
	s := openTestStore(t)

	if err := s.ImportDeck(context.Background(), testDeck()); err != nil {
		t.Fatalf("ImportDeck: %v", err)
	}

	cards, err := s.LoadLibraryCards(context.Background(), "vi-animals")
	if err != nil {
		t.Fatalf("LoadLibraryCards: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("len(cards) = %d, want 3", len(cards))
	}
	// Authored order survives the round trip.
	for i, want := range []string{"cat", "dog", "red"} {
		if cards[i].ID != want {
			t.Errorf("cards[%d].ID = %q, want %q", i, cards[i].ID, want)
		}
	}
	if cards[0].Back != "con mèo" || cards[0].Difficulty != deck.DifficultyEasy {
		t.Errorf("cards[0] = %+v", cards[0])
	}
	if cards[1].Difficulty != "" {
		t.Errorf("unset difficulty = %q, want empty", cards[1].Difficulty)
	}
}

func TestImportDeck_ReplacesCards(t *testing.T) {
	s := openTestStore(t)

	if err := s.ImportDeck(context.Background(), testDeck()); err != nil {
		t.Fatalf("ImportDeck: %v", err)
	}

	smaller := &deck.Deck{
		ID:   "vi-animals",
		Name: "Animals v2",
		Cards: []deck.Card{
			{ID: "fish", Front: "fish", Back: "con cá", Domain: "animals"},
		},
	}
	if err := s.ImportDeck(context.Background(), smaller); err != nil {
		t.Fatalf("re-import: %v", err)
	}

	cards, err := s.LoadLibraryCards(context.Background(), "vi-animals")
	if err != nil {
		t.Fatalf("LoadLibraryCards: %v", err)
	}
	if len(cards) != 1 || cards[0].ID != "fish" {
		t.Errorf("cards after re-import = %+v, want only fish", cards)
	}

	infos, err := s.ListLibraries(context.Background())
	if err != nil {
		t.Fatalf("ListLibraries: %v", err)
	}
	if len(infos) != 1 || infos[0].Name != "Animals v2" || infos[0].CardCount != 1 {
		t.Errorf("infos = %+v", infos)
	}
}

func TestLoadLibraryCards_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.LoadLibraryCards(context.Background(), "ghost")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if nf.Kind != "library" || nf.ID != "ghost" {
		t.Errorf("NotFoundError = %+v", nf)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	if err := s.ImportDeck(context.Background(), testDeck()); err != nil {
		t.Fatalf("ImportDeck: %v", err)
	}
	const lib = "vi-animals"

	got, err := s.LoadProgress(context.Background(), "u", lib)
	if err != nil {
		t.Fatalf("LoadProgress: %v", err)
	}
	if got != nil {
		t.Fatalf("LoadProgress before save = %+v, want nil", got)
	}

	snap := learn.SerializedState{
		Version: learn.SnapshotVersion,
		Asked:   7,
		Cards: []learn.CardStateData{
			{ID: "cat", Mastery: 3, StreakCorrect: 2, LastResult: "correct", NextDue: 15, SeenCount: 5, WrongCount: 1},
		},
	}
	if err := s.SaveProgress(context.Background(), "u", lib, snap); err != nil {
		t.Fatalf("SaveProgress: %v", err)
	}

	got, err = s.LoadProgress(context.Background(), "u", lib)
	if err != nil {
		t.Fatalf("LoadProgress: %v", err)
	}
	if got == nil || got.Asked != 7 || len(got.Cards) != 1 || got.Cards[0].Mastery != 3 {
		t.Errorf("round trip = %+v", got)
	}

	// Upsert replaces.
	snap.Asked = 8
	if err := s.SaveProgress(context.Background(), "u", lib, snap); err != nil {
		t.Fatalf("SaveProgress again: %v", err)
	}
	got, err = s.LoadProgress(context.Background(), "u", lib)
	if err != nil {
		t.Fatalf("LoadProgress: %v", err)
	}
	if got.Asked != 8 {
		t.Errorf("asked after upsert = %d, want 8", got.Asked)
	}

	// Other keys stay independent.
	other, err := s.LoadProgress(context.Background(), "other", lib)
	if err != nil {
		t.Fatalf("LoadProgress other: %v", err)
	}
	if other != nil {
		t.Errorf("other user's progress = %+v, want nil", other)
	}
}

func TestResetProgress(t *testing.T) {
	s := openTestStore(t)
	if err := s.ImportDeck(context.Background(), testDeck()); err != nil {
		t.Fatalf("ImportDeck: %v", err)
	}
	const lib = "vi-animals"

	snap := learn.SerializedState{Version: learn.SnapshotVersion}
	if err := s.SaveProgress(context.Background(), "u", lib, snap); err != nil {
		t.Fatalf("SaveProgress: %v", err)
	}
	if err := s.ResetProgress(context.Background(), "u", lib); err != nil {
		t.Fatalf("ResetProgress: %v", err)
	}

	got, err := s.LoadProgress(context.Background(), "u", lib)
	if err != nil {
		t.Fatalf("LoadProgress: %v", err)
	}
	if got != nil {
		t.Errorf("progress after reset = %+v, want nil", got)
	}

	// Resetting an absent snapshot is a no-op, not an error.
	if err := s.ResetProgress(context.Background(), "u", "never"); err != nil {
		t.Errorf("ResetProgress on absent key = %v, want nil", err)
	}
}
