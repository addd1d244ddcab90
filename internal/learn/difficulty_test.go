package learn

import (
	"errors"
	"testing"

	"github.com/tpnguyen/vocadrill/internal/difficulty"
)

func TestRecordChoice_ThroughEngine(t *testing.T) {
	cfg := difficulty.Config{PromptWrongStreak: 2, PromptWrongCount: 10, AdjustAfter: 3}
	e := newTestEngineGate(testCards(), cfg)

	// Two misses in a row trigger the prompt.
	e.SubmitAnswer("1", "wrong")
	e.SubmitAnswer("1", "wrong")

	meta, ok := e.DifficultyMeta("1")
	if !ok {
		t.Fatal("expected meta for known card")
	}
	if !meta.ShouldPrompt {
		t.Errorf("ShouldPrompt = false after %d misses", meta.WrongStreak)
	}
	if meta.LastChoice != nil {
		t.Errorf("LastChoice = %v, want nil before any rating", *meta.LastChoice)
	}

	if err := e.RecordChoice("1", difficulty.ChoiceHard); err != nil {
		t.Fatalf("RecordChoice: %v", err)
	}

	// Immediately after recording, the rating is locked.
	err := e.RecordChoice("1", difficulty.ChoiceNormal)
	var locked *difficulty.RatingLockedError
	if !errors.As(err, &locked) {
		t.Fatalf("second RecordChoice = %v, want RatingLockedError", err)
	}

	meta, _ = e.DifficultyMeta("1")
	if meta.CanAdjust {
		t.Error("CanAdjust = true immediately after a recorded choice")
	}
	if meta.LastChoice == nil || *meta.LastChoice != difficulty.ChoiceHard {
		t.Errorf("LastChoice = %v, want %v", meta.LastChoice, difficulty.ChoiceHard)
	}
}

func TestRecordChoice_UnknownCardIgnored(t *testing.T) {
	e := newTestEngineGate(testCards(), difficulty.DefaultConfig())
	if err := e.RecordChoice("ghost", difficulty.ChoiceAgain); err != nil {
		t.Errorf("unknown card should be ignored, got %v", err)
	}
	if _, ok := e.DifficultyMeta("ghost"); ok {
		t.Error("expected no meta for unknown card")
	}
}

func TestDifficultyMeta_IsPureProjection(t *testing.T) {
	e := newTestEngineGate(testCards(), difficulty.DefaultConfig())

	e.SubmitAnswer("1", "wrong")
	first, _ := e.DifficultyMeta("1")
	second, _ := e.DifficultyMeta("1")
	if first.ShouldPrompt != second.ShouldPrompt || first.CanAdjust != second.CanAdjust {
		t.Error("repeated meta computation changed the answer without a state change")
	}
}
