package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/tpnguyen/vocadrill/internal/deck"
	"github.com/tpnguyen/vocadrill/internal/difficulty"
	"github.com/tpnguyen/vocadrill/internal/learn"
)

// Context is one learner's live session on one library. All engine
// access goes through its mutex so card-state mutations are never
// interleaved, and every mutating call writes the new snapshot through
// to the progress store before returning.
type Context struct {
	key      Key
	progress ProgressStore

	// RestoreErr is set when a saved snapshot was rejected at load time
	// and the session started fresh instead.
	RestoreErr error

	mu     sync.Mutex
	engine *learn.Engine
	dirty  bool
}

// Key returns the (user, library) key this session belongs to.
func (c *Context) Key() Key {
	return c.key
}

// NextQuestion returns the next question, or nil when the session is
// finished.
func (c *Context) NextQuestion() *learn.Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.NextQuestion()
}

// SubmitAnswer grades an answer and persists the resulting state. The
// grading result is returned even when the save fails; a crash between
// mutation and write loses at most this one answer.
func (c *Context) SubmitAnswer(ctx context.Context, cardID, answer string) (learn.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := c.engine.SubmitAnswer(cardID, answer)
	if result == learn.ResultSkip {
		return result, nil
	}
	c.dirty = true
	return result, c.save(ctx)
}

// MarkCardAsHard flags a card as hard and persists the change.
func (c *Context) MarkCardAsHard(ctx context.Context, cardID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.engine.GetCardState(cardID) == nil {
		return nil
	}
	c.engine.MarkCardAsHard(cardID)
	c.dirty = true
	return c.save(ctx)
}

// RecordChoice records a difficulty rating and persists it. A
// RatingLockedError passes through unchanged for the UI to surface.
func (c *Context) RecordChoice(ctx context.Context, cardID string, choice difficulty.Choice) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.engine.RecordChoice(cardID, choice); err != nil {
		return err
	}
	c.dirty = true
	return c.save(ctx)
}

// Card returns the immutable card for an id, for rendering feedback.
func (c *Context) Card(cardID string) (deck.Card, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Card(cardID)
}

// GetCardState returns the live state for a card, or nil for an
// unknown id.
func (c *Context) GetCardState(cardID string) *learn.CardState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.GetCardState(cardID)
}

// DifficultyMeta computes the rating status for a card.
func (c *Context) DifficultyMeta(cardID string) (difficulty.Meta, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.DifficultyMeta(cardID)
}

// Serialize exports the current snapshot.
func (c *Context) Serialize() learn.SerializedState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Serialize()
}

// Finished reports whether every card is mastered with nothing due.
func (c *Context) Finished() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Finished()
}

// Flush saves the current snapshot if it changed since the last write.
func (c *Context) Flush(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return nil
	}
	return c.save(ctx)
}

// save writes the snapshot through to the progress store.
// Callers must hold c.mu.
func (c *Context) save(ctx context.Context) error {
	snap := c.engine.Serialize()
	if err := c.progress.SaveProgress(ctx, c.key.UserID, c.key.LibraryID, snap); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	c.dirty = false
	return nil
}
