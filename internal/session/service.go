// Package session owns one review engine per (user, library) key,
// restoring saved progress on first access and writing every mutation
// through to the persistence adapter.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tpnguyen/vocadrill/internal/deck"
	"github.com/tpnguyen/vocadrill/internal/difficulty"
	"github.com/tpnguyen/vocadrill/internal/learn"
)

// CardSource loads the card set for a library.
type CardSource interface {
	LoadLibraryCards(ctx context.Context, libraryID string) ([]deck.Card, error)
}

// ProgressStore loads and saves serialized engine state. LoadProgress
// returns (nil, nil) when no snapshot exists yet.
type ProgressStore interface {
	LoadProgress(ctx context.Context, userID, libraryID string) (*learn.SerializedState, error)
	SaveProgress(ctx context.Context, userID, libraryID string, snap learn.SerializedState) error
}

// Key identifies one learner's session on one library.
type Key struct {
	UserID    string
	LibraryID string
}

// Service caches at most one live engine per key. The cache is an
// explicit, constructible collection so tests can spin up independent
// services without cross-test leakage.
type Service struct {
	cards    CardSource
	progress ProgressStore
	policy   learn.Policy
	gateCfg  difficulty.Config

	mu       sync.Mutex
	sessions map[Key]*Context
}

// NewService creates a session service over the given adapter.
func NewService(cards CardSource, progress ProgressStore, policy learn.Policy, gateCfg difficulty.Config) *Service {
	return &Service{
		cards:    cards,
		progress: progress,
		policy:   policy,
		gateCfg:  gateCfg,
		sessions: make(map[Key]*Context),
	}
}

// GetSession returns the cached session for the key, constructing one
// on a miss: cards are loaded through the adapter, and a prior snapshot
// is restored if present and structurally valid. A snapshot that fails
// validation is discarded (never repaired); the engine starts fresh and
// the rejection is reported on the returned context.
func (s *Service) GetSession(ctx context.Context, userID, libraryID string) (*Context, error) {
	key := Key{UserID: userID, LibraryID: libraryID}

	s.mu.Lock()
	if sc, ok := s.sessions[key]; ok {
		s.mu.Unlock()
		return sc, nil
	}
	s.mu.Unlock()

	cards, err := s.cards.LoadLibraryCards(ctx, libraryID)
	if err != nil {
		return nil, fmt.Errorf("load library cards: %w", err)
	}

	engine := learn.NewEngine(cards, s.policy, difficulty.NewGate(s.gateCfg))

	var restoreErr error
	snap, err := s.progress.LoadProgress(ctx, userID, libraryID)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if snap != nil {
		if err := engine.Restore(*snap); err != nil {
			var malformed *learn.MalformedStateError
			if !errors.As(err, &malformed) {
				return nil, fmt.Errorf("restore progress: %w", err)
			}
			restoreErr = err
			engine = learn.NewEngine(cards, s.policy, difficulty.NewGate(s.gateCfg))
		}
	}

	sc := &Context{
		key:        key,
		engine:     engine,
		progress:   s.progress,
		RestoreErr: restoreErr,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.sessions[key]; ok {
		// Another caller built the session first; keep theirs.
		return existing, nil
	}
	s.sessions[key] = sc
	return sc, nil
}

// Flush forces a save for the key if a session is cached. Idempotent if
// nothing changed since the last write.
func (s *Service) Flush(ctx context.Context, userID, libraryID string) error {
	s.mu.Lock()
	sc, ok := s.sessions[Key{UserID: userID, LibraryID: libraryID}]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	return sc.Flush(ctx)
}

// Drop evicts the cached session for the key. Durable state is left
// untouched.
func (s *Service) Drop(userID, libraryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, Key{UserID: userID, LibraryID: libraryID})
}
