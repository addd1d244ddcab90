package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tpnguyen/vocadrill/internal/deck"
)

type cardRow struct {
	ID         string `db:"id"`
	LibraryID  string `db:"library_id"`
	Position   int    `db:"position"`
	Front      string `db:"front"`
	Back       string `db:"back"`
	Domain     string `db:"domain"`
	Difficulty string `db:"difficulty"`
}

// LibraryInfo is a library row plus its card count.
type LibraryInfo struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	CardCount int    `db:"card_count"`
}

// ImportDeck stores a deck as a library, replacing any previous cards
// under the same library id.
func (s *Store) ImportDeck(ctx context.Context, d *deck.Deck) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO libraries (id, name) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		d.ID, d.Name,
	); err != nil {
		return fmt.Errorf("upsert library %s: %w", d.ID, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM cards WHERE library_id = ?`, d.ID,
	); err != nil {
		return fmt.Errorf("clear cards for %s: %w", d.ID, err)
	}

	for i, c := range d.Cards {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO cards (id, library_id, position, front, back, domain, difficulty)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			c.ID, d.ID, i, c.Front, c.Back, c.Domain, string(c.Difficulty),
		); err != nil {
			return fmt.Errorf("insert card %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// LoadLibraryCards returns a library's cards in authored order.
// A missing library yields a NotFoundError.
func (s *Store) LoadLibraryCards(ctx context.Context, libraryID string) ([]deck.Card, error) {
	var name string
	err := s.db.GetContext(ctx, &name,
		`SELECT name FROM libraries WHERE id = ?`, libraryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Kind: "library", ID: libraryID}
	}
	if err != nil {
		return nil, fmt.Errorf("query library %s: %w", libraryID, err)
	}

	var rows []cardRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT id, library_id, position, front, back, domain, difficulty
		 FROM cards WHERE library_id = ? ORDER BY position`, libraryID,
	); err != nil {
		return nil, fmt.Errorf("query cards for %s: %w", libraryID, err)
	}

	cards := make([]deck.Card, len(rows))
	for i, r := range rows {
		cards[i] = deck.Card{
			ID:         r.ID,
			Front:      r.Front,
			Back:       r.Back,
			Domain:     r.Domain,
			Difficulty: deck.Difficulty(r.Difficulty),
		}
	}
	return cards, nil
}

// ListLibraries returns all libraries with card counts, sorted by name.
func (s *Store) ListLibraries(ctx context.Context) ([]LibraryInfo, error) {
	var infos []LibraryInfo
	if err := s.db.SelectContext(ctx, &infos,
		`SELECT l.id, l.name, COUNT(c.id) AS card_count
		 FROM libraries l LEFT JOIN cards c ON c.library_id = l.id
		 GROUP BY l.id, l.name ORDER BY l.name`,
	); err != nil {
		return nil, fmt.Errorf("query libraries: %w", err)
	}
	return infos, nil
}
