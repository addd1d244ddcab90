package store

// schema creates the tables on first open. Progress is stored as a
// JSON blob keyed by (user_id, library_id); the blob's layout belongs
// to the learn package, not to this schema.
const schema = `
CREATE TABLE IF NOT EXISTS libraries (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cards (
	id         TEXT PRIMARY KEY,
	library_id TEXT NOT NULL REFERENCES libraries(id) ON DELETE CASCADE,
	position   INTEGER NOT NULL,
	front      TEXT NOT NULL,
	back       TEXT NOT NULL,
	domain     TEXT NOT NULL DEFAULT '',
	difficulty TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_cards_library ON cards(library_id, position);

CREATE TABLE IF NOT EXISTS progress (
	user_id    TEXT NOT NULL,
	library_id TEXT NOT NULL REFERENCES libraries(id) ON DELETE CASCADE,
	state      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (user_id, library_id)
);
`
