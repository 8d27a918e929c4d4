package store

import (
	"context"
	"database/sql"
	"time"
)

// DefaultLiveness is how long after its last heartbeat a session still
// counts as online.
const DefaultLiveness = 5 * time.Minute

// Touch registers or refreshes the player's session heartbeat. started_at is
// kept from the first touch of a session.
func (s *SQLiteStore) Touch(ctx context.Context, player, sessionID string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (player, session_id, started_at, last_seen)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (player) DO UPDATE SET
			session_id = excluded.session_id,
			last_seen  = excluded.last_seen`,
		normOwner(player), sessionID, now, now)
	return err
}

// Online returns the players seen within the liveness window, excluding the
// given one, oldest session first.
func (s *SQLiteStore) Online(ctx context.Context, exclude string, window time.Duration) ([]string, error) {
	cutoff := time.Now().UTC().Add(-window).Format(time.RFC3339)
	rows, err := s.db.QueryContext(ctx,
		`SELECT player FROM sessions
		 WHERE last_seen >= ? AND player != ?
		 ORDER BY started_at ASC`, cutoff, normOwner(exclude))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// Directory adapts the sessions table to the menu flow's player-directory
// port with a fixed liveness window.
type Directory struct {
	store  *SQLiteStore
	window time.Duration
}

// NewDirectory builds a Directory over the store. A non-positive window
// falls back to DefaultLiveness.
func NewDirectory(s *SQLiteStore, window time.Duration) *Directory {
	if window <= 0 {
		window = DefaultLiveness
	}
	return &Directory{store: s, window: window}
}

// Online lists online players excluding the given one.
func (d *Directory) Online(ctx context.Context, exclude string) ([]string, error) {
	return d.store.Online(ctx, exclude, d.window)
}

// Resolve reports whether the named player is still online.
func (d *Directory) Resolve(ctx context.Context, name string) (bool, error) {
	return d.store.Resolve(ctx, name, d.window)
}

// Resolve reports whether the named player is currently within the liveness
// window.
func (s *SQLiteStore) Resolve(ctx context.Context, name string, window time.Duration) (bool, error) {
	cutoff := time.Now().UTC().Add(-window).Format(time.RFC3339)
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM sessions WHERE player = ? AND last_seen >= ?`,
		normOwner(name), cutoff).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
