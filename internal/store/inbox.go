package store

import (
	"context"
	"time"
)

// Enqueue stores a notification for delivery the next time the player opens
// the menu.
func (s *SQLiteStore) Enqueue(ctx context.Context, player, body string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO inbox (id, player, body, created_at) VALUES (?, ?, ?, ?)`,
		s.newID(), normOwner(player), body, now)
	return err
}

// Drain returns and removes the player's pending notifications, oldest
// first. Each message is delivered at most once.
func (s *SQLiteStore) Drain(ctx context.Context, player string) ([]string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	p := normOwner(player)
	rows, err := tx.QueryContext(ctx,
		`SELECT body FROM inbox WHERE player = ? ORDER BY created_at ASC, rowid ASC`, p)
	if err != nil {
		return nil, err
	}

	var bodies []string
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			rows.Close()
			return nil, err
		}
		bodies = append(bodies, b)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if _, err := tx.ExecContext(ctx, `DELETE FROM inbox WHERE player = ?`, p); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return bodies, nil
}
