package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/aiptu/mynotes/internal/model"
)

// SQLiteStore implements Store using SQLite. It also carries the sessions
// and inbox tables backing the player directory and messaging sink.
type SQLiteStore struct {
	db      *sql.DB
	log     zerolog.Logger
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string, log zerolog.Logger) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		log:     log,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	s.log.Debug().Str("path", dbPath).Msg("database ready")

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS notes (
		owner       TEXT NOT NULL,
		title       TEXT NOT NULL,
		content     TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		modified_at TEXT NOT NULL,
		pinned      INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (owner, title)
	);
	CREATE INDEX IF NOT EXISTS idx_notes_owner ON notes(owner);

	CREATE TABLE IF NOT EXISTS sessions (
		player     TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		started_at TEXT NOT NULL,
		last_seen  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS inbox (
		id         TEXT PRIMARY KEY,
		player     TEXT NOT NULL,
		body       TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_inbox_player ON inbox(player);
	`
	_, err := s.db.Exec(schema)
	return err
}

// normOwner makes owner matching case-insensitive.
func normOwner(owner string) string {
	return strings.ToLower(strings.TrimSpace(owner))
}

func (s *SQLiteStore) List(ctx context.Context, owner string) ([]model.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT title, content, created_at, modified_at, pinned
		 FROM notes WHERE owner = ?
		 ORDER BY pinned DESC, rowid ASC`, normOwner(owner))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (s *SQLiteStore) Get(ctx context.Context, owner, title string) (*model.Note, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT title, content, created_at, modified_at, pinned
		 FROM notes WHERE owner = ? AND title = ?`, normOwner(owner), title)

	n, err := scanNote(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

const upsertNote = `
	INSERT INTO notes (owner, title, content, created_at, modified_at, pinned)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (owner, title) DO UPDATE SET
		content     = excluded.content,
		created_at  = excluded.created_at,
		modified_at = excluded.modified_at,
		pinned      = excluded.pinned`

func (s *SQLiteStore) Put(ctx context.Context, owner string, note model.Note) error {
	_, err := s.db.ExecContext(ctx, upsertNote,
		normOwner(owner), note.Title, note.Content,
		note.CreatedAt, note.ModifiedAt, boolInt(note.Pinned))
	return err
}

func (s *SQLiteStore) Delete(ctx context.Context, owner, title string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM notes WHERE owner = ? AND title = ?`, normOwner(owner), title)
	return err
}

func (s *SQLiteStore) Exists(ctx context.Context, owner, title string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM notes WHERE owner = ? AND title = ?`, normOwner(owner), title).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *SQLiteStore) Rename(ctx context.Context, owner, oldTitle string, updated model.Note) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	o := normOwner(owner)
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM notes WHERE owner = ? AND title = ?`, o, oldTitle); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, upsertNote,
		o, updated.Title, updated.Content,
		updated.CreatedAt, updated.ModifiedAt, boolInt(updated.Pinned)); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanNote(row scanner) (model.Note, error) {
	var n model.Note
	var pinned int
	err := row.Scan(&n.Title, &n.Content, &n.CreatedAt, &n.ModifiedAt, &pinned)
	if err != nil {
		return n, err
	}
	n.Pinned = pinned != 0
	return n, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
