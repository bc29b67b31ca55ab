package session

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/jrsteele09/go-sso-relay/internal/errors"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id         TEXT PRIMARY KEY,
		payload    BLOB NOT NULL,
		expires_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS sessions_expires_at ON sessions (expires_at)`,
}

// SQLiteStore keeps sessions in a local SQLite file so they survive restarts
// of a single instance.
type SQLiteStore struct {
	db     *sql.DB
	sealer *Sealer
	now    Clock
}

var (
	_ Store   = (*SQLiteStore)(nil)
	_ Expirer = (*SQLiteStore)(nil)
)

// OpenSQLiteStore opens (creating if needed) the database at path.
func OpenSQLiteStore(ctx context.Context, path string, opts ...StoreOption) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "[session OpenSQLiteStore] failed to create directory for %s", path)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Wrapf(err, "[session OpenSQLiteStore] failed to open %s", path)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "[session OpenSQLiteStore] failed to ping %s", path)
	}
	store, err := NewSQLiteStore(ctx, db, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// NewSQLiteStore wraps an open database and ensures the schema exists.
func NewSQLiteStore(ctx context.Context, db *sql.DB, opts ...StoreOption) (*SQLiteStore, error) {
	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, errors.Wrapf(err, "[session NewSQLiteStore] failed to apply schema")
		}
	}
	o := newStoreOptions(opts)
	return &SQLiteStore{db: db, sealer: o.sealer, now: o.clock}, nil
}

func (s *SQLiteStore) Upsert(ctx context.Context, session Session, ttl time.Duration) error {
	if session.ID == "" {
		return errors.New("session ID is required")
	}
	payload, err := encodeSession(session, s.sealer)
	if err != nil {
		return err
	}
	expiresAt := s.now().Add(ttl).UnixMilli()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, payload, expires_at) VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, expires_at = excluded.expires_at`,
		session.ID, payload, expiresAt,
	)
	if err != nil {
		return errors.Wrapf(err, "[SQLiteStore Upsert] failed to write session")
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (Session, error) {
	if id == "" {
		return Session{}, errors.New("session ID is required")
	}
	var (
		payload   []byte
		expiresAt int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, expires_at FROM sessions WHERE id = ?`, id,
	).Scan(&payload, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, errors.ErrSessionNotFound
	}
	if err != nil {
		return Session{}, errors.Wrapf(err, "[SQLiteStore Get] failed to read session")
	}
	if s.now().UnixMilli() >= expiresAt {
		return Session{}, errors.ErrSessionNotFound
	}
	return decodeSession(payload, s.sealer)
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("session ID is required")
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return errors.Wrapf(err, "[SQLiteStore Delete] failed to delete session")
	}
	return nil
}

func (s *SQLiteStore) DeleteExpired(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, s.now().UnixMilli())
	if err != nil {
		return 0, errors.Wrapf(err, "[SQLiteStore DeleteExpired] failed to sweep sessions")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrapf(err, "[SQLiteStore DeleteExpired] failed to count swept sessions")
	}
	return int(n), nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
