package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"satsang/internal/ports"
)

// SQLiteStorage implementa StorageProvider sobre a tabela kv_store.
type SQLiteStorage struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db: db, now: time.Now}
}

// WithClock troca o relógio usado em updated_at.
func (s *SQLiteStorage) WithClock(now func() time.Time) *SQLiteStorage {
	s.now = now
	return s
}

// PurgeOlderThan remove as linhas sem escrita desde cutoff.
func (s *SQLiteStorage) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM kv_store WHERE updated_at < ?", cutoff.UnixMilli())
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *SQLiteStorage) Scope(scopeID string) ports.ScopedStorage {
	if scopeID == "" {
		return nil
	}
	return &sqliteScope{db: s.db, now: s.now, scopeID: scopeID}
}

type sqliteScope struct {
	db      *sql.DB
	now     func() time.Time
	scopeID string
}

func (s *sqliteScope) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM kv_store WHERE scope = ? AND key = ?", s.scopeID, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set grava o valor; a última escrita vence.
func (s *sqliteScope) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (scope, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (scope, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	_, err := s.db.ExecContext(ctx, query, s.scopeID, key, value, s.now().UnixMilli())
	return err
}

func (s *sqliteScope) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM kv_store WHERE scope = ? AND key = ?", s.scopeID, key)
	return err
}
