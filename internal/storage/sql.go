package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv_store (
	k VARCHAR(191) NOT NULL PRIMARY KEY,
	v LONGTEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`

const upsertKV = `
	INSERT INTO kv_store (k, v) VALUES (?, ?)
	ON DUPLICATE KEY UPDATE v = VALUES(v)
`

// SQL keeps items in a MySQL kv_store table.
type SQL struct {
	DB *sql.DB
}

// EnsureTable creates kv_store when it does not exist yet.
func (s SQL) EnsureTable(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("db is not available")
	}
	_, err := s.DB.ExecContext(ctx, createKVTable)
	return err
}

func (s SQL) GetItem(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.DB.QueryRowContext(ctx, `SELECT v FROM kv_store WHERE k = ? LIMIT 1`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s SQL) SetItem(ctx context.Context, key, value string) error {
	_, err := s.DB.ExecContext(ctx, upsertKV, key, value)
	return err
}

// SetItems upserts all items in one transaction.
func (s SQL) SetItems(ctx context.Context, items map[string]string) error {
	if len(items) == 0 {
		return nil
	}
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin kv transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, upsertKV, k, items[k]); err != nil {
			return fmt.Errorf("write %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit kv transaction: %w", err)
	}
	committed = true
	return nil
}

func (s SQL) RemoveItem(ctx context.Context, key string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM kv_store WHERE k = ?`, key)
	return err
}
