package repository

import (
	"context"
	"database/sql"
)

// SettingRepo stores the process-wide key/value configuration
// (maintenance mode, UPI payment identifiers). Reads are wrapped in
// a TTL cache at the service layer.
type SettingRepo struct {
	db *sql.DB
}

// NewSettingRepo constructs a SettingRepo with the given DB handle.
func NewSettingRepo(db *sql.DB) *SettingRepo { return &SettingRepo{db: db} }

// Get returns the value for a key, or ErrSettingNotFound.
func (r *SettingRepo) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE `+"`key`"+` = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", ErrSettingNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

// Upsert inserts or overwrites the value for a key.
func (r *SettingRepo) Upsert(ctx context.Context, key, value string) error {
	const q = "INSERT INTO settings (`key`, value) VALUES (?, ?) ON DUPLICATE KEY UPDATE value = VALUES(value)"
	_, err := r.db.ExecContext(ctx, q, key, value)
	return err
}
