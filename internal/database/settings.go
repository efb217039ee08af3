package database

import (
	"context"
	"database/sql"
)

// GetSetting returns the stored value for key. The bool is false when the
// key is absent or unreadable.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	if !value.Valid {
		return "", false
	}
	return value.String, true
}

// SetSetting upserts key.
func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapSettingErr("set", key, err)
}

// SetSettings upserts several keys in one transaction.
func (d *Database) SetSettings(ctx context.Context, values map[string]string) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value")
		if err != nil {
			return err
		}
		defer stmt.Close()
		for k, v := range values {
			if _, err := stmt.ExecContext(ctx, k, v); err != nil {
				return wrapSettingErr("set", k, err)
			}
		}
		return nil
	})
	return err
}

// ClearSettings removes every stored setting.
func (d *Database) ClearSettings(ctx context.Context) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM settings")
	return wrapSettingErr("clear", "", err)
}

