package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/studyhub/studyhub/internal/apperror"
	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/repository"
)

// Compile-time check that *DB implements repository.UserSlot.
var _ repository.UserSlot = (*DB)(nil)

// Save serializes the user and writes it into the single slot row.
//
// INSERT OR REPLACE is the simplest SQLite upsert idiom: first save inserts
// the row, every later save replaces it. The id=1 CHECK constraint in the
// schema guarantees the table never holds more than one record.
func (db *DB) Save(ctx context.Context, user *model.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("sqlite: encoding user %s: %w", user.ID, err)
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT OR REPLACE INTO identity_slot (id, payload, updated_at)
		 VALUES (1, ?, ?)`,
		string(payload),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: saving identity slot: %w", err)
	}

	return nil
}

// Load reads the slot and deserializes the user. An empty slot translates to
// apperror.ErrNotFound — "not logged in" is a normal state, not a failure.
func (db *DB) Load(ctx context.Context) (*model.User, error) {
	var payload string

	err := db.conn.QueryRowContext(ctx,
		`SELECT payload FROM identity_slot WHERE id = 1`,
	).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("session user", "current")
		}
		return nil, fmt.Errorf("sqlite: loading identity slot: %w", err)
	}

	var user model.User
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		return nil, fmt.Errorf("sqlite: decoding identity slot: %w", err)
	}

	return &user, nil
}

// Clear deletes the slot row. Deleting from an empty slot affects zero rows
// and is treated as success.
func (db *DB) Clear(ctx context.Context) error {
	_, err := db.conn.ExecContext(ctx, `DELETE FROM identity_slot WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("sqlite: clearing identity slot: %w", err)
	}
	return nil
}
