// Package device stores push destination tokens keyed by owner.
package device

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/pushworks/push-scheduler/internal/model"
)

var ErrDeviceNotFound = errors.New("device not found")

// Repository provides access to the device_tokens table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new device token repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// RegisterToken upserts a device token. Re-registering an existing token
// moves it to the new owner.
func (r *Repository) RegisterToken(ctx context.Context, d model.DeviceToken) (uuid.UUID, error) {
	query := `
		INSERT INTO device_tokens (owner_id, token, platform)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE SET owner_id = EXCLUDED.owner_id, platform = EXCLUDED.platform
		RETURNING id;
    `

	owner := sql.NullString{String: d.OwnerID, Valid: d.OwnerID != ""}

	err := r.db.QueryRowContext(ctx, query, owner, d.Token, d.Platform).Scan(&d.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to register device token: %w", err)
	}

	return d.ID, nil
}

// TokensForAll returns every registered token.
func (r *Repository) TokensForAll(ctx context.Context) ([]string, error) {
	query := `
		SELECT token
		FROM device_tokens;
    `

	return r.queryTokens(ctx, query)
}

// TokensForOwner returns the tokens registered by one owner.
func (r *Repository) TokensForOwner(ctx context.Context, owner string) ([]string, error) {
	query := `
		SELECT token
		FROM device_tokens
		WHERE owner_id = $1;
    `

	return r.queryTokens(ctx, query, owner)
}

// DeleteByToken removes every registration of token. Deleting a token that
// is already gone is not an error: pruning races device re-registration.
func (r *Repository) DeleteByToken(ctx context.Context, token string) error {
	query := `
		DELETE FROM device_tokens
		WHERE token = $1;
    `

	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("failed to delete device token: %w", err)
	}

	return nil
}

// DeleteByID removes one registration by its ID.
func (r *Repository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM device_tokens
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

func (r *Repository) queryTokens(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query device tokens: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}

		tokens = append(tokens, token)
	}

	return tokens, rows.Err()
}
