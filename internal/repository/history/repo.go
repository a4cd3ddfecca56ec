// Package history persists the append-only dispatch audit log.
package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/pushworks/push-scheduler/internal/model"
)

const defaultLimit = 50

// Repository provides access to the dispatch_history table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new dispatch history repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Append records one completed dispatch attempt and returns its ID. Records
// are never updated afterwards.
func (r *Repository) Append(ctx context.Context, rec model.DispatchRecord) (uuid.UUID, error) {
	query := `
		INSERT INTO dispatch_history (
		    title, body, target, sent_at, total_devices, success_count, failure_count, notification_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query,
		rec.Title, rec.Body, rec.Target, rec.SentAt,
		rec.TotalDevices, rec.SuccessCount, rec.FailureCount, rec.NotificationID,
	).Scan(&rec.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to append dispatch record: %w", err)
	}

	return rec.ID, nil
}

// ListHistory returns the most recent dispatch records, newest first.
func (r *Repository) ListHistory(ctx context.Context, limit int) ([]model.DispatchRecord, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	query := `
		SELECT id, title, body, target, sent_at, total_devices, success_count, failure_count, notification_id
		FROM dispatch_history
		ORDER BY sent_at DESC
		LIMIT $1;
    `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch history: %w", err)
	}
	defer rows.Close()

	var records []model.DispatchRecord
	for rows.Next() {
		var rec model.DispatchRecord
		err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Body, &rec.Target, &rec.SentAt,
			&rec.TotalDevices, &rec.SuccessCount, &rec.FailureCount, &rec.NotificationID,
		)
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}
