package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/pushworks/push-scheduler/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNoNotificationsFound = errors.New("no notifications found")
)

const notificationColumns = `id, title, body, image_url, click_action, data, recipient,
		    scheduled_at, status, frequency, time_of_day, last_error,
		    success_count, failure_count, total_devices, created_at, updated_at`

// Repository provides access to the scheduled_notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateNotification inserts a new pending notification and returns its ID.
func (r *Repository) CreateNotification(ctx context.Context, n model.ScheduledNotification) (uuid.UUID, error) {
	data, err := json.Marshal(n.Content.Data)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal notification data: %w", err)
	}

	var frequency, timeOfDay sql.NullString
	if n.Recurrence != nil {
		frequency = sql.NullString{String: n.Recurrence.Frequency, Valid: true}
		if n.Recurrence.TimeOfDay != "" {
			timeOfDay = sql.NullString{String: n.Recurrence.TimeOfDay, Valid: true}
		}
	}

	query := `
		INSERT INTO scheduled_notifications (
		    title, body, image_url, click_action, data, recipient, scheduled_at, status, frequency, time_of_day
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
    `

	err = r.db.QueryRowContext(
		ctx, query,
		n.Content.Title, n.Content.Body, n.Content.ImageURL, n.Content.ClickAction, data,
		n.Recipient, n.ScheduledAt, n.Status, frequency, timeOfDay,
	).Scan(&n.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return n.ID, nil
}

// ClaimDue atomically moves every due pending notification into the
// processing state and returns the claimed records. The subselect locks the
// rows with SKIP LOCKED so an overlapping tick cannot claim the same record
// twice.
func (r *Repository) ClaimDue(ctx context.Context, now time.Time) ([]model.ScheduledNotification, error) {
	query := `
		UPDATE scheduled_notifications
		SET status = 'processing', updated_at = NOW()
		WHERE id IN (
		    SELECT id FROM scheduled_notifications
		    WHERE status = 'pending' AND scheduled_at <= $1
		    FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + notificationColumns + `;
    `

	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to claim due notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.ScheduledNotification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkSent finishes a one-shot notification with its dispatch counts.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, success, failure, total int) error {
	query := `
		UPDATE scheduled_notifications
		SET status = 'sent', success_count = $1, failure_count = $2, total_devices = $3,
		    last_error = NULL, updated_at = NOW()
		WHERE id = $4;
    `

	return r.exec(ctx, query, success, failure, total, id)
}

// Reschedule folds a recurring notification back into pending with its next
// fire time, so the record is never observable in a bare sent state.
func (r *Repository) Reschedule(ctx context.Context, id uuid.UUID, next time.Time, success, failure, total int) error {
	query := `
		UPDATE scheduled_notifications
		SET status = 'pending', scheduled_at = $1, success_count = $2, failure_count = $3,
		    total_devices = $4, last_error = NULL, updated_at = NOW()
		WHERE id = $5;
    `

	return r.exec(ctx, query, next, success, failure, total, id)
}

// MarkFailed records a terminal failure. ScheduledAt is deliberately left
// unchanged so a failed one-shot is not silently retried and a failed
// recurring record halts until externally rescheduled or cancelled.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	query := `
		UPDATE scheduled_notifications
		SET status = 'failed', last_error = $1, updated_at = NOW()
		WHERE id = $2;
    `

	return r.exec(ctx, query, reason, id)
}

// Release returns a claimed record to pending after a persistence failure so
// the next tick re-evaluates it. A duplicate send is accepted over a silent
// loss.
func (r *Repository) Release(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE scheduled_notifications
		SET status = 'pending', updated_at = NOW()
		WHERE id = $1 AND status = 'processing';
    `

	return r.exec(ctx, query, id)
}

// CancelNotification cancels a record unless it already reached a terminal
// state. A cancel racing an in-flight dispatch resolves by last write.
func (r *Repository) CancelNotification(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE scheduled_notifications
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status IN ('pending', 'processing');
    `

	return r.exec(ctx, query, id)
}

// GetNotificationStatusByID retrieves the status of a notification by its ID.
func (r *Repository) GetNotificationStatusByID(ctx context.Context, id uuid.UUID) (string, error) {
	query := `
		SELECT status
		FROM scheduled_notifications
		WHERE id = $1;
    `

	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotificationNotFound
		}

		return "", fmt.Errorf("failed to get notification status: %w", err)
	}

	return status, nil
}

// GetNotificationByID retrieves a full notification record.
func (r *Repository) GetNotificationByID(ctx context.Context, id uuid.UUID) (model.ScheduledNotification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM scheduled_notifications
		WHERE id = $1;
    `

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ScheduledNotification{}, ErrNotificationNotFound
		}

		return model.ScheduledNotification{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// GetAllNotifications retrieves all notifications ordered by ScheduledAt descending.
func (r *Repository) GetAllNotifications(ctx context.Context) ([]model.ScheduledNotification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM scheduled_notifications
		ORDER BY scheduled_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.ScheduledNotification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	if len(notifications) == 0 {
		return nil, ErrNoNotificationsFound
	}

	return notifications, nil
}

func (r *Repository) exec(ctx context.Context, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanNotification(row scanner) (model.ScheduledNotification, error) {
	var (
		n           model.ScheduledNotification
		imageURL    sql.NullString
		clickAction sql.NullString
		data        []byte
		recipient   sql.NullString
		frequency   sql.NullString
		timeOfDay   sql.NullString
		lastError   sql.NullString
		success     sql.NullInt64
		failure     sql.NullInt64
		total       sql.NullInt64
	)

	err := row.Scan(
		&n.ID, &n.Content.Title, &n.Content.Body, &imageURL, &clickAction, &data, &recipient,
		&n.ScheduledAt, &n.Status, &frequency, &timeOfDay, &lastError,
		&success, &failure, &total, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return model.ScheduledNotification{}, err
	}

	n.Content.ImageURL = imageURL.String
	n.Content.ClickAction = clickAction.String
	if len(data) > 0 {
		if err := json.Unmarshal(data, &n.Content.Data); err != nil {
			return model.ScheduledNotification{}, fmt.Errorf("unmarshal notification data: %w", err)
		}
	}

	n.Recipient = recipient.String
	if frequency.Valid {
		n.Recurrence = &model.RecurrenceRule{Frequency: frequency.String, TimeOfDay: timeOfDay.String}
	}

	n.LastError = lastError.String
	n.SuccessCount = int(success.Int64)
	n.FailureCount = int(failure.Int64)
	n.TotalDevices = int(total.Int64)

	return n, nil
}
