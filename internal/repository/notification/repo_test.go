package notification

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/pushworks/push-scheduler/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestCreateNotification(t *testing.T) {
	repo, mock := setupMockDB(t)

	notificationID := uuid.New()
	n := model.ScheduledNotification{
		Content: model.NotificationContent{
			Title: "Release",
			Body:  "v2 is out",
			Data:  map[string]string{"version": "2"},
		},
		Recipient:   "alice",
		ScheduledAt: time.Now(),
		Status:      model.StatusPending,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO scheduled_notifications (
		    title, body, image_url, click_action, data, recipient, scheduled_at, status, frequency, time_of_day
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
    `)).
		WithArgs(
			n.Content.Title, n.Content.Body, n.Content.ImageURL, n.Content.ClickAction,
			[]byte(`{"version":"2"}`), n.Recipient, n.ScheduledAt, n.Status,
			sql.NullString{}, sql.NullString{},
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(notificationID))

	id, err := repo.CreateNotification(context.Background(), n)
	assert.NoError(t, err)
	assert.Equal(t, notificationID, id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNotification_Recurring(t *testing.T) {
	repo, mock := setupMockDB(t)

	notificationID := uuid.New()
	n := model.ScheduledNotification{
		Content: model.NotificationContent{
			Title: "Digest",
			Body:  "daily digest",
		},
		ScheduledAt: time.Now(),
		Status:      model.StatusPending,
		Recurrence:  &model.RecurrenceRule{Frequency: model.FrequencyDaily, TimeOfDay: "09:00"},
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO scheduled_notifications (
		    title, body, image_url, click_action, data, recipient, scheduled_at, status, frequency, time_of_day
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
    `)).
		WithArgs(
			n.Content.Title, n.Content.Body, "", "",
			[]byte(`null`), "", n.ScheduledAt, n.Status,
			sql.NullString{String: "daily", Valid: true},
			sql.NullString{String: "09:00", Valid: true},
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(notificationID))

	id, err := repo.CreateNotification(context.Background(), n)
	assert.NoError(t, err)
	assert.Equal(t, notificationID, id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimDue(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	id := uuid.New()
	columns := []string{
		"id", "title", "body", "image_url", "click_action", "data", "recipient",
		"scheduled_at", "status", "frequency", "time_of_day", "last_error",
		"success_count", "failure_count", "total_devices", "created_at", "updated_at",
	}

	rows := sqlmock.NewRows(columns).AddRow(
		id, "Digest", "daily digest", nil, nil, []byte(`{"k":"v"}`), "alice",
		now.Add(-time.Minute), model.StatusProcessing, "daily", "09:00", nil,
		3, 1, 4, now.Add(-time.Hour), now,
	)

	mock.ExpectQuery("UPDATE scheduled_notifications").
		WithArgs(now).
		WillReturnRows(rows)

	claimed, err := repo.ClaimDue(context.Background(), now)
	assert.NoError(t, err)
	assert.Len(t, claimed, 1)

	n := claimed[0]
	assert.Equal(t, id, n.ID)
	assert.Equal(t, "Digest", n.Content.Title)
	assert.Equal(t, map[string]string{"k": "v"}, n.Content.Data)
	assert.Equal(t, "alice", n.Recipient)
	assert.Equal(t, model.StatusProcessing, n.Status)
	assert.NotNil(t, n.Recurrence)
	assert.Equal(t, model.FrequencyDaily, n.Recurrence.Frequency)
	assert.Equal(t, "09:00", n.Recurrence.TimeOfDay)
	assert.Equal(t, 3, n.SuccessCount)
	assert.Equal(t, 1, n.FailureCount)
	assert.Equal(t, 4, n.TotalDevices)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimDue_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	mock.ExpectQuery("UPDATE scheduled_notifications").
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	claimed, err := repo.ClaimDue(context.Background(), now)
	assert.NoError(t, err)
	assert.Empty(t, claimed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSent(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE scheduled_notifications
		SET status = 'sent', success_count = $1, failure_count = $2, total_devices = $3,
		    last_error = NULL, updated_at = NOW()
		WHERE id = $4;
    `)).
		WithArgs(5, 1, 6, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkSent(context.Background(), id, 5, 1, 6)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReschedule(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	next := time.Now().Add(24 * time.Hour)

	mock.ExpectExec("UPDATE scheduled_notifications").
		WithArgs(next, 5, 0, 5, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Reschedule(context.Background(), id, next, 5, 0, 5)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkFailed(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec("UPDATE scheduled_notifications").
		WithArgs("no registered devices for target broadcast", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkFailed(context.Background(), id, "no registered devices for target broadcast")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelNotification(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec("UPDATE scheduled_notifications").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CancelNotification(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	// A record already in a terminal state matches no rows.
	mock.ExpectExec("UPDATE scheduled_notifications").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.CancelNotification(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotificationStatusByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT status
		FROM scheduled_notifications
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.StatusPending))

	status, err := repo.GetNotificationStatusByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, status)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT status
		FROM scheduled_notifications
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	status, err = repo.GetNotificationStatusByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	assert.Equal(t, "", status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllNotifications_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetAllNotifications(context.Background())
	assert.ErrorIs(t, err, ErrNoNotificationsFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelease(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec("UPDATE scheduled_notifications").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Release(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
