package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification statuses. A record is moved into StatusProcessing for the
// duration of one dispatch pass so an overlapping scheduler tick cannot claim
// it twice.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusSent       = "sent"
	StatusFailed     = "failed"
	StatusCancelled  = "cancelled"
)

// Recurrence frequencies.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// NotificationContent is the immutable content of one notification. It is
// passed by value into the payload builder and the dispatcher and never
// mutated after creation.
type NotificationContent struct {
	Title       string            `json:"title"`                  // display title
	Body        string            `json:"body"`                   // display body
	ImageURL    string            `json:"image_url,omitempty"`    // optional image shown with the notification
	ClickAction string            `json:"click_action,omitempty"` // target opened on tap, defaults to "/"
	Data        map[string]string `json:"data,omitempty"`         // free-form key/value payload for clients
}

// RecurrenceRule describes how the next send time is derived after a
// recurring notification fires.
type RecurrenceRule struct {
	Frequency string `json:"frequency"`             // "daily", "weekly" or "monthly"
	TimeOfDay string `json:"time_of_day,omitempty"` // optional "HH:MM" clock override
}

// ScheduledNotification represents a notification entity in the system.
//
// While Status is "pending", ScheduledAt holds the next due instant that has
// not been processed yet. The success/failure/total counters are meaningful
// once at least one dispatch attempt occurred.
type ScheduledNotification struct {
	ID           uuid.UUID           `json:"id"`
	Content      NotificationContent `json:"content"`
	Recipient    string              `json:"recipient,omitempty"` // owner id, empty means broadcast
	ScheduledAt  time.Time           `json:"scheduled_at"`
	Status       string              `json:"status"`
	Recurrence   *RecurrenceRule     `json:"recurrence,omitempty"`
	LastError    string              `json:"last_error,omitempty"`
	SuccessCount int                 `json:"success_count"`
	FailureCount int                 `json:"failure_count"`
	TotalDevices int                 `json:"total_devices"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
