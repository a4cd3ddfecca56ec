package model

import (
	"time"

	"github.com/google/uuid"
)

// TargetBroadcast marks a dispatch aimed at every registered device.
const TargetBroadcast = "broadcast"

// TargetFor renders the audit description of a dispatch target.
func TargetFor(recipient string) string {
	if recipient == "" {
		return TargetBroadcast
	}
	return "user:" + recipient
}

// DispatchRecord is an append-only audit record of one completed dispatch
// attempt. It snapshots the content at send time and is never mutated.
type DispatchRecord struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Body           string     `json:"body"`
	Target         string     `json:"target"`
	SentAt         time.Time  `json:"sent_at"`
	TotalDevices   int        `json:"total_devices"`
	SuccessCount   int        `json:"success_count"`
	FailureCount   int        `json:"failure_count"`
	NotificationID *uuid.UUID `json:"notification_id,omitempty"` // nil for immediate sends
}
