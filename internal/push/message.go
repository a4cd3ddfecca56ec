// Package push defines the transport-neutral wire payload for one
// notification and the contract every push transport implementation must
// honor.
package push

import (
	"context"
	"time"
)

// MaxBatchSize is the hard limit on recipients per transport call.
const MaxBatchSize = 500

// TTL is applied to every outgoing message: a device that is offline keeps
// the notification queued on the transport side for up to 28 days and still
// receives it on reconnect. Shrinking it changes delivery semantics for
// offline devices and must be treated as a regression.
const TTL = 28 * 24 * time.Hour

// Notification is the generic display block shown by the OS.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Image string `json:"image,omitempty"`
}

// AndroidConfig carries the Android delivery hints.
type AndroidConfig struct {
	Priority    string        `json:"priority"`
	TTL         time.Duration `json:"ttl"`
	Sound       string        `json:"sound"`
	ClickAction string        `json:"click_action"`
}

// WebpushConfig carries the web push delivery hints.
type WebpushConfig struct {
	TTL                time.Duration `json:"ttl"`
	Urgency            string        `json:"urgency"`
	RequireInteraction bool          `json:"require_interaction"`
	Tag                string        `json:"tag"`
	Renotify           bool          `json:"renotify"`
	Link               string        `json:"link"`
}

// Message is one fully rendered payload. The same value is reused for every
// batch of a dispatch.
type Message struct {
	Notification Notification      `json:"notification"`
	Data         map[string]string `json:"data"`
	Android      AndroidConfig     `json:"android"`
	Webpush      WebpushConfig     `json:"webpush"`
}

// Result is the delivery outcome for a single token.
type Result struct {
	Token     string `json:"token"`
	Success   bool   `json:"success"`
	Permanent bool   `json:"permanent"` // registration is gone for good, token must be pruned
	Error     string `json:"error,omitempty"`
}

// BatchResult aggregates one batch call.
type BatchResult struct {
	SuccessCount int      `json:"success_count"`
	FailureCount int      `json:"failure_count"`
	Results      []Result `json:"results"`
}

// Transport sends one payload to a batch of at most MaxBatchSize device
// tokens and reports the per-token outcome. A returned error means the whole
// batch call failed and nothing was delivered.
type Transport interface {
	SendBatch(ctx context.Context, msg *Message, tokens []string) (*BatchResult, error)
}
