package push

import (
	"fmt"
	"time"

	"github.com/pushworks/push-scheduler/internal/model"
)

const defaultClickAction = "/"

// now is swapped in tests to pin the generated delivery id.
var now = time.Now

// BuildMessage renders notification content into the payload sent to every
// platform. The title and body are mirrored into the data block together
// with a delivery id and timestamp, so clients can rebuild the notification
// from a background data delivery even when the OS suppresses the display
// channel. High priority and the 28-day TTL are part of the delivery
// contract for offline devices.
func BuildMessage(content model.NotificationContent) *Message {
	ts := now()
	deliveryID := fmt.Sprintf("notif_%d", ts.UnixMilli())

	link := content.ClickAction
	if link == "" {
		link = defaultClickAction
	}

	data := make(map[string]string, len(content.Data)+4)
	for k, v := range content.Data {
		data[k] = v
	}
	data["title"] = content.Title
	data["body"] = content.Body
	data["notification_id"] = deliveryID
	data["sent_at"] = ts.Format(time.RFC3339)

	return &Message{
		Notification: Notification{
			Title: content.Title,
			Body:  content.Body,
			Image: content.ImageURL,
		},
		Data: data,
		Android: AndroidConfig{
			Priority:    "high",
			TTL:         TTL,
			Sound:       "default",
			ClickAction: link,
		},
		Webpush: WebpushConfig{
			TTL:                TTL,
			Urgency:            "high",
			RequireInteraction: true,
			Tag:                deliveryID, // repeats with the same tag coalesce in the UI
			Renotify:           true,
			Link:               link,
		},
	}
}
