// Package fcm adapts Firebase Cloud Messaging to the push.Transport
// interface.
package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/pushworks/push-scheduler/internal/push"
)

// Client is an FCM-backed push transport.
type Client struct {
	messaging *messaging.Client
}

// NewClient builds an FCM transport from a service account file.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	mc, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init messaging client: %w", err)
	}

	return &Client{messaging: mc}, nil
}

// SendBatch delivers msg to at most push.MaxBatchSize tokens in one
// multicast call and reports the per-token outcome.
func (c *Client) SendBatch(ctx context.Context, msg *push.Message, tokens []string) (*push.BatchResult, error) {
	ttl := msg.Android.TTL
	webpushTTL := fmt.Sprintf("%d", int(msg.Webpush.TTL.Seconds()))

	mm := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title:    msg.Notification.Title,
			Body:     msg.Notification.Body,
			ImageURL: msg.Notification.Image,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: msg.Android.Priority,
			TTL:      &ttl,
			Notification: &messaging.AndroidNotification{
				Sound:       msg.Android.Sound,
				ClickAction: msg.Android.ClickAction,
			},
		},
		Webpush: &messaging.WebpushConfig{
			Headers: map[string]string{
				"TTL":     webpushTTL,
				"Urgency": msg.Webpush.Urgency,
			},
			Notification: &messaging.WebpushNotification{
				Title:              msg.Notification.Title,
				Body:               msg.Notification.Body,
				Tag:                msg.Webpush.Tag,
				Renotify:           msg.Webpush.Renotify,
				RequireInteraction: msg.Webpush.RequireInteraction,
			},
			FCMOptions: &messaging.WebpushFCMOptions{
				Link: msg.Webpush.Link,
			},
		},
	}

	resp, err := c.messaging.SendEachForMulticast(ctx, mm)
	if err != nil {
		return nil, fmt.Errorf("send multicast: %w", err)
	}

	out := &push.BatchResult{
		SuccessCount: resp.SuccessCount,
		FailureCount: resp.FailureCount,
		Results:      make([]push.Result, 0, len(resp.Responses)),
	}
	for i, r := range resp.Responses {
		res := push.Result{Token: tokens[i], Success: r.Success}
		if r.Error != nil {
			res.Error = r.Error.Error()
			res.Permanent = permanent(r.Error)
		}

		out.Results = append(out.Results, res)
	}

	return out, nil
}

// permanent reports whether the error means the registration will never
// succeed again, so the token must be pruned. Everything else (quota,
// unavailable, internal) may succeed on a future attempt.
func permanent(err error) bool {
	return messaging.IsUnregistered(err) ||
		messaging.IsSenderIDMismatch(err) ||
		errorutils.IsInvalidArgument(err)
}
