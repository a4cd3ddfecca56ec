package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceToken is one registered push destination: an opaque token identifying
// a device plus app installation. Tokens are created on device registration
// and deleted when the push transport reports them permanently invalid.
type DeviceToken struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   string    `json:"owner_id,omitempty"` // empty for broadcast-only tokens
	Token     string    `json:"token"`
	Platform  string    `json:"platform,omitempty"` // "android", "ios" or "web"
	CreatedAt time.Time `json:"created_at"`
}
