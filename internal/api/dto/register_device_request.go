package dto

// RegisterDeviceRequest is the body of POST /api/devices.
type RegisterDeviceRequest struct {
	Token    string `json:"token" validate:"required"`
	OwnerID  string `json:"owner_id"`
	Platform string `json:"platform" validate:"omitempty,oneof=android ios web"`
}
