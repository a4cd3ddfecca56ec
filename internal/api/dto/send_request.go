package dto

// SendRequest is the body of POST /api/notifications/send. An empty
// recipient broadcasts to every registered device.
type SendRequest struct {
	Title       string            `json:"title" validate:"required"`
	Body        string            `json:"body" validate:"required"`
	ImageURL    string            `json:"image_url" validate:"omitempty,url"`
	ClickAction string            `json:"click_action"`
	Data        map[string]string `json:"data"`
	Recipient   string            `json:"recipient"`
}
