package dto

// CreateRequest is the body of POST /api/notifications.
type CreateRequest struct {
	Title       string            `json:"title" validate:"required"`
	Body        string            `json:"body" validate:"required"`
	ImageURL    string            `json:"image_url" validate:"omitempty,url"`
	ClickAction string            `json:"click_action"`
	Data        map[string]string `json:"data"`
	Recipient   string            `json:"recipient"`
	ScheduledAt string            `json:"scheduled_at" validate:"required"` // RFC3339
	Recurrence  *RecurrenceRule   `json:"recurrence"`
}

// RecurrenceRule mirrors model.RecurrenceRule on the wire.
type RecurrenceRule struct {
	Frequency string `json:"frequency" validate:"required,oneof=daily weekly monthly"`
	TimeOfDay string `json:"time_of_day" validate:"omitempty,datetime=15:04"`
}
