package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/pushworks/push-scheduler/internal/api/dto"
	"github.com/pushworks/push-scheduler/internal/api/respond"
	"github.com/pushworks/push-scheduler/internal/config"
	"github.com/pushworks/push-scheduler/internal/dispatcher"
	"github.com/pushworks/push-scheduler/internal/model"
	"github.com/pushworks/push-scheduler/internal/repository/notification"
	notifsvc "github.com/pushworks/push-scheduler/internal/service/notification"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks

type notifService interface {
	CreateNotification(context.Context, retry.Strategy, model.ScheduledNotification) (uuid.UUID, error)
	GetNotificationStatusByID(context.Context, retry.Strategy, uuid.UUID) (string, error)
	GetAllNotifications(context.Context) ([]model.ScheduledNotification, error)
	CancelNotification(context.Context, retry.Strategy, uuid.UUID) error
	SendNow(ctx context.Context, recipient string, content model.NotificationContent) (dispatcher.Outcome, error)
	ListHistory(context.Context, int) ([]model.DispatchRecord, error)
}

type Handler struct {
	service   notifService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	s notifService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Create schedules a new notification.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("scheduled_at", req.ScheduledAt).Msg("failed to parse scheduled_at")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid scheduled_at, expected RFC3339"))
		return
	}

	notif := model.ScheduledNotification{
		Content: model.NotificationContent{
			Title:       req.Title,
			Body:        req.Body,
			ImageURL:    req.ImageURL,
			ClickAction: req.ClickAction,
			Data:        req.Data,
		},
		Recipient:   req.Recipient,
		ScheduledAt: scheduledAt,
		Status:      model.StatusPending,
	}
	if req.Recurrence != nil {
		notif.Recurrence = &model.RecurrenceRule{
			Frequency: req.Recurrence.Frequency,
			TimeOfDay: req.Recurrence.TimeOfDay,
		}
	}

	id, err := h.service.CreateNotification(c.Request.Context(), h.cfg.Retry, notif)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("title", notif.Content.Title).Msg("failed to create notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// GetStatus returns the current status of one notification.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	status, err := h.service.GetNotificationStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Err(err).Msg("notification not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

// GetAll lists every notification.
func (h *Handler) GetAll(c *ginext.Context) {
	notifications, err := h.service.GetAllNotifications(c.Request.Context())
	if err != nil {
		if errors.Is(err, notification.ErrNoNotificationsFound) {
			respond.OK(c.Writer, []model.ScheduledNotification{})
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to get notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// Cancel cancels a pending notification.
func (h *Handler) Cancel(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	err := h.service.CancelNotification(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Err(err).Msg("notification not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cancel notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notification cancelled")
}

// SendNow dispatches a notification immediately, outside the schedule.
func (h *Handler) SendNow(c *ginext.Context) {
	var req dto.SendRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	content := model.NotificationContent{
		Title:       req.Title,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		ClickAction: req.ClickAction,
		Data:        req.Data,
	}

	out, err := h.service.SendNow(c.Request.Context(), req.Recipient, content)
	if err != nil {
		if errors.Is(err, notifsvc.ErrNoDevices) {
			zlog.Logger.Warn().Str("recipient", req.Recipient).Msg("no registered devices for target")
			respond.Fail(c.Writer, http.StatusNotFound, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("recipient", req.Recipient).Msg("failed to send notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, out)
}

// History lists recent dispatch records.
func (h *Handler) History(c *ginext.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
			return
		}
		limit = parsed
	}

	records, err := h.service.ListHistory(c.Request.Context(), limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list dispatch history")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if records == nil {
		records = []model.DispatchRecord{}
	}

	respond.OK(c.Writer, records)
}

func (h *Handler) parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return uuid.Nil, false
	}

	return id, true
}
