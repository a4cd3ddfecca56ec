package device

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/pushworks/push-scheduler/internal/api/dto"
	"github.com/pushworks/push-scheduler/internal/api/respond"
	"github.com/pushworks/push-scheduler/internal/model"
	"github.com/pushworks/push-scheduler/internal/repository/device"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/device/mock.go -package=mocks

type deviceService interface {
	RegisterDevice(context.Context, model.DeviceToken) (uuid.UUID, error)
	RemoveDevice(context.Context, uuid.UUID) error
}

type Handler struct {
	service   deviceService
	validator *validator.Validate
}

func NewHandler(s deviceService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Register upserts a device token.
func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterDeviceRequest

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

	id, err := h.service.RegisterDevice(c.Request.Context(), model.DeviceToken{
		OwnerID:  req.OwnerID,
		Token:    req.Token,
		Platform: req.Platform,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to register device")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// Remove deletes one device registration.
func (h *Handler) Remove(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if err := h.service.RemoveDevice(c.Request.Context(), id); err != nil {
		if errors.Is(err, device.ErrDeviceNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("device not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to remove device")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "device removed")
}
