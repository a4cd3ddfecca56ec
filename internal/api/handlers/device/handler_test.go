package device

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pushworks/push-scheduler/internal/api/dto"
	mocks "github.com/pushworks/push-scheduler/internal/mocks/api/handlers/device"
	"github.com/pushworks/push-scheduler/internal/model"
	"github.com/pushworks/push-scheduler/internal/repository/device"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockdeviceService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockdeviceService(ctrl)
	handler := NewHandler(mockService, validator.New())
	return handler, mockService
}

func TestHandler_Register_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	reqBody := dto.RegisterDeviceRequest{
		Token:    "fcm-token-1",
		OwnerID:  "alice",
		Platform: "android",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/devices", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		RegisterDevice(gomock.Any(), model.DeviceToken{
			OwnerID:  "alice",
			Token:    "fcm-token-1",
			Platform: "android",
		}).
		Return(uuid.New(), nil)

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)
}

func TestHandler_Register_InvalidPlatform(t *testing.T) {
	handler, _ := setupHandler(t)

	reqBody := dto.RegisterDeviceRequest{
		Token:    "fcm-token-1",
		Platform: "windows",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/devices", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Remove_Success(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodDelete, "/api/devices/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().RemoveDevice(gomock.Any(), id).Return(nil)

	handler.Remove(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Remove_NotFound(t *testing.T) {
	handler, mockService := setupHandler(t)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodDelete, "/api/devices/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().RemoveDevice(gomock.Any(), id).Return(device.ErrDeviceNotFound)

	handler.Remove(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}
