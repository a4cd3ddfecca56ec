package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/pushworks/push-scheduler/internal/api/handlers/device"
	"github.com/pushworks/push-scheduler/internal/api/handlers/notification"
)

func New(notifHandler *notification.Handler, deviceHandler *device.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")

	notifications := api.Group("/notifications")
	notifications.POST("/", notifHandler.Create)
	notifications.POST("/send", notifHandler.SendNow)
	notifications.GET("/", notifHandler.GetAll)
	notifications.GET("/history", notifHandler.History)
	notifications.GET("/:id", notifHandler.GetStatus)
	notifications.DELETE("/:id", notifHandler.Cancel)

	devices := api.Group("/devices")
	devices.POST("/", deviceHandler.Register)
	devices.DELETE("/:id", deviceHandler.Remove)

	return e
}
