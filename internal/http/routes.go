package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/:id", h.GetTask)
	e.PATCH("/tasks/:id", h.UpdateTask)
	e.POST("/tasks/:id/toggle", h.ToggleTask)
	e.DELETE("/tasks/:id", h.DeleteTask)

	e.POST("/undo", h.Undo)
	e.GET("/undo/history", h.UndoHistory)
	e.GET("/history", h.AuditHistory)
}
