package http

import (
	"github.com/gin-gonic/gin"

	"quick-task-management/internal/middleware"
)

// RegisterRoutes maps the task endpoints onto rg. Every route is rate limited
// per client and carries the caller scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit(), mw.Scope())
	{
		tasks.POST("/quick-add", h.QuickAdd)
		tasks.POST("/parse", h.Parse)
		tasks.GET("/chips", h.Chips)
		tasks.POST("/chip", h.CreateFromChip)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PATCH("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/complete", h.Complete)
		tasks.POST("/:id/snooze", h.Snooze)
	}
}
