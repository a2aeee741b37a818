package http

import (
	"github.com/gin-gonic/gin"

	"branchboard/internal/middleware"
)

// RegisterRoutes maps the planner endpoints onto rg. Scheduling runs are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sched := rg.Group("/schedule")
	{
		sched.POST("/optimize", mw.RateLimit(), h.Optimize)
		sched.POST("/tasks/:id/reschedule", mw.RateLimit(), h.Reschedule)
		sched.GET("", h.Current)
		sched.GET("/daily", h.Daily)
		sched.GET("/workload", h.Workload)
		sched.GET("/pending", h.Pending)
	}

	settings := rg.Group("/settings")
	{
		settings.GET("/calendar", h.GetCalendar)
		settings.PUT("/calendar", h.UpdateCalendar)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.UpsertTask)
	}

	rg.PUT("/branches/:id", h.SetBranch)
}
