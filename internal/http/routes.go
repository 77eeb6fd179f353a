package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "neighbortask.com/neighbortask/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, session echo.MiddlewareFunc, rateLimitPerMinute int) {
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/auth/login", h.Login)
	e.POST("/auth/signup", h.Signup)

	e.GET("/categories", h.Categories)
	e.GET("/tasks", h.BrowseTasks)
	e.GET("/tasks/:id", h.TaskDetails)

	g := e.Group("", session)
	g.POST("/auth/logout", h.Logout)
	g.GET("/auth/me", h.Me)
	g.POST("/tasks", h.PostTask)
	g.POST("/tasks/:id/applications", h.Apply)
	g.POST("/applications/:id/accept", h.AcceptApplication)
	g.GET("/profile/tasks", h.ProfileTasks)
	g.GET("/connections", h.Connections)
	g.POST("/connections/:id/complete", h.CompleteConnection)
	g.GET("/tasks/:id/messages", h.Thread)
	g.POST("/tasks/:id/messages", h.SendMessage)
	g.POST("/tasks/:id/messages/contact", h.ShareContact)
	g.GET("/notifications", h.Notifications)
}
