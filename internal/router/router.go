// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/expenso/expense-api/internal/handler"
	"github.com/expenso/expense-api/internal/middleware"
	"github.com/expenso/expense-api/internal/server"
	"github.com/labstack/echo/v4"
)

// New builds the Echo instance: global error handler, middleware
// stack in dependency order (request ID before the context enhancer,
// tracing before anything that reads the transaction), then routes.
func New(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.CORS())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())

	registerExpenseRoutes(e, h)
	registerSystemRoutes(e, h)

	return e
}
