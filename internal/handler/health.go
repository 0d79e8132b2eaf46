package handler

// HealthHandler exposes a system endpoint that external systems can
// use to verify the service is alive and its dependencies are
// reachable. Kubernetes probes, uptime monitors, and load balancers
// are the expected callers.
import (
	"net/http"
	"time"

	"github.com/expenso/expense-api/internal/middleware"
	"github.com/expenso/expense-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler embeds the base Handler to reuse shared server
// dependencies. This endpoint is not business logic, but embedding
// keeps handler patterns consistent.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns system health status and dependency checks.
//
// The only dependency is the in-memory store, so the check reports
// its record count and response time. Returns 200 when healthy and
// 503 when the store is unavailable.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      make(map[string]interface{}),
	}

	checks := response["checks"].(map[string]interface{})
	isHealthy := true

	storeStart := time.Now()

	if h.server.Store == nil {
		checks["store"] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": time.Since(storeStart).String(),
			"error":         "expense store not initialized",
		}

		isHealthy = false

		logger.Error().
			Dur("response_time", time.Since(storeStart)).
			Msg("store health check failed")

		if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
			h.server.LoggerService.GetApplication().RecordCustomEvent(
				"HealthCheckError",
				map[string]interface{}{
					"check_type":       "store",
					"operation":        "health_check",
					"error_type":       "store_unhealthy",
					"response_time_ms": time.Since(storeStart).Milliseconds(),
				},
			)
		}
	} else {
		checks["store"] = map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(storeStart).String(),
			"records":       h.server.Store.Len(),
		}

		logger.Info().
			Dur("response_time", time.Since(storeStart)).
			Msg("store health check passed")
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
