package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PingFunc probes one dependency.
type PingFunc func(ctx context.Context) error

// HealthCheck marks whether a failing dependency makes the service unready.
// The cache is not critical: reads fall back to the calendar.
type HealthCheck struct {
	Name     string
	Ping     PingFunc
	Critical bool
}

type HealthHandler struct {
	checks []HealthCheck
}

func NewHealthHandler(checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	state := "ok"
	deps := gin.H{}

	for _, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			deps[check.Name] = err.Error()
			if check.Critical {
				status = http.StatusServiceUnavailable
				state = "unavailable"
			} else if state == "ok" {
				state = "degraded"
			}
			continue
		}
		deps[check.Name] = "ok"
	}

	c.JSON(status, gin.H{"status": state, "dependencies": deps})
}
