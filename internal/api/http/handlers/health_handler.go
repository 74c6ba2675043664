package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger is implemented by session record backends that can report
// connectivity (the redis recorder).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	storage     Pinger
}

// NewHealthHandler returns a new handler instance. storage may be nil when
// the configured backend has no connectivity to check.
func NewHealthHandler(serviceName, version string, storage Pinger) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, storage: storage}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking the session record backend.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	depStatus := fiber.Map{}
	ready := true

	if h.storage != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := h.storage.Ping(ctx); err != nil {
			depStatus["session_storage"] = err.Error()
			ready = false
		} else {
			depStatus["session_storage"] = "ok"
		}
	} else {
		depStatus["session_storage"] = "ok"
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "one or more dependencies unavailable",
			"details": depStatus,
		},
	})
}
