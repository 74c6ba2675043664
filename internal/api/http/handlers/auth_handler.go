package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ppe-dashboard/internal/api/dto"
	"github.com/spec-kit/ppe-dashboard/internal/observability"
	"github.com/spec-kit/ppe-dashboard/internal/session"
	apperrors "github.com/spec-kit/ppe-dashboard/pkg/util"
)

// AuthHandler exposes the session operations to the views.
type AuthHandler struct {
	store   *session.Store
	metrics *observability.Metrics
}

// NewAuthHandler constructs handler.
func NewAuthHandler(store *session.Store, metrics *observability.Metrics) *AuthHandler {
	return &AuthHandler{store: store, metrics: metrics}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.store.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		h.metrics.RecordLogin("rejected")
		return err
	}
	h.metrics.RecordLogin("success")

	return c.JSON(fiber.Map{
		"data": fiber.Map{"user": user},
	})
}

// Logout handles POST /auth/logout. Always succeeds; logging out while
// signed out is a no-op.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.store.Logout(c.UserContext())
	return c.SendStatus(http.StatusNoContent)
}

// Session handles GET /auth/session; views poll this instead of reading the
// persisted record directly.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	state := h.store.Snapshot()
	return c.JSON(fiber.Map{
		"data": dto.SessionResponse{
			User:            state.User,
			IsAuthenticated: state.IsAuthenticated,
			Loading:         state.Loading,
		},
	})
}
