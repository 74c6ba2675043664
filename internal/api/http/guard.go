package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ppe-dashboard/internal/domain"
	"github.com/spec-kit/ppe-dashboard/internal/gate"
	"github.com/spec-kit/ppe-dashboard/internal/observability"
)

const (
	signInPath  = "/login"
	defaultPath = "/"
)

// Guard adapts access gate decisions to HTTP responses. The sign-in
// endpoints themselves are never behind it.
type Guard struct {
	gate    *gate.Gate
	metrics *observability.Metrics
}

// NewGuard constructs the guard.
func NewGuard(g *gate.Gate, metrics *observability.Metrics) *Guard {
	return &Guard{gate: g, metrics: metrics}
}

// Protect gates a route group. With no roles any signed-in operator is
// admitted; with roles, one of them must match.
func (g *Guard) Protect(required ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := g.gate.Decide(c.Path(), required...)
		g.metrics.RecordGateDecision(c.Path(), decision.Outcome.String())

		switch decision.Outcome {
		case gate.OutcomeWait:
			// The restore window; never redirect here or a signed-in
			// operator reloading the page would bounce to sign-in.
			c.Set(fiber.HeaderRetryAfter, "1")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "restoring",
			})
		case gate.OutcomeSignIn:
			target := signInPath + "?from=" + url.QueryEscape(decision.Location)
			return c.Redirect(target, fiber.StatusFound)
		case gate.OutcomeHome:
			return c.Redirect(defaultPath, fiber.StatusFound)
		default:
			return c.Next()
		}
	}
}
