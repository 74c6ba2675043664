package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ppe-dashboard/internal/service"
	"github.com/spec-kit/ppe-dashboard/internal/session"
	apperrors "github.com/spec-kit/ppe-dashboard/pkg/util"
)

// ViewsHandler serves the protected dashboard views. All payloads are the
// site's sample datasets; the handlers only consume the session read-view.
type ViewsHandler struct {
	store     *session.Store
	dashboard *service.DashboardService
	reports   *service.ReportService
	workers   *service.WorkerService
	alerts    *service.AlertService
	settings  *service.SettingsService
	activity  *service.ActivityService
}

// ViewsDependencies bundles the view services.
type ViewsDependencies struct {
	Dashboard *service.DashboardService
	Reports   *service.ReportService
	Workers   *service.WorkerService
	Alerts    *service.AlertService
	Settings  *service.SettingsService
	Activity  *service.ActivityService
}

// NewViewsHandler constructs handler.
func NewViewsHandler(store *session.Store, deps ViewsDependencies) *ViewsHandler {
	return &ViewsHandler{
		store:     store,
		dashboard: deps.Dashboard,
		reports:   deps.Reports,
		workers:   deps.Workers,
		alerts:    deps.Alerts,
		settings:  deps.Settings,
		activity:  deps.Activity,
	}
}

// Dashboard handles GET /api/dashboard.
func (h *ViewsHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.dashboard.Dashboard()})
}

// Reports handles GET /api/reports.
func (h *ViewsHandler) Reports(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.reports.Report(c.Query("range"))})
}

// Workers handles GET /api/workers.
func (h *ViewsHandler) Workers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.workers.List(c.Query("q"))})
}

// Worker handles GET /api/workers/:employeeID.
func (h *ViewsHandler) Worker(c *fiber.Ctx) error {
	worker, ok := h.workers.Get(c.Params("employeeID"))
	if !ok {
		return apperrors.NewNotFound("worker", map[string]any{"employee_id": c.Params("employeeID")})
	}
	return c.JSON(fiber.Map{"data": worker})
}

// Alerts handles GET /api/alerts.
func (h *ViewsHandler) Alerts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.alerts.List(c.Query("severity"))})
}

// AcknowledgeAlert handles POST /api/alerts/:id/ack.
func (h *ViewsHandler) AcknowledgeAlert(c *fiber.Ctx) error {
	by := ""
	if state := h.store.Snapshot(); state.User != nil {
		by = state.User.Username
	}

	alert, err := h.alerts.Acknowledge(c.UserContext(), c.Params("id"), by)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": alert})
}

// Settings handles GET /api/settings; the route requires the admin role.
func (h *ViewsHandler) Settings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.settings.Settings()})
}

// Profile handles GET /api/profile.
func (h *ViewsHandler) Profile(c *fiber.Ctx) error {
	state := h.store.Snapshot()
	return c.JSON(fiber.Map{"data": state.User})
}

// Activity handles GET /api/activity.
func (h *ViewsHandler) Activity(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.activity.Recent(c.QueryInt("limit", 20))})
}
