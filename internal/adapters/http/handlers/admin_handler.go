package handlers

import (
	"assetguard/internal/core/services"
	"assetguard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles operator maintenance endpoints
type AdminHandler struct {
	engine *services.LifecycleService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(engine *services.LifecycleService) *AdminHandler {
	return &AdminHandler{engine: engine}
}

// Reconcile runs a consistency-repair pass now, re-pushing any in-memory
// entity whose persisted copy went stale after a failed write
// @Summary Run reconcile pass
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/reconcile [post]
func (h *AdminHandler) Reconcile(c *fiber.Ctx) error {
	report := h.engine.Reconcile(c.Context())
	return response.Success(c, "Reconcile pass completed", report)
}
