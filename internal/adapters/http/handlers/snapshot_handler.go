package handlers

import (
	"assetguard/internal/core/services"
	"assetguard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SnapshotHandler exposes the full in-memory state to the presentation layer
type SnapshotHandler struct {
	engine *services.LifecycleService
}

// NewSnapshotHandler creates a new snapshot handler
func NewSnapshotHandler(engine *services.LifecycleService) *SnapshotHandler {
	return &SnapshotHandler{engine: engine}
}

// Get returns the current snapshot of all five collections
// @Summary Current snapshot
// @Description Full contents of all entity collections plus the loading flag
// @Tags Snapshot
// @Produce json
// @Success 200 {object} response.Response
// @Router /snapshot [get]
func (h *SnapshotHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.engine.Snapshot())
}

// Assignments returns the assignment history, active and closed
// @Summary List assignments
// @Tags Snapshot
// @Produce json
// @Success 200 {object} response.Response
// @Router /assignments [get]
func (h *SnapshotHandler) Assignments(c *fiber.Ctx) error {
	return response.Success(c, "", h.engine.Snapshot().Assignments)
}
