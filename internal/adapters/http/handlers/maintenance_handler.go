package handlers

import (
	"assetguard/internal/core/domain"
	"assetguard/internal/core/services"
	"assetguard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MaintenanceHandler handles maintenance log endpoints
type MaintenanceHandler struct {
	engine *services.LifecycleService
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(engine *services.LifecycleService) *MaintenanceHandler {
	return &MaintenanceHandler{engine: engine}
}

// List returns all maintenance logs
// @Summary List maintenance logs
// @Tags Maintenance
// @Produce json
// @Success 200 {object} response.Response
// @Router /maintenance [get]
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	return response.Success(c, "", h.engine.Snapshot().MaintenanceLogs)
}

// Create logs a service event and sends the asset into repair
// @Summary Create maintenance log
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param body body domain.MaintenanceLog true "Maintenance log data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /maintenance [post]
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	var maintenanceLog domain.MaintenanceLog
	if err := c.BodyParser(&maintenanceLog); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if maintenanceLog.ID == "" {
		return response.BadRequest(c, "Maintenance log id is required")
	}
	if maintenanceLog.AssetID == "" {
		return response.BadRequest(c, "Asset id is required")
	}
	if maintenanceLog.Status == "" {
		maintenanceLog.Status = domain.MaintenanceInProgress
	}

	result := h.engine.AddMaintenanceLog(maintenanceLog)
	return response.Created(c, "Maintenance log created", fiber.Map{
		"log":    maintenanceLog,
		"result": result,
	})
}

// UpdateStatusRequest represents a maintenance status change body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus changes a log's status; Completed releases the asset back
// to AVAILABLE
// @Summary Update maintenance status
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance log id"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /maintenance/{id}/status [patch]
func (h *MaintenanceHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Status == "" {
		return response.BadRequest(c, "Status is required")
	}

	result := h.engine.UpdateMaintenanceLog(c.Params("id"), req.Status)
	if result.NoOp() {
		return domain.ErrLogNotFound
	}
	return response.Success(c, "Maintenance log updated", result)
}
