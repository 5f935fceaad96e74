package handlers

import (
	"assetguard/internal/core/domain"
	"assetguard/internal/core/services"
	"assetguard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AssetHandler handles asset endpoints
type AssetHandler struct {
	engine *services.LifecycleService
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(engine *services.LifecycleService) *AssetHandler {
	return &AssetHandler{engine: engine}
}

// List returns all assets
// @Summary List assets
// @Tags Assets
// @Produce json
// @Success 200 {object} response.Response
// @Router /assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	return response.Success(c, "", h.engine.Snapshot().Assets)
}

// Create registers a new asset
// @Summary Create asset
// @Tags Assets
// @Accept json
// @Produce json
// @Param body body domain.Asset true "Asset data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var asset domain.Asset
	if err := c.BodyParser(&asset); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if asset.ID == "" {
		return response.BadRequest(c, "Asset id is required")
	}
	if asset.Name == "" {
		return response.BadRequest(c, "Asset name is required")
	}
	if asset.Status == "" {
		asset.Status = domain.AssetAvailable
	}

	h.engine.CreateAsset(asset)
	return response.Created(c, "Asset created", asset)
}

// Update replaces an asset by id
// @Summary Update asset
// @Tags Assets
// @Accept json
// @Produce json
// @Param id path string true "Asset id"
// @Param body body domain.Asset true "Asset data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /assets/{id} [put]
func (h *AssetHandler) Update(c *fiber.Ctx) error {
	var asset domain.Asset
	if err := c.BodyParser(&asset); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	asset.ID = c.Params("id")
	if asset.ID == "" {
		return response.BadRequest(c, "Asset id is required")
	}

	result := h.engine.UpdateAsset(asset)
	return response.Success(c, "Asset updated", fiber.Map{
		"asset":  asset,
		"result": result,
	})
}

// Delete removes an asset. Historical assignments, maintenance logs and
// requests keep their reference to the deleted id.
// @Summary Delete asset
// @Tags Assets
// @Produce json
// @Param id path string true "Asset id"
// @Success 200 {object} response.Response
// @Router /assets/{id} [delete]
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	result := h.engine.DeleteAsset(id)
	return response.Success(c, "Asset deleted", result)
}

// AssignRequest represents an assign operation body
type AssignRequest struct {
	EmployeeID         string `json:"employeeId"`
	ExpectedReturnDate string `json:"expectedReturnDate,omitempty"`
}

// Assign opens an active assignment for the asset
// @Summary Assign asset
// @Tags Assets
// @Accept json
// @Produce json
// @Param id path string true "Asset id"
// @Param body body AssignRequest true "Assignment data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /assets/{id}/assign [post]
func (h *AssetHandler) Assign(c *fiber.Ctx) error {
	var req AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.EmployeeID == "" {
		return response.BadRequest(c, "Employee id is required")
	}

	assignment, result := h.engine.AssignAsset(c.Params("id"), req.EmployeeID, req.ExpectedReturnDate)
	return response.Success(c, "Asset assigned", fiber.Map{
		"assignment": assignment,
		"result":     result,
	})
}

// ReturnRequest represents a return operation body
type ReturnRequest struct {
	Notes string `json:"notes,omitempty"`
}

// Return closes the asset's active assignment
// @Summary Return asset
// @Tags Assets
// @Accept json
// @Produce json
// @Param id path string true "Asset id"
// @Param body body ReturnRequest false "Return notes"
// @Success 200 {object} response.Response
// @Router /assets/{id}/return [post]
func (h *AssetHandler) Return(c *fiber.Ctx) error {
	// The notes body is optional; an empty body is a plain return.
	var req ReturnRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return response.BadRequest(c, "Invalid request body")
	}

	result := h.engine.ReturnAsset(c.Params("id"), req.Notes)
	return response.Success(c, "Asset returned", result)
}
