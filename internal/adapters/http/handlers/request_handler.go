package handlers

import (
	"assetguard/internal/core/domain"
	"assetguard/internal/core/services"
	"assetguard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequestHandler handles asset request endpoints
type RequestHandler struct {
	engine *services.LifecycleService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(engine *services.LifecycleService) *RequestHandler {
	return &RequestHandler{engine: engine}
}

// List returns all asset requests
// @Summary List requests
// @Tags Requests
// @Produce json
// @Success 200 {object} response.Response
// @Router /requests [get]
func (h *RequestHandler) List(c *fiber.Ctx) error {
	return response.Success(c, "", h.engine.Snapshot().Requests)
}

// Create files a new asset request
// @Summary Create request
// @Tags Requests
// @Accept json
// @Produce json
// @Param body body domain.AssetRequest true "Request data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /requests [post]
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var req domain.AssetRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.ID == "" {
		return response.BadRequest(c, "Request id is required")
	}
	if req.EmployeeID == "" {
		return response.BadRequest(c, "Employee id is required")
	}
	if req.Category == "" {
		return response.BadRequest(c, "Category is required")
	}
	if req.Status == "" {
		req.Status = domain.RequestPending
	}

	h.engine.CreateRequest(req)
	return response.Created(c, "Request created", req)
}

// ApproveRequestBody carries the operator-selected asset for an approval
type ApproveRequestBody struct {
	AssetID string `json:"assetId"`
}

// Approve marks the request approved and assigns the selected asset to the
// requesting employee
// @Summary Approve request
// @Tags Requests
// @Accept json
// @Produce json
// @Param id path string true "Request id"
// @Param body body ApproveRequestBody true "Selected asset"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /requests/{id}/approve [post]
func (h *RequestHandler) Approve(c *fiber.Ctx) error {
	var body ApproveRequestBody
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if body.AssetID == "" {
		return response.BadRequest(c, "Asset id is required")
	}

	result := h.engine.ApproveRequest(c.Params("id"), body.AssetID)
	if result.NoOp() {
		return domain.ErrRequestNotFound
	}
	return response.Success(c, "Request approved", result)
}

// Reject marks the request rejected; nothing else is touched
// @Summary Reject request
// @Tags Requests
// @Produce json
// @Param id path string true "Request id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /requests/{id}/reject [post]
func (h *RequestHandler) Reject(c *fiber.Ctx) error {
	result := h.engine.RejectRequest(c.Params("id"))
	if result.NoOp() {
		return domain.ErrRequestNotFound
	}
	return response.Success(c, "Request rejected", result)
}
