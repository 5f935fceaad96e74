package handlers

import (
	"assetguard/internal/core/domain"
	"assetguard/internal/core/services"
	"assetguard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EmployeeHandler handles employee endpoints
type EmployeeHandler struct {
	engine *services.LifecycleService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(engine *services.LifecycleService) *EmployeeHandler {
	return &EmployeeHandler{engine: engine}
}

// List returns all employees
// @Summary List employees
// @Tags Employees
// @Produce json
// @Success 200 {object} response.Response
// @Router /employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	return response.Success(c, "", h.engine.Snapshot().Employees)
}

// Create registers a new employee. Employees cannot be updated or deleted.
// @Summary Create employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param body body domain.Employee true "Employee data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var employee domain.Employee
	if err := c.BodyParser(&employee); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if employee.ID == "" {
		return response.BadRequest(c, "Employee id is required")
	}
	if employee.Name == "" {
		return response.BadRequest(c, "Employee name is required")
	}

	h.engine.CreateEmployee(employee)
	return response.Created(c, "Employee created", employee)
}
