package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
)

// SupplierHandler CRUD de proveedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create registra un proveedor.
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	supplier, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// GetByID detalle de proveedor.
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	supplier, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(supplier)
}

// List lista proveedores.
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	suppliers, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(suppliers)
}

// Update modifica un proveedor.
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	supplier, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(supplier)
}

// Delete elimina un proveedor.
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
