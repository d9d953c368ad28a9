package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/ledger"
	"github.com/jhoicas/Farmacia-api/internal/domain/alert"
)

// LedgerHandler maneja las peticiones HTTP del motor de ledger (protegido).
type LedgerHandler struct {
	uc *ledger.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// RecordPurchase godoc
// @Summary      Registrar compra (entrada de stock)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPurchaseRequest  true  "product_id, supplier_id (opcional), quantity, unit_cost"
// @Success      201   {object}  dto.PurchaseEventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ledger/purchases [post]
func (h *LedgerHandler) RecordPurchase(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	event, err := h.uc.RecordPurchase(c.Context(), ledger.PurchaseInput{
		ProductID:  in.ProductID,
		SupplierID: in.SupplierID,
		Quantity:   in.Quantity,
		UnitCost:   in.UnitCost,
		ActorID:    actorID,
		Notes:      in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToPurchaseEventResponse(event))
}

// RecordSale godoc
// @Summary      Registrar venta (salida de stock)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "product_id, quantity, unit_price"
// @Success      201   {object}  dto.SaleEventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Failure      503   {object}  dto.ErrorResponse  "contención, reintentar"
// @Router       /api/ledger/sales [post]
func (h *LedgerHandler) RecordSale(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	event, err := h.uc.RecordSale(c.Context(), ledger.SaleInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		ActorID:   actorID,
		Notes:     in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSaleEventResponse(event))
}

// GetSnapshot godoc
// @Summary      Snapshot puntual del producto con su estado de alerta
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Product ID"
// @Success      200  {object}  dto.SnapshotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/snapshot [get]
func (h *LedgerHandler) GetSnapshot(c *fiber.Ctx) error {
	snap, err := h.uc.GetProductSnapshot(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	// Clasifica sobre el snapshot ya leído: una sola lectura, sin riesgo de
	// que una escritura concurrente desalinee cantidad y estado de alerta.
	state := alert.Classify(snap, time.Now())
	return c.JSON(dto.ToSnapshotResponse(snap, string(state)))
}

// GetAlert godoc
// @Summary      Estado de alerta del producto
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Product ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/alert [get]
func (h *LedgerHandler) GetAlert(c *fiber.Ctx) error {
	state, err := h.uc.AlertStatus(c.Context(), c.Params("id"), time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"product_id": c.Params("id"), "alert": string(state)})
}
