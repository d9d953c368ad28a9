package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
)

// Ventana por defecto cuando el cliente no acota el período.
const defaultLogWindowDays = 30

// EventLogHandler consultas del historial de compras y ventas.
type EventLogHandler struct {
	uc *usecase.EventLogUseCase
}

// NewEventLogHandler construye el handler.
func NewEventLogHandler(uc *usecase.EventLogUseCase) *EventLogHandler {
	return &EventLogHandler{uc: uc}
}

// parseLogWindow lee product_id, from y to del query. Fechas en formato
// 2006-01-02; "to" es inclusivo hasta el fin del día.
func parseLogWindow(c *fiber.Ctx) (productID string, from, to time.Time, err error) {
	productID = c.Query("product_id")
	now := time.Now().UTC()
	from = now.AddDate(0, 0, -defaultLogWindowDays)
	to = now
	if raw := c.Query("from"); raw != "" {
		from, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return "", time.Time{}, time.Time{}, err
		}
	}
	if raw := c.Query("to"); raw != "" {
		to, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return "", time.Time{}, time.Time{}, err
		}
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return productID, from, to, nil
}

// ListPurchases historial de compras.
// @Summary      Historial de compras
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Param        product_id query string false "Filtrar por producto"
// @Param        from query string false "Desde (2006-01-02)"
// @Param        to query string false "Hasta (2006-01-02)"
// @Success      200 {array} dto.PurchaseEventResponse
// @Router       /api/ledger/purchases [get]
func (h *EventLogHandler) ListPurchases(c *fiber.Ctx) error {
	productID, from, to, err := parseLogWindow(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fecha inválida, use 2006-01-02"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	events, err := h.uc.ListPurchases(c.Context(), productID, from, to, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(events)
}

// ListSales historial de ventas.
// @Summary      Historial de ventas
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Param        product_id query string false "Filtrar por producto"
// @Param        from query string false "Desde (2006-01-02)"
// @Param        to query string false "Hasta (2006-01-02)"
// @Success      200 {array} dto.SaleEventResponse
// @Router       /api/ledger/sales [get]
func (h *EventLogHandler) ListSales(c *fiber.Ctx) error {
	productID, from, to, err := parseLogWindow(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fecha inválida, use 2006-01-02"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	events, err := h.uc.ListSales(c.Context(), productID, from, to, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(events)
}

// SaleReceipt recibo en PDF de una venta confirmada.
// @Summary      Recibo de venta
// @Tags         ledger
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "ID de la venta"
// @Success      200 {file} binary
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/ledger/sales/{id}/receipt [get]
func (h *EventLogHandler) SaleReceipt(c *fiber.Ctx) error {
	data, err := h.uc.SaleReceipt(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
