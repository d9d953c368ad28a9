package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// ReceiptGenerator puerto de render de recibos (implementado en infrastructure/pdf).
type ReceiptGenerator interface {
	GenerateSaleReceipt(ctx context.Context, sale *entity.SaleEvent, product *entity.Product) ([]byte, error)
}

// EventLogUseCase lecturas del log de eventos: historial por producto o por
// período, y recibo de una venta confirmada. Solo lectura; la escritura del
// log es exclusiva del motor de ledger.
type EventLogUseCase struct {
	purchaseRepo repository.PurchaseRepository
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	receipts     ReceiptGenerator
}

// NewEventLogUseCase construye el caso de uso.
func NewEventLogUseCase(
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	receipts ReceiptGenerator,
) *EventLogUseCase {
	return &EventLogUseCase{
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		receipts:     receipts,
	}
}

// ListPurchases historial de compras; productID vacío lista todo el período.
func (uc *EventLogUseCase) ListPurchases(ctx context.Context, productID string, from, to time.Time, page dto.PageRequest) ([]dto.PurchaseEventResponse, error) {
	page.DefaultPage()
	var (
		events []*entity.PurchaseEvent
		err    error
	)
	if productID != "" {
		events, err = uc.purchaseRepo.ListByProduct(ctx, productID, &from, &to, page.Limit, page.Offset)
	} else {
		events, err = uc.purchaseRepo.ListByPeriod(ctx, from, to, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.ToPurchaseEventResponse(e))
	}
	return out, nil
}

// ListSales historial de ventas; productID vacío lista todo el período.
func (uc *EventLogUseCase) ListSales(ctx context.Context, productID string, from, to time.Time, page dto.PageRequest) ([]dto.SaleEventResponse, error) {
	page.DefaultPage()
	var (
		events []*entity.SaleEvent
		err    error
	)
	if productID != "" {
		events, err = uc.saleRepo.ListByProduct(ctx, productID, &from, &to, page.Limit, page.Offset)
	} else {
		events, err = uc.saleRepo.ListByPeriod(ctx, from, to, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.ToSaleEventResponse(e))
	}
	return out, nil
}

// SaleReceipt genera el PDF del recibo de una venta confirmada.
func (uc *EventLogUseCase) SaleReceipt(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(ctx, sale.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.receipts.GenerateSaleReceipt(ctx, sale, product)
}
