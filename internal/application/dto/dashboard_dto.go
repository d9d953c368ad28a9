package dto

import "github.com/shopspring/decimal"

// TopProductDTO producto más vendido del período.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Units     int64           `json:"units"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// AlertCountersDTO conteo de productos por estado de alerta.
type AlertCountersDTO struct {
	LowStock     int `json:"low_stock"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
}

// DashboardSummaryDTO resumen financiero del día y del mes en curso.
type DashboardSummaryDTO struct {
	TodaySales      decimal.Decimal  `json:"today_sales"`
	TodayProfit     decimal.Decimal  `json:"today_profit"`
	MonthlySales    decimal.Decimal  `json:"monthly_sales"`
	MonthlyProfit   decimal.Decimal  `json:"monthly_profit"`
	MonthlyPurchase decimal.Decimal  `json:"monthly_purchase"`
	TopProducts     []TopProductDTO  `json:"top_products"`
	Alerts          AlertCountersDTO `json:"alerts"`
}
