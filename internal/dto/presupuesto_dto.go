package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemPresupuestoInput struct {
	Tipo              string          `json:"tipo" validate:"required,oneof=servicio repuesto"`
	Descripcion       string          `json:"descripcion" validate:"required"`
	Cantidad          int             `json:"cantidad"    validate:"required,min=1"`
	PrecioUnitarioUSD decimal.Decimal `json:"precio_unitario_usd" validate:"min=0"`
}

type CrearPresupuestoRequest struct {
	VehiculoID     string                 `json:"vehiculo_id" validate:"required,uuid"`
	ClienteID      string                 `json:"cliente_id"  validate:"required,uuid"`
	OrdenTrabajoID *string                `json:"orden_trabajo_id" validate:"omitempty,uuid"`
	Items          []ItemPresupuestoInput `json:"items" validate:"required,min=1,dive"`
	Observaciones  *string                `json:"observaciones"`
}

type ActualizarEstadoPresupuestoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente aprobado rechazado"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemPresupuestoResponse struct {
	ID                string          `json:"id"`
	Tipo              string          `json:"tipo"`
	Descripcion       string          `json:"descripcion"`
	Cantidad          int             `json:"cantidad"`
	PrecioUnitarioUSD decimal.Decimal `json:"precio_unitario_usd"`
	TotalUSD          decimal.Decimal `json:"total_usd"`
}

type PresupuestoResponse struct {
	ID                string                    `json:"id"`
	NumeroPresupuesto string                    `json:"numero_presupuesto"`
	VehiculoID        string                    `json:"vehiculo_id"`
	ClienteID         string                    `json:"cliente_id"`
	OrdenTrabajoID    *string                   `json:"orden_trabajo_id"`
	Items             []ItemPresupuestoResponse `json:"items"`
	SubtotalUSD       decimal.Decimal           `json:"subtotal_usd"`
	IVAUSD            decimal.Decimal           `json:"iva_usd"`
	TotalUSD          decimal.Decimal           `json:"total_usd"`
	Estado            string                    `json:"estado"`
	FechaAprobacion   *string                   `json:"fecha_aprobacion"`
	Observaciones     *string                   `json:"observaciones"`
	CreatedAt         string                    `json:"created_at"`
}
