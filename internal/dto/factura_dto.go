package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearFacturaRequest struct {
	PresupuestoID    string  `json:"presupuesto_id" validate:"required,uuid"`
	FechaVencimiento *string `json:"fecha_vencimiento"`
	Observaciones    *string `json:"observaciones"`
}

// RegistrarPagoRequest carries one payment. For tipo "dolares" MontoUSD is
// required; for "bolivares" MontoBs is required — the other amount is derived
// from the exchange rate at payment time.
type RegistrarPagoRequest struct {
	Tipo       string           `json:"tipo"   validate:"required,oneof=bolivares dolares"`
	Metodo     string           `json:"metodo" validate:"required"`
	MontoUSD   *decimal.Decimal `json:"monto_usd"`
	MontoBs    *decimal.Decimal `json:"monto_bs"`
	Referencia *string          `json:"referencia"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PagoFacturaResponse struct {
	ID         string          `json:"id"`
	Tipo       string          `json:"tipo"`
	Metodo     string          `json:"metodo"`
	MontoUSD   decimal.Decimal `json:"monto_usd"`
	MontoBs    decimal.Decimal `json:"monto_bs"`
	Referencia *string         `json:"referencia"`
	FechaPago  string          `json:"fecha_pago"`
}

type VehiculoDatosResponse struct {
	Matricula string  `json:"matricula"`
	Color     *string `json:"color"`
	Anio      *int    `json:"año"`
	KmIngreso *int    `json:"km_ingreso"`
}

type FacturaResponse struct {
	ID               string                    `json:"id"`
	NumeroFactura    string                    `json:"numero_factura"`
	PresupuestoID    string                    `json:"presupuesto_id"`
	VehiculoID       string                    `json:"vehiculo_id"`
	ClienteID        string                    `json:"cliente_id"`
	VehiculoDatos    VehiculoDatosResponse     `json:"vehiculo_datos"`
	Items            []ItemPresupuestoResponse `json:"items"`
	SubtotalUSD      decimal.Decimal           `json:"subtotal_usd"`
	IVAUSD           decimal.Decimal           `json:"iva_usd"`
	TotalUSD         decimal.Decimal           `json:"total_usd"`
	TasaCambio       decimal.Decimal           `json:"tasa_cambio"`
	SubtotalBs       decimal.Decimal           `json:"subtotal_bs"`
	IVABs            decimal.Decimal           `json:"iva_bs"`
	TotalBs          decimal.Decimal           `json:"total_bs"`
	AplicaIGTF       bool                      `json:"aplica_igtf"`
	IGTFUSD          decimal.Decimal           `json:"igtf_usd"`
	IGTFBs           decimal.Decimal           `json:"igtf_bs"`
	TotalFinalBs     decimal.Decimal           `json:"total_final_bs"`
	MontoPagadoBs    decimal.Decimal           `json:"monto_pagado_bs"`
	SaldoPendienteBs decimal.Decimal           `json:"saldo_pendiente_bs"`
	EstadoPago       string                    `json:"estado_pago"`
	Pagos            []PagoFacturaResponse     `json:"pagos"`
	FechaVencimiento *string                   `json:"fecha_vencimiento"`
	Observaciones    *string                   `json:"observaciones"`
	PDFPath          *string                   `json:"pdf_path,omitempty"`
	CreatedAt        string                    `json:"created_at"`
}

type RegistrarPagoResponse struct {
	Mensaje          string          `json:"mensaje"`
	MontoPagadoBs    decimal.Decimal `json:"monto_pagado_bs"`
	SaldoPendienteBs decimal.Decimal `json:"saldo_pendiente_bs"`
	EstadoPago       string          `json:"estado_pago"`
	AplicaIGTF       bool            `json:"aplica_igtf"`
	TotalFinalBs     decimal.Decimal `json:"total_final_bs"`
}
