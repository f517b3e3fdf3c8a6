package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IGTFPorcentaje is the surcharge applied to the invoice total once any
// payment involves foreign currency. Once triggered it never reverts.
var IGTFPorcentaje = decimal.NewFromFloat(0.03)

// Factura is an invoice created from an approved presupuesto. USD amounts and
// items are copied verbatim; TasaCambio is the exchange rate frozen at
// creation time and every Bs amount on the invoice derives from it, even if
// the global rate changes later.
// EstadoPago: "pendiente" | "pagado_parcial" | "pagado_total".
type Factura struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NumeroFactura string    `gorm:"uniqueIndex;not null"` // FAC-2026-001
	PresupuestoID uuid.UUID `gorm:"type:uuid;index;not null"`
	VehiculoID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ClienteID     uuid.UUID `gorm:"type:uuid;index;not null"`

	// Vehicle snapshot at invoicing time
	VehiculoMatricula string `gorm:"not null"`
	VehiculoColor     *string
	VehiculoAnio      *int `gorm:"column:vehiculo_anio"`
	KmIngreso         *int

	// USD amounts copied from the presupuesto
	SubtotalUSD decimal.Decimal `gorm:"type:decimal(12,2);not null;column:subtotal_usd"`
	IVAUSD      decimal.Decimal `gorm:"type:decimal(12,2);not null;column:iva_usd"`
	TotalUSD    decimal.Decimal `gorm:"type:decimal(12,2);not null;column:total_usd"`

	// Frozen rate and derived bolívar amounts
	TasaCambio decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SubtotalBs decimal.Decimal `gorm:"type:decimal(18,2);not null;column:subtotal_bs"`
	IVABs      decimal.Decimal `gorm:"type:decimal(18,2);not null;column:iva_bs"`
	TotalBs    decimal.Decimal `gorm:"type:decimal(18,2);not null;column:total_bs"`

	// IGTF 3% — applies once any payment is in dólares
	AplicaIGTF   bool            `gorm:"not null;default:false;column:aplica_igtf"`
	IGTFUSD      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0;column:igtf_usd"`
	IGTFBs       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0;column:igtf_bs"`
	TotalFinalBs decimal.Decimal `gorm:"type:decimal(18,2);not null;column:total_final_bs"`

	// Payment tracking
	MontoPagadoBs    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0;column:monto_pagado_bs"`
	SaldoPendienteBs decimal.Decimal `gorm:"type:decimal(18,2);not null;column:saldo_pendiente_bs"`
	EstadoPago       string          `gorm:"type:varchar(20);not null;default:'pendiente'"`

	FechaVencimiento *time.Time
	Observaciones    *string
	PDFPath          *string `gorm:"column:pdf_path"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Items []ItemFactura  `gorm:"foreignKey:FacturaID"`
	Pagos []PagoFactura  `gorm:"foreignKey:FacturaID"`
}

func (Factura) TableName() string { return "facturas" }

// ItemFactura is a budget line copied onto the invoice at creation time.
type ItemFactura struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FacturaID         uuid.UUID `gorm:"type:uuid;index;not null"`
	Tipo              string    `gorm:"type:varchar(10);not null"`
	Descripcion       string    `gorm:"not null"`
	Cantidad          int       `gorm:"not null;default:1"`
	PrecioUnitarioUSD decimal.Decimal `gorm:"type:decimal(10,2);not null;column:precio_unitario_usd"`
	TotalUSD          decimal.Decimal `gorm:"type:decimal(12,2);not null;column:total_usd"`
	CreatedAt         time.Time
}

func (ItemFactura) TableName() string { return "items_factura" }

// PagoFactura is one payment applied to an invoice.
// Tipo: "bolivares" | "dolares".
// Metodo Bs: tarjeta_debito | tarjeta_credito | transferencia | pago_movil | efectivo
// Metodo USD: zelle | efectivo | transferencia_internacional
type PagoFactura struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FacturaID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Tipo       string          `gorm:"type:varchar(10);not null"`
	Metodo     string          `gorm:"type:varchar(30);not null"`
	MontoUSD   decimal.Decimal `gorm:"type:decimal(12,2);not null;column:monto_usd"`
	MontoBs    decimal.Decimal `gorm:"type:decimal(18,2);not null;column:monto_bs"`
	Referencia *string
	CreatedAt  time.Time
}

func (PagoFactura) TableName() string { return "pagos_factura" }
