package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IVAPorcentaje is the fixed value-added tax applied to budget subtotals.
var IVAPorcentaje = decimal.NewFromFloat(0.16)

// Presupuesto is a quote computed from a list of line items at creation time.
// Estado: "pendiente" | "aprobado" | "rechazado". Amounts are in USD; the
// bolívar conversion happens only when a factura is created.
type Presupuesto struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NumeroPresupuesto string    `gorm:"uniqueIndex;not null"` // P-2026-001
	VehiculoID        uuid.UUID `gorm:"type:uuid;index;not null"`
	ClienteID         uuid.UUID `gorm:"type:uuid;index;not null"`
	OrdenTrabajoID    *uuid.UUID `gorm:"type:uuid;index"`
	SubtotalUSD       decimal.Decimal `gorm:"type:decimal(12,2);not null;column:subtotal_usd"`
	IVAUSD            decimal.Decimal `gorm:"type:decimal(12,2);not null;column:iva_usd"`
	TotalUSD          decimal.Decimal `gorm:"type:decimal(12,2);not null;column:total_usd"`
	Estado            string          `gorm:"type:varchar(20);not null;default:'pendiente'"`
	FechaAprobacion   *time.Time
	Observaciones     *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Items []ItemPresupuesto `gorm:"foreignKey:PresupuestoID"`
}

func (Presupuesto) TableName() string { return "presupuestos" }

// ItemPresupuesto is one budget line: quantity × unit price in USD.
type ItemPresupuesto struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PresupuestoID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Tipo              string    `gorm:"type:varchar(10);not null"` // servicio | repuesto
	Descripcion       string    `gorm:"not null"`
	Cantidad          int       `gorm:"not null;default:1"`
	PrecioUnitarioUSD decimal.Decimal `gorm:"type:decimal(10,2);not null;column:precio_unitario_usd"`
	TotalUSD          decimal.Decimal `gorm:"type:decimal(12,2);not null;column:total_usd"`
	CreatedAt         time.Time
}

func (ItemPresupuesto) TableName() string { return "items_presupuesto" }
