package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados aceptados para una orden de trabajo. No transition table is
// enforced: any member may be written at any time. "Activa" means
// estado != entregado — terminado still counts as active.
var EstadosOrden = map[string]bool{
	"recibido":       true,
	"diagnosticando": true,
	"presupuestado":  true,
	"aprobado":       true,
	"en_reparacion":  true,
	"terminado":      true,
	"entregado":      true,
}

const EstadoOrdenEntregado = "entregado"

// OrdenTrabajo is a repair work order. Items carry price snapshots taken from
// the catalog at the moment they were added, so later price edits never change
// an existing order.
type OrdenTrabajo struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehiculoID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	ClienteID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	MecanicoID  *uuid.UUID `gorm:"type:uuid;index"`
	Diagnostico *string
	Estado      string `gorm:"type:varchar(20);index;not null;default:'recibido'"`
	// PresupuestoTotal is the quoted amount in USD, set when the order is quoted
	PresupuestoTotal     *decimal.Decimal `gorm:"type:decimal(12,2)"`
	FechaIngreso         time.Time        `gorm:"not null"`
	FechaEstimadaEntrega *time.Time
	Observaciones        *string
	AprobadoCliente      bool `gorm:"not null;default:false"`
	// Set when the referenced vehicle is hard-deleted; the order survives with
	// the original plate string for traceability.
	VehiculoEliminado bool    `gorm:"not null;default:false"`
	MatriculaOriginal *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Items []OrdenItem `gorm:"foreignKey:OrdenID"`
}

func (OrdenTrabajo) TableName() string { return "ordenes_trabajo" }

// OrdenItem is a {catalog item, quantity, price} snapshot on a work order.
type OrdenItem struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrdenID            uuid.UUID `gorm:"type:uuid;index;not null"`
	ServicioRepuestoID uuid.UUID `gorm:"type:uuid;not null"`
	Cantidad           int       `gorm:"not null;default:1"`
	Precio             decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt          time.Time

	ServicioRepuesto *ServicioRepuesto `gorm:"foreignKey:ServicioRepuestoID"`
}

func (OrdenItem) TableName() string { return "ordenes_items" }
