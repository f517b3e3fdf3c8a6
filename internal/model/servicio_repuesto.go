package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServicioRepuesto is a catalog item: a labor service or a spare part.
// Tipo: "servicio" | "repuesto". Precio is the unit price in USD.
type ServicioRepuesto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo        string    `gorm:"type:varchar(10);index;not null"`
	Nombre      string    `gorm:"not null"`
	Descripcion *string
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ServicioRepuesto) TableName() string { return "servicios_repuestos" }
