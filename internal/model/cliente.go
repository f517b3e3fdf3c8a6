package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is the legal identity used for billing. Nombre, documento, direccion
// fiscal and email are mandatory because every factura references them.
// TipoDocumento: "CI" | "RIF"; PrefijoDocumento: "V" | "E" | "J" | "G".
type Cliente struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre             string    `gorm:"index;not null"`
	TipoDocumento      string    `gorm:"type:varchar(10);not null"`
	PrefijoDocumento   string    `gorm:"type:varchar(2);not null"`
	NumeroDocumento    string    `gorm:"not null"`
	Telefono           *string
	TelefonoSecundario *string
	DireccionFiscal    string `gorm:"not null"`
	Empresa            *string `gorm:"index"`
	Email              string `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Cliente) TableName() string { return "clientes" }
