package model

import (
	"time"

	"github.com/google/uuid"
)

// Mecanico is a workshop specialist.
// Especialidad: "motor" | "transmision" | "frenos" | "electricidad" | "suspension"
// Estado: "disponible" | "fuera_servicio" | "vacaciones" | "inactivo"
type Mecanico struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string    `gorm:"not null"`
	Especialidad string    `gorm:"not null"`
	Telefono     *string
	Whatsapp     *string
	Avatar       *string // URL or base64
	Estado       string  `gorm:"type:varchar(20);not null;default:'disponible'"`
	Activo       bool    `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Mecanico) TableName() string { return "mecanicos" }
