package model

import (
	"time"

	"github.com/google/uuid"
)

// HistorialKilometraje is an append-only odometer ledger entry. Records are
// never edited or removed; the vehicle's kilometraje field moves in lockstep.
type HistorialKilometraje struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehiculoID          uuid.UUID `gorm:"type:uuid;index;not null"`
	KilometrajeAnterior int       `gorm:"not null"`
	KilometrajeNuevo    int       `gorm:"not null"`
	Motivo              string    `gorm:"not null;default:'ENTRADA AL TALLER'"`
	Observaciones       *string
	CreatedAt           time.Time
}

func (HistorialKilometraje) TableName() string { return "historial_kilometraje" }
