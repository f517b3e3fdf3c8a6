package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vehiculo is a registered vehicle. Matricula is stored normalized (uppercase,
// trimmed) and is globally unique; plate changes go through cambios_matricula
// so the old linkage is never lost.
type Vehiculo struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Matricula       string    `gorm:"uniqueIndex;not null"`
	Marca           string    `gorm:"not null"`
	Modelo          string    `gorm:"not null"`
	Anio            *int      `gorm:"column:anio"`
	Color           *string
	Kilometraje     *int
	TipoCombustible *string // GASOLINA | DIESEL | GNV | ELECTRICO
	SerialNIV       *string `gorm:"column:serial_niv"`
	// Tara is the empty weight of the vehicle in kg
	Tara          *decimal.Decimal `gorm:"type:decimal(8,2)"`
	FotoVehiculo  *string          // base64
	FotoMatricula *string          // base64
	ClienteID     uuid.UUID        `gorm:"type:uuid;index;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}

func (Vehiculo) TableName() string { return "vehiculos" }

// CambioMatricula records a plate change without destroying prior linkage.
type CambioMatricula struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehiculoID        uuid.UUID `gorm:"type:uuid;index;not null"`
	MatriculaAnterior string    `gorm:"not null"`
	MatriculaNueva    string    `gorm:"not null"`
	Motivo            string
	Usuario           string `gorm:"not null;default:'sistema'"`
	CreatedAt         time.Time
}

func (CambioMatricula) TableName() string { return "cambios_matricula" }

// VehiculoEliminado is the audit snapshot written before a hard delete.
type VehiculoEliminado struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehiculoID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Matricula   string    `gorm:"not null"`
	Marca       string
	Modelo      string
	Anio        *int `gorm:"column:anio"`
	Color       *string
	Kilometraje *int
	ClienteID   uuid.UUID `gorm:"type:uuid;not null"`
	Usuario     string    `gorm:"not null;default:'sistema'"`
	CreatedAt   time.Time
}

func (VehiculoEliminado) TableName() string { return "vehiculos_eliminados" }
