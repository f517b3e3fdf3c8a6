package model

// Secuencia is an atomic counter backing the human-readable numbering of
// presupuestos and facturas (P-2026-001, FAC-2026-001). One row per
// (nombre, anio): the upsert-increment replaces the count-then-format scheme
// that could hand out duplicate numbers under concurrent writers.
type Secuencia struct {
	Nombre string `gorm:"primaryKey;type:varchar(20)"`
	Anio   int    `gorm:"primaryKey"`
	Valor  int64  `gorm:"not null;default:0"`
}

func (Secuencia) TableName() string { return "secuencias" }
