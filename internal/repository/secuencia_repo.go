package repository

import (
	"gorm.io/gorm"
)

// SecuenciaRepository hands out the next value of a named yearly counter.
// The upsert-increment is atomic at the database level, which makes the
// human-readable numbering (P-2026-001, FAC-2026-001) safe under concurrent
// writers — unlike the count-then-format scheme it replaces.
type SecuenciaRepository interface {
	NextTx(tx *gorm.DB, nombre string, anio int) (int64, error)
}

type secuenciaRepo struct{ db *gorm.DB }

func NewSecuenciaRepository(db *gorm.DB) SecuenciaRepository { return &secuenciaRepo{db: db} }

func (r *secuenciaRepo) NextTx(tx *gorm.DB, nombre string, anio int) (int64, error) {
	var valor int64
	err := tx.Raw(`
		INSERT INTO secuencias (nombre, anio, valor)
		VALUES (?, ?, 1)
		ON CONFLICT (nombre, anio) DO UPDATE SET valor = secuencias.valor + 1
		RETURNING valor
	`, nombre, anio).Scan(&valor).Error
	return valor, err
}
