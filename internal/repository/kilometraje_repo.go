package repository

import (
	"context"

	"github.com/TiendaCompu/Trieste-IA/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KilometrajeRepository is the append-only odometer ledger. There is no
// update or delete on purpose.
type KilometrajeRepository interface {
	CreateTx(tx *gorm.DB, h *model.HistorialKilometraje) error
	ListByVehiculoID(ctx context.Context, vehiculoID uuid.UUID) ([]model.HistorialKilometraje, error)
}

type kilometrajeRepo struct{ db *gorm.DB }

func NewKilometrajeRepository(db *gorm.DB) KilometrajeRepository { return &kilometrajeRepo{db: db} }

func (r *kilometrajeRepo) CreateTx(tx *gorm.DB, h *model.HistorialKilometraje) error {
	return tx.Create(h).Error
}

func (r *kilometrajeRepo) ListByVehiculoID(ctx context.Context, vehiculoID uuid.UUID) ([]model.HistorialKilometraje, error) {
	var historial []model.HistorialKilometraje
	err := r.db.WithContext(ctx).Where("vehiculo_id = ?", vehiculoID).
		Order("created_at DESC").Find(&historial).Error
	return historial, err
}
