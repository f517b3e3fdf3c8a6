package repository

import (
	"context"

	"github.com/TiendaCompu/Trieste-IA/internal/model"

	"gorm.io/gorm"
)

type TasaCambioRepository interface {
	// SetActiva deactivates every active rate and inserts the new one in a
	// single transaction, so readers never observe zero active rates.
	SetActiva(ctx context.Context, t *model.TasaCambio) error
	FindActiva(ctx context.Context) (*model.TasaCambio, error)
	List(ctx context.Context, limit int) ([]model.TasaCambio, error)
}

type tasaRepo struct{ db *gorm.DB }

func NewTasaCambioRepository(db *gorm.DB) TasaCambioRepository { return &tasaRepo{db: db} }

func (r *tasaRepo) SetActiva(ctx context.Context, t *model.TasaCambio) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.TasaCambio{}).Where("activa = true").
			Update("activa", false).Error; err != nil {
			return err
		}
		t.Activa = true
		return tx.Create(t).Error
	})
}

func (r *tasaRepo) FindActiva(ctx context.Context) (*model.TasaCambio, error) {
	var t model.TasaCambio
	err := r.db.WithContext(ctx).Where("activa = true").First(&t).Error
	return &t, err
}

func (r *tasaRepo) List(ctx context.Context, limit int) ([]model.TasaCambio, error) {
	var tasas []model.TasaCambio
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&tasas).Error
	return tasas, err
}
