package repository

import (
	"context"

	"github.com/TiendaCompu/Trieste-IA/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PresupuestoRepository interface {
	CreateTx(tx *gorm.DB, p *model.Presupuesto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Presupuesto, error)
	List(ctx context.Context) ([]model.Presupuesto, error)
	UpdateCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error
	DB() *gorm.DB
}

type presupuestoRepo struct{ db *gorm.DB }

func NewPresupuestoRepository(db *gorm.DB) PresupuestoRepository { return &presupuestoRepo{db: db} }

func (r *presupuestoRepo) CreateTx(tx *gorm.DB, p *model.Presupuesto) error {
	return tx.Create(p).Error
}

func (r *presupuestoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Presupuesto, error) {
	var p model.Presupuesto
	err := r.db.WithContext(ctx).Preload("Items").First(&p, id).Error
	return &p, err
}

func (r *presupuestoRepo) List(ctx context.Context) ([]model.Presupuesto, error) {
	var presupuestos []model.Presupuesto
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&presupuestos).Error
	return presupuestos, err
}

func (r *presupuestoRepo) UpdateCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Presupuesto{}).Where("id = ?", id).Updates(campos).Error
}

func (r *presupuestoRepo) DB() *gorm.DB { return r.db }
