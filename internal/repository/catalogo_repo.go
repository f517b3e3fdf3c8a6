package repository

import (
	"context"

	"github.com/TiendaCompu/Trieste-IA/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogoRepository covers the servicios/repuestos catalog.
type CatalogoRepository interface {
	Create(ctx context.Context, item *model.ServicioRepuesto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ServicioRepuesto, error)
	List(ctx context.Context) ([]model.ServicioRepuesto, error)
	ListByTipo(ctx context.Context, tipo string) ([]model.ServicioRepuesto, error)
	UpdateCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) Create(ctx context.Context, item *model.ServicioRepuesto) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *catalogoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ServicioRepuesto, error) {
	var item model.ServicioRepuesto
	err := r.db.WithContext(ctx).First(&item, id).Error
	return &item, err
}

func (r *catalogoRepo) List(ctx context.Context) ([]model.ServicioRepuesto, error) {
	var items []model.ServicioRepuesto
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&items).Error
	return items, err
}

func (r *catalogoRepo) ListByTipo(ctx context.Context, tipo string) ([]model.ServicioRepuesto, error) {
	var items []model.ServicioRepuesto
	err := r.db.WithContext(ctx).Where("tipo = ?", tipo).Order("nombre ASC").Find(&items).Error
	return items, err
}

func (r *catalogoRepo) UpdateCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.ServicioRepuesto{}).Where("id = ?", id).Updates(campos).Error
}

func (r *catalogoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ServicioRepuesto{}, id).Error
}
