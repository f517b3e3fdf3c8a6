package repository

import (
	"context"

	"github.com/TiendaCompu/Trieste-IA/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MecanicoRepository interface {
	Create(ctx context.Context, m *model.Mecanico) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Mecanico, error)
	List(ctx context.Context) ([]model.Mecanico, error)
	ListActivos(ctx context.Context) ([]model.Mecanico, error)
	UpdateCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type mecanicoRepo struct{ db *gorm.DB }

func NewMecanicoRepository(db *gorm.DB) MecanicoRepository { return &mecanicoRepo{db: db} }

func (r *mecanicoRepo) Create(ctx context.Context, m *model.Mecanico) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mecanicoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Mecanico, error) {
	var m model.Mecanico
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *mecanicoRepo) List(ctx context.Context) ([]model.Mecanico, error) {
	var mecanicos []model.Mecanico
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&mecanicos).Error
	return mecanicos, err
}

func (r *mecanicoRepo) ListActivos(ctx context.Context) ([]model.Mecanico, error) {
	var mecanicos []model.Mecanico
	err := r.db.WithContext(ctx).Where("activo = true").Find(&mecanicos).Error
	return mecanicos, err
}

func (r *mecanicoRepo) UpdateCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Mecanico{}).Where("id = ?", id).Updates(campos).Error
}

func (r *mecanicoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Mecanico{}, id).Error
}
