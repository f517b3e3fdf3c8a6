package repository

import (
	"context"

	"github.com/TiendaCompu/Trieste-IA/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehiculoRepository interface {
	Create(ctx context.Context, v *model.Vehiculo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vehiculo, error)
	FindByMatricula(ctx context.Context, matricula string) (*model.Vehiculo, error)
	List(ctx context.Context) ([]model.Vehiculo, error)
	ListByClienteID(ctx context.Context, clienteID uuid.UUID) ([]model.Vehiculo, error)
	SearchByMatricula(ctx context.Context, q string, limit int) ([]model.Vehiculo, error)
	UpdateCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error

	// Used inside transactions — callers must pass the tx instance
	UpdateMatriculaTx(tx *gorm.DB, id uuid.UUID, matricula string) error
	UpdateKilometrajeTx(tx *gorm.DB, id uuid.UUID, kilometraje int) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	CreateCambioMatriculaTx(tx *gorm.DB, c *model.CambioMatricula) error
	CreateEliminadoTx(tx *gorm.DB, e *model.VehiculoEliminado) error
	ListCambiosMatricula(ctx context.Context, vehiculoID uuid.UUID) ([]model.CambioMatricula, error)
	CountTotal(ctx context.Context) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type vehiculoRepo struct{ db *gorm.DB }

func NewVehiculoRepository(db *gorm.DB) VehiculoRepository { return &vehiculoRepo{db: db} }

func (r *vehiculoRepo) Create(ctx context.Context, v *model.Vehiculo) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehiculoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vehiculo, error) {
	var v model.Vehiculo
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *vehiculoRepo) FindByMatricula(ctx context.Context, matricula string) (*model.Vehiculo, error) {
	var v model.Vehiculo
	err := r.db.WithContext(ctx).Where("matricula = ?", matricula).First(&v).Error
	return &v, err
}

func (r *vehiculoRepo) List(ctx context.Context) ([]model.Vehiculo, error) {
	var vehiculos []model.Vehiculo
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&vehiculos).Error
	return vehiculos, err
}

func (r *vehiculoRepo) ListByClienteID(ctx context.Context, clienteID uuid.UUID) ([]model.Vehiculo, error) {
	var vehiculos []model.Vehiculo
	err := r.db.WithContext(ctx).Where("cliente_id = ?", clienteID).Find(&vehiculos).Error
	return vehiculos, err
}

func (r *vehiculoRepo) SearchByMatricula(ctx context.Context, q string, limit int) ([]model.Vehiculo, error) {
	var vehiculos []model.Vehiculo
	err := r.db.WithContext(ctx).Where("matricula ILIKE ?", "%"+q+"%").Limit(limit).Find(&vehiculos).Error
	return vehiculos, err
}

func (r *vehiculoRepo) UpdateCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Vehiculo{}).Where("id = ?", id).Updates(campos).Error
}

func (r *vehiculoRepo) UpdateMatriculaTx(tx *gorm.DB, id uuid.UUID, matricula string) error {
	return tx.Model(&model.Vehiculo{}).Where("id = ?", id).Update("matricula", matricula).Error
}

func (r *vehiculoRepo) UpdateKilometrajeTx(tx *gorm.DB, id uuid.UUID, kilometraje int) error {
	return tx.Model(&model.Vehiculo{}).Where("id = ?", id).Update("kilometraje", kilometraje).Error
}

func (r *vehiculoRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Vehiculo{}, id).Error
}

func (r *vehiculoRepo) CreateCambioMatriculaTx(tx *gorm.DB, c *model.CambioMatricula) error {
	return tx.Create(c).Error
}

func (r *vehiculoRepo) CreateEliminadoTx(tx *gorm.DB, e *model.VehiculoEliminado) error {
	return tx.Create(e).Error
}

func (r *vehiculoRepo) ListCambiosMatricula(ctx context.Context, vehiculoID uuid.UUID) ([]model.CambioMatricula, error) {
	var cambios []model.CambioMatricula
	err := r.db.WithContext(ctx).Where("vehiculo_id = ?", vehiculoID).Order("created_at DESC").Find(&cambios).Error
	return cambios, err
}

func (r *vehiculoRepo) CountTotal(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Vehiculo{}).Count(&n).Error
	return n, err
}

func (r *vehiculoRepo) DB() *gorm.DB { return r.db }
