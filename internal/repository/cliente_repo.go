package repository

import (
	"context"

	"github.com/TiendaCompu/Trieste-IA/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClienteRepository defines the data access contract for clients.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)
	UpdateCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error
	SearchByNombreEmpresa(ctx context.Context, q string, limit int) ([]model.Cliente, error)
	CountTotal(ctx context.Context) (int64, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) UpdateCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Cliente{}).Where("id = ?", id).Updates(campos).Error
}

func (r *clienteRepo) SearchByNombreEmpresa(ctx context.Context, q string, limit int) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).
		Where("nombre ILIKE ? OR empresa ILIKE ?", "%"+q+"%", "%"+q+"%").
		Limit(limit).Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) CountTotal(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Cliente{}).Count(&n).Error
	return n, err
}
