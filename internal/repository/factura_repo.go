package repository

import (
	"context"

	"github.com/TiendaCompu/Trieste-IA/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FacturaRepository interface {
	CreateTx(tx *gorm.DB, f *model.Factura) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Factura, error)
	List(ctx context.Context) ([]model.Factura, error)

	// Payment application: one payment row plus the recomputed derived fields,
	// persisted together so a reader never sees a half-applied payment.
	CreatePagoTx(tx *gorm.DB, p *model.PagoFactura) error
	UpdateDerivadosTx(tx *gorm.DB, id uuid.UUID, campos map[string]interface{}) error

	UpdatePDFPath(ctx context.Context, id uuid.UUID, path string) error
	DB() *gorm.DB
}

type facturaRepo struct{ db *gorm.DB }

func NewFacturaRepository(db *gorm.DB) FacturaRepository { return &facturaRepo{db: db} }

func (r *facturaRepo) CreateTx(tx *gorm.DB, f *model.Factura) error {
	return tx.Create(f).Error
}

func (r *facturaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Factura, error) {
	var f model.Factura
	err := r.db.WithContext(ctx).Preload("Items").Preload("Pagos").First(&f, id).Error
	return &f, err
}

func (r *facturaRepo) List(ctx context.Context) ([]model.Factura, error) {
	var facturas []model.Factura
	err := r.db.WithContext(ctx).Preload("Items").Preload("Pagos").
		Order("created_at DESC").Find(&facturas).Error
	return facturas, err
}

func (r *facturaRepo) CreatePagoTx(tx *gorm.DB, p *model.PagoFactura) error {
	return tx.Create(p).Error
}

func (r *facturaRepo) UpdateDerivadosTx(tx *gorm.DB, id uuid.UUID, campos map[string]interface{}) error {
	return tx.Model(&model.Factura{}).Where("id = ?", id).Updates(campos).Error
}

func (r *facturaRepo) UpdatePDFPath(ctx context.Context, id uuid.UUID, path string) error {
	return r.db.WithContext(ctx).Model(&model.Factura{}).Where("id = ?", id).
		Update("pdf_path", path).Error
}

func (r *facturaRepo) DB() *gorm.DB { return r.db }
