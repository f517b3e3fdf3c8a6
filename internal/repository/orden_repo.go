package repository

import (
	"context"

	"github.com/TiendaCompu/Trieste-IA/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrdenRepository interface {
	Create(ctx context.Context, o *model.OrdenTrabajo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.OrdenTrabajo, error)
	List(ctx context.Context, estado, filtro string) ([]model.OrdenTrabajo, error)
	ListByVehiculoID(ctx context.Context, vehiculoID uuid.UUID) ([]model.OrdenTrabajo, error)
	UpdateCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error
	ReplaceItems(ctx context.Context, id uuid.UUID, items []model.OrdenItem) error

	// Referential checks before deletes elsewhere
	CountActivasByVehiculo(ctx context.Context, vehiculoID uuid.UUID) (int64, error)
	CountNoEntregadasByMecanico(ctx context.Context, mecanicoID uuid.UUID) (int64, error)
	CountActivasConItem(ctx context.Context, servicioRepuestoID uuid.UUID) (int64, error)

	MarcarVehiculoEliminadoTx(tx *gorm.DB, vehiculoID uuid.UUID, matriculaOriginal string) error

	// Dashboard
	CountTotal(ctx context.Context) (int64, error)
	CountActivas(ctx context.Context) (int64, error)
	CountPorEstado(ctx context.Context) (map[string]int64, error)
}

type ordenRepo struct{ db *gorm.DB }

func NewOrdenRepository(db *gorm.DB) OrdenRepository { return &ordenRepo{db: db} }

func (r *ordenRepo) Create(ctx context.Context, o *model.OrdenTrabajo) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *ordenRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.OrdenTrabajo, error) {
	var o model.OrdenTrabajo
	err := r.db.WithContext(ctx).Preload("Items.ServicioRepuesto").First(&o, id).Error
	return &o, err
}

func (r *ordenRepo) List(ctx context.Context, estado, filtro string) ([]model.OrdenTrabajo, error) {
	q := r.db.WithContext(ctx).Model(&model.OrdenTrabajo{})

	switch {
	case estado != "":
		q = q.Where("estado = ?", estado)
	case filtro == "activas":
		// terminado still counts as active — only entregado leaves the set
		q = q.Where("estado <> ?", model.EstadoOrdenEntregado)
	case filtro == "entregadas":
		q = q.Where("estado = ?", model.EstadoOrdenEntregado)
	}

	var ordenes []model.OrdenTrabajo
	err := q.Preload("Items.ServicioRepuesto").Order("created_at DESC").Find(&ordenes).Error
	return ordenes, err
}

func (r *ordenRepo) ListByVehiculoID(ctx context.Context, vehiculoID uuid.UUID) ([]model.OrdenTrabajo, error) {
	var ordenes []model.OrdenTrabajo
	err := r.db.WithContext(ctx).Where("vehiculo_id = ?", vehiculoID).
		Preload("Items.ServicioRepuesto").Order("created_at DESC").Find(&ordenes).Error
	return ordenes, err
}

func (r *ordenRepo) UpdateCampos(ctx context.Context, id uuid.UUID, campos map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.OrdenTrabajo{}).Where("id = ?", id).Updates(campos).Error
}

// ReplaceItems swaps the full item snapshot list of an order in one transaction.
func (r *ordenRepo) ReplaceItems(ctx context.Context, id uuid.UUID, items []model.OrdenItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("orden_id = ?", id).Delete(&model.OrdenItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrdenID = id
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *ordenRepo) CountActivasByVehiculo(ctx context.Context, vehiculoID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.OrdenTrabajo{}).
		Where("vehiculo_id = ? AND estado NOT IN ?", vehiculoID, []string{"terminado", "entregado"}).
		Count(&n).Error
	return n, err
}

func (r *ordenRepo) CountNoEntregadasByMecanico(ctx context.Context, mecanicoID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.OrdenTrabajo{}).
		Where("mecanico_id = ? AND estado <> ?", mecanicoID, model.EstadoOrdenEntregado).
		Count(&n).Error
	return n, err
}

func (r *ordenRepo) CountActivasConItem(ctx context.Context, servicioRepuestoID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.OrdenItem{}).
		Joins("JOIN ordenes_trabajo ON ordenes_trabajo.id = ordenes_items.orden_id").
		Where("ordenes_items.servicio_repuesto_id = ? AND ordenes_trabajo.estado NOT IN ?",
			servicioRepuestoID, []string{"terminado", "entregado"}).
		Count(&n).Error
	return n, err
}

func (r *ordenRepo) MarcarVehiculoEliminadoTx(tx *gorm.DB, vehiculoID uuid.UUID, matriculaOriginal string) error {
	return tx.Model(&model.OrdenTrabajo{}).Where("vehiculo_id = ?", vehiculoID).
		Updates(map[string]interface{}{
			"vehiculo_eliminado": true,
			"matricula_original": matriculaOriginal,
		}).Error
}

func (r *ordenRepo) CountTotal(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.OrdenTrabajo{}).Count(&n).Error
	return n, err
}

func (r *ordenRepo) CountActivas(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.OrdenTrabajo{}).
		Where("estado IN ?", []string{"recibido", "diagnosticando", "presupuestado", "aprobado", "en_reparacion"}).
		Count(&n).Error
	return n, err
}

func (r *ordenRepo) CountPorEstado(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Estado string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.OrdenTrabajo{}).
		Select("estado, COUNT(*) as count").Group("estado").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Estado] = rw.Count
	}
	return out, nil
}
