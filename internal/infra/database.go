package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/TiendaCompu/Trieste-IA/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies any idempotent SQL patches that GORM
// cannot express (partial indexes, etc.).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates / updates the schema. It is also called from
// integration tests against a disposable database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Cliente{},
		&model.Vehiculo{},
		&model.CambioMatricula{},
		&model.VehiculoEliminado{},
		&model.Mecanico{},
		&model.ServicioRepuesto{},
		&model.OrdenTrabajo{},
		&model.OrdenItem{},
		&model.HistorialKilometraje{},
		&model.TasaCambio{},
		&model.Presupuesto{},
		&model.ItemPresupuesto{},
		&model.Factura{},
		&model.ItemFactura{},
		&model.PagoFactura{},
		&model.Secuencia{},
		&model.Usuario{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// schemaPatches holds idempotent DDL that GORM AutoMigrate cannot fully handle
// on its own. Each statement uses IF NOT EXISTS / DO NOTHING semantics so
// re-running on an already-patched DB is safe.
var schemaPatches = []string{
	// At most one active exchange rate at any time; enforced at the DB
	// level with a partial unique index.
	`DO $$ BEGIN
	  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_tasas_cambio_unica_activa') THEN
	    CREATE UNIQUE INDEX idx_tasas_cambio_unica_activa
	        ON tasas_cambio (activa)
	        WHERE activa = true;
	  END IF;
	END $$`,
	// Mileage history is read newest-first per vehicle.
	`DO $$ BEGIN
	  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_historial_km_vehiculo_fecha') THEN
	    CREATE INDEX idx_historial_km_vehiculo_fecha
	        ON historial_kilometraje (vehiculo_id, created_at DESC);
	  END IF;
	END $$`,
	// Order listings filter by estado constantly.
	`DO $$ BEGIN
	  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_ordenes_trabajo_estado') THEN
	    CREATE INDEX idx_ordenes_trabajo_estado ON ordenes_trabajo (estado);
	  END IF;
	END $$`,
}

func applySchemaPatches(db *gorm.DB) error {
	for _, sql := range schemaPatches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
