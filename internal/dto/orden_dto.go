package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearOrdenRequest struct {
	VehiculoID    string  `json:"vehiculo_id" validate:"required,uuid"`
	ClienteID     string  `json:"cliente_id"  validate:"required,uuid"`
	Diagnostico   *string `json:"diagnostico"`
	Observaciones *string `json:"observaciones"`
}

type OrdenItemInput struct {
	ID       string          `json:"id"       validate:"required,uuid"` // catalog item id
	Cantidad int             `json:"cantidad" validate:"required,min=1"`
	Precio   decimal.Decimal `json:"precio"   validate:"min=0"`
}

// ActualizarOrdenRequest is a partial update: nil leaves the field untouched.
type ActualizarOrdenRequest struct {
	MecanicoID           *string          `json:"mecanico_id" validate:"omitempty,uuid"`
	Diagnostico          *string          `json:"diagnostico"`
	ServiciosRepuestos   []OrdenItemInput `json:"servicios_repuestos"`
	Estado               *string          `json:"estado"`
	PresupuestoTotal     *decimal.Decimal `json:"presupuesto_total"`
	FechaEstimadaEntrega *string          `json:"fecha_estimada_entrega"`
	Observaciones        *string          `json:"observaciones"`
	AprobadoCliente      *bool            `json:"aprobado_cliente"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrdenItemResponse struct {
	ID       string          `json:"id"`
	Nombre   string          `json:"nombre,omitempty"`
	Cantidad int             `json:"cantidad"`
	Precio   decimal.Decimal `json:"precio"`
}

type OrdenResponse struct {
	ID                   string              `json:"id"`
	VehiculoID           string              `json:"vehiculo_id"`
	ClienteID            string              `json:"cliente_id"`
	MecanicoID           *string             `json:"mecanico_id"`
	Diagnostico          *string             `json:"diagnostico"`
	ServiciosRepuestos   []OrdenItemResponse `json:"servicios_repuestos"`
	Estado               string              `json:"estado"`
	PresupuestoTotal     *decimal.Decimal    `json:"presupuesto_total"`
	FechaIngreso         string              `json:"fecha_ingreso"`
	FechaEstimadaEntrega *string             `json:"fecha_estimada_entrega"`
	Observaciones        *string             `json:"observaciones"`
	AprobadoCliente      bool                `json:"aprobado_cliente"`
	VehiculoEliminado    bool                `json:"vehiculo_eliminado"`
	MatriculaOriginal    *string             `json:"matricula_original,omitempty"`
	CreatedAt            string              `json:"created_at"`
}

type EstadisticasResponse struct {
	TotalOrdenes   int64            `json:"total_ordenes"`
	OrdenesActivas int64            `json:"ordenes_activas"`
	TotalVehiculos int64            `json:"total_vehiculos"`
	TotalClientes  int64            `json:"total_clientes"`
	EstadosOrdenes map[string]int64 `json:"estados_ordenes"`
}
