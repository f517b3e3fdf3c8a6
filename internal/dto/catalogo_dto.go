package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearServicioRepuestoRequest struct {
	Tipo        string          `json:"tipo"        validate:"required,oneof=servicio repuesto"`
	Nombre      string          `json:"nombre"      validate:"required,min=2"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"      validate:"required,min=0"`
}

type ActualizarServicioRepuestoRequest struct {
	Tipo        *string          `json:"tipo" validate:"omitempty,oneof=servicio repuesto"`
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio" validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ServicioRepuestoResponse struct {
	ID          string          `json:"id"`
	Tipo        string          `json:"tipo"`
	Nombre      string          `json:"nombre"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	CreatedAt   string          `json:"created_at"`
}

type EliminarItemResponse struct {
	Success       bool   `json:"success"`
	ItemEliminado string `json:"item_eliminado"`
}
