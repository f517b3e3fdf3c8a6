package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearMecanicoRequest struct {
	Nombre       string  `json:"nombre"       validate:"required,min=2"`
	Especialidad string  `json:"especialidad" validate:"required"`
	Telefono     *string `json:"telefono"`
	Whatsapp     *string `json:"whatsapp"`
	Avatar       *string `json:"avatar"`
	Estado       string  `json:"estado"       validate:"omitempty,oneof=disponible fuera_servicio vacaciones inactivo"`
}

type ActualizarMecanicoRequest struct {
	Nombre       *string `json:"nombre"`
	Especialidad *string `json:"especialidad"`
	Telefono     *string `json:"telefono"`
	Whatsapp     *string `json:"whatsapp"`
	Avatar       *string `json:"avatar"`
	Estado       *string `json:"estado" validate:"omitempty,oneof=disponible fuera_servicio vacaciones inactivo"`
	Activo       *bool   `json:"activo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MecanicoResponse struct {
	ID           string  `json:"id"`
	Nombre       string  `json:"nombre"`
	Especialidad string  `json:"especialidad"`
	Telefono     *string `json:"telefono"`
	Whatsapp     *string `json:"whatsapp"`
	Avatar       *string `json:"avatar,omitempty"`
	Estado       string  `json:"estado"`
	Activo       bool    `json:"activo"`
	CreatedAt    string  `json:"created_at"`
}
