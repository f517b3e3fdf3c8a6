package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ActualizarKilometrajeRequest struct {
	KilometrajeNuevo int     `json:"kilometraje_nuevo" validate:"min=0"`
	Observaciones    *string `json:"observaciones"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type HistorialKilometrajeResponse struct {
	ID                  string  `json:"id"`
	VehiculoID          string  `json:"vehiculo_id"`
	KilometrajeAnterior int     `json:"kilometraje_anterior"`
	KilometrajeNuevo    int     `json:"kilometraje_nuevo"`
	Motivo              string  `json:"motivo"`
	Observaciones       *string `json:"observaciones"`
	FechaActualizacion  string  `json:"fecha_actualizacion"`
}
