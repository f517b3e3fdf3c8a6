package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearTasaCambioRequest struct {
	TasaBsUSD     decimal.Decimal `json:"tasa_bs_usd" validate:"required"`
	Observaciones *string         `json:"observaciones"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TasaCambioResponse struct {
	ID            string          `json:"id"`
	TasaBsUSD     decimal.Decimal `json:"tasa_bs_usd"`
	Usuario       *string         `json:"usuario_actualizacion"`
	Observaciones *string         `json:"observaciones"`
	Activa        bool            `json:"activa"`
	FechaActualizacion string     `json:"fecha_actualizacion"`
}
