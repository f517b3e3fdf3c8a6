package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearVehiculoRequest struct {
	Matricula       string           `json:"matricula"        validate:"required"`
	Marca           string           `json:"marca"            validate:"required"`
	Modelo          string           `json:"modelo"           validate:"required"`
	Anio            *int             `json:"año"`
	Color           *string          `json:"color"`
	Kilometraje     *int             `json:"kilometraje"      validate:"omitempty,min=0"`
	TipoCombustible *string          `json:"tipo_combustible"`
	SerialNIV       *string          `json:"serial_niv"`
	Tara            *decimal.Decimal `json:"tara"`
	FotoVehiculo    *string          `json:"foto_vehiculo"`
	FotoMatricula   *string          `json:"foto_matricula"`
	ClienteID       string           `json:"cliente_id"       validate:"required,uuid"`
}

// ActualizarVehiculoRequest updates everything except the plate, which has
// its own audited endpoint.
type ActualizarVehiculoRequest struct {
	Marca       *string `json:"marca"`
	Modelo      *string `json:"modelo"`
	Anio        *int    `json:"año"`
	Color       *string `json:"color"`
	Kilometraje *int    `json:"kilometraje" validate:"omitempty,min=0"`
	ClienteID   *string `json:"cliente_id"  validate:"omitempty,uuid"`
}

type CambioMatriculaRequest struct {
	MatriculaNueva string `json:"matricula_nueva" validate:"required"`
	Motivo         string `json:"motivo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VehiculoResponse struct {
	ID              string           `json:"id"`
	Matricula       string           `json:"matricula"`
	Marca           string           `json:"marca"`
	Modelo          string           `json:"modelo"`
	Anio            *int             `json:"año"`
	Color           *string          `json:"color"`
	Kilometraje     *int             `json:"kilometraje"`
	TipoCombustible *string          `json:"tipo_combustible"`
	SerialNIV       *string          `json:"serial_niv"`
	Tara            *decimal.Decimal `json:"tara"`
	FotoVehiculo    *string          `json:"foto_vehiculo,omitempty"`
	FotoMatricula   *string          `json:"foto_matricula,omitempty"`
	ClienteID       string           `json:"cliente_id"`
	CreatedAt       string           `json:"created_at"`

	// Cliente is populated only by the search endpoint
	Cliente *ClienteResponse `json:"cliente,omitempty"`
}

type VerificarMatriculaResponse struct {
	Existe    bool   `json:"existe"`
	Matricula string `json:"matricula"`
}

type CambioMatriculaResponse struct {
	Success           bool   `json:"success"`
	MatriculaAnterior string `json:"matricula_anterior"`
	MatriculaNueva    string `json:"matricula_nueva"`
}

type EliminarVehiculoResponse struct {
	Success   bool   `json:"success"`
	Matricula string `json:"matricula"`
}

type CambioMatriculaHistorialResponse struct {
	ID                string `json:"id"`
	VehiculoID        string `json:"vehiculo_id"`
	MatriculaAnterior string `json:"matricula_anterior"`
	MatriculaNueva    string `json:"matricula_nueva"`
	Motivo            string `json:"motivo"`
	Usuario           string `json:"usuario"`
	FechaCambio       string `json:"fecha_cambio"`
}
