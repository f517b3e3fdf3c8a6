package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Nombre             string  `json:"nombre"             validate:"required,min=2"`
	TipoDocumento      string  `json:"tipo_documento"     validate:"required,oneof=CI RIF"`
	PrefijoDocumento   string  `json:"prefijo_documento"  validate:"required,oneof=V E J G"`
	NumeroDocumento    string  `json:"numero_documento"   validate:"required"`
	Telefono           *string `json:"telefono"`
	TelefonoSecundario *string `json:"telefono_secundario"`
	DireccionFiscal    string  `json:"direccion_fiscal"   validate:"required"`
	Empresa            *string `json:"empresa"`
	Email              string  `json:"email"              validate:"required,email"`
}

// ActualizarClienteRequest carries the restricted allow-list of mutable
// client fields; nil means "leave unchanged".
type ActualizarClienteRequest struct {
	Nombre   *string `json:"nombre"`
	Telefono *string `json:"telefono"`
	Empresa  *string `json:"empresa"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID                 string  `json:"id"`
	Nombre             string  `json:"nombre"`
	TipoDocumento      string  `json:"tipo_documento"`
	PrefijoDocumento   string  `json:"prefijo_documento"`
	NumeroDocumento    string  `json:"numero_documento"`
	Telefono           *string `json:"telefono"`
	TelefonoSecundario *string `json:"telefono_secundario"`
	DireccionFiscal    string  `json:"direccion_fiscal"`
	Empresa            *string `json:"empresa"`
	Email              string  `json:"email"`
	CreatedAt          string  `json:"created_at"`
}
