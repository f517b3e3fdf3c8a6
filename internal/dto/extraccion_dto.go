package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ExtraerDatosRequest admite texto dictado por recepción o una foto de la
// matrícula en base64. Al menos uno de los dos es obligatorio.
type ExtraerDatosRequest struct {
	TextoDictado *string `json:"texto_dictado"`
	ImagenBase64 *string `json:"imagen_base64"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// DatosExtraidos son los campos que el modelo logra identificar. Todo es
// opcional: el modelo devuelve null en lo que no encuentra.
type DatosExtraidos struct {
	Matricula       *string `json:"matricula"`
	Marca           *string `json:"marca"`
	Modelo          *string `json:"modelo"`
	Anio            *int    `json:"año"`
	Color           *string `json:"color"`
	Kilometraje     *int    `json:"kilometraje"`
	ClienteNombre   *string `json:"cliente_nombre"`
	ClienteTelefono *string `json:"cliente_telefono"`
	ClienteEmpresa  *string `json:"cliente_empresa"`
	Observaciones   *string `json:"observaciones"`
}

type ExtraerDatosResponse struct {
	Success      bool            `json:"success"`
	Datos        *DatosExtraidos `json:"datos,omitempty"`
	RawResponse  *string         `json:"raw_response,omitempty"`
	Error        *string         `json:"error,omitempty"`
}
