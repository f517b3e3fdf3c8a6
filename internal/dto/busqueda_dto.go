package dto

// BusquedaResponse agrupa los resultados de la búsqueda generalizada: vehículos
// que coinciden por matrícula o por datos de su propietario (con el cliente
// dueño embebido) y clientes que coinciden por nombre o empresa.
type BusquedaResponse struct {
	Vehiculos []VehiculoResponse `json:"vehiculos"`
	Clientes  []ClienteResponse  `json:"clientes"`
}
