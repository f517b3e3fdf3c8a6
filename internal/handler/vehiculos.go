package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/middleware"
	"github.com/TiendaCompu/Trieste-IA/internal/service"
)

type VehiculosHandler struct {
	svc            service.VehiculoService
	kilometrajeSvc service.KilometrajeService
}

func NewVehiculosHandler(svc service.VehiculoService, kilometrajeSvc service.KilometrajeService) *VehiculosHandler {
	return &VehiculosHandler{svc: svc, kilometrajeSvc: kilometrajeSvc}
}

// usuarioActual resolves the acting username from the JWT claims; audit trails
// always record who performed the operation.
func usuarioActual(c *gin.Context) string {
	if claims := middleware.GetClaims(c); claims != nil {
		return claims.Username
	}
	return "sistema"
}

// Crear godoc
// @Summary      Registrar vehículo
// @Description  Crea un vehículo asociado a un cliente. La matrícula se normaliza a mayúsculas y debe ser única (4-7 caracteres alfanuméricos).
// @Tags         vehiculos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearVehiculoRequest true "Datos del vehículo"
// @Success      201  {object} dto.VehiculoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /vehiculos [post]
func (h *VehiculosHandler) Crear(c *gin.Context) {
	var req dto.CrearVehiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar vehículos
// @Tags         vehiculos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.VehiculoResponse
// @Router       /vehiculos [get]
func (h *VehiculosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Obtener vehículo por ID
// @Tags         vehiculos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del vehículo"
// @Success      200 {object} dto.VehiculoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /vehiculos/{id} [get]
func (h *VehiculosHandler) Obtener(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar vehículo
// @Description  Actualiza datos generales. La matrícula NO se cambia por aquí: use el endpoint auditado de cambio de matrícula.
// @Tags         vehiculos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del vehículo"
// @Param        body body dto.ActualizarVehiculoRequest true "Campos a modificar"
// @Success      200  {object} dto.VehiculoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /vehiculos/{id} [put]
func (h *VehiculosHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarVehiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerificarMatricula godoc
// @Summary      Verificar existencia de matrícula
// @Tags         vehiculos
// @Produce      json
// @Security     BearerAuth
// @Param        matricula path string true "Matrícula a verificar"
// @Success      200 {object} dto.VerificarMatriculaResponse
// @Router       /vehiculos/verificar-matricula/{matricula} [get]
func (h *VehiculosHandler) VerificarMatricula(c *gin.Context) {
	resp, err := h.svc.VerificarMatricula(c.Request.Context(), c.Param("matricula"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CambiarMatricula godoc
// @Summary      Cambiar matrícula
// @Description  Cambia la matrícula validando formato y unicidad, y registra el cambio en la bitácora de auditoría.
// @Tags         vehiculos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del vehículo"
// @Param        body body dto.CambioMatriculaRequest true "Matrícula nueva y motivo"
// @Success      200  {object} dto.CambioMatriculaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /vehiculos/{id}/cambio-matricula [post]
func (h *VehiculosHandler) CambiarMatricula(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CambioMatriculaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CambiarMatricula(c.Request.Context(), id, req, usuarioActual(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HistorialMatriculas godoc
// @Summary      Historial de cambios de matrícula
// @Tags         vehiculos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del vehículo"
// @Success      200 {array} dto.CambioMatriculaHistorialResponse
// @Router       /vehiculos/{id}/historial-matriculas [get]
func (h *VehiculosHandler) HistorialMatriculas(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.HistorialCambiosMatricula(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar vehículo
// @Description  Rechaza la eliminación si el vehículo tiene órdenes activas. El registro se archiva antes de borrarse.
// @Tags         vehiculos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del vehículo"
// @Success      200 {object} dto.EliminarVehiculoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /vehiculos/{id} [delete]
func (h *VehiculosHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Eliminar(c.Request.Context(), id, usuarioActual(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarKilometraje godoc
// @Summary      Registrar kilometraje de entrada
// @Description  El kilometraje nunca decrece; cada actualización queda en el historial inmutable.
// @Tags         vehiculos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del vehículo"
// @Param        body body dto.ActualizarKilometrajeRequest true "Kilometraje nuevo"
// @Success      200  {object} dto.HistorialKilometrajeResponse
// @Failure      400  {object} apierror.APIError
// @Router       /vehiculos/{id}/actualizar-kilometraje [post]
func (h *VehiculosHandler) ActualizarKilometraje(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarKilometrajeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.kilometrajeSvc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HistorialKilometraje godoc
// @Summary      Historial de kilometraje
// @Tags         vehiculos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del vehículo"
// @Success      200 {array} dto.HistorialKilometrajeResponse
// @Router       /vehiculos/{id}/historial-kilometraje [get]
func (h *VehiculosHandler) HistorialKilometraje(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.kilometrajeSvc.Historial(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
