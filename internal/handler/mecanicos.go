package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/service"
)

type MecanicosHandler struct{ svc service.MecanicoService }

func NewMecanicosHandler(svc service.MecanicoService) *MecanicosHandler {
	return &MecanicosHandler{svc: svc}
}

// Crear godoc
// @Summary      Registrar mecánico
// @Tags         mecanicos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearMecanicoRequest true "Datos del mecánico"
// @Success      201  {object} dto.MecanicoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /mecanicos [post]
func (h *MecanicosHandler) Crear(c *gin.Context) {
	var req dto.CrearMecanicoRequest
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
// @Summary      Listar mecánicos
// @Tags         mecanicos
// @Produce      json
// @Security     BearerAuth
// @Param        activos query bool false "Solo mecánicos activos"
// @Success      200 {array} dto.MecanicoResponse
// @Router       /mecanicos [get]
func (h *MecanicosHandler) Listar(c *gin.Context) {
	var (
		resp []dto.MecanicoResponse
		err  error
	)
	if c.Query("activos") == "true" {
		resp, err = h.svc.ListarActivos(c.Request.Context())
	} else {
		resp, err = h.svc.Listar(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar mecánico
// @Tags         mecanicos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del mecánico"
// @Param        body body dto.ActualizarMecanicoRequest true "Campos a modificar"
// @Success      200  {object} dto.MecanicoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /mecanicos/{id} [put]
func (h *MecanicosHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarMecanicoRequest
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

// Eliminar godoc
// @Summary      Eliminar mecánico
// @Description  Rechaza la eliminación si el mecánico tiene órdenes activas asignadas.
// @Tags         mecanicos
// @Security     BearerAuth
// @Param        id path string true "UUID del mecánico"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /mecanicos/{id} [delete]
func (h *MecanicosHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
