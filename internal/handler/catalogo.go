package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/service"
)

type CatalogoHandler struct{ svc service.CatalogoService }

func NewCatalogoHandler(svc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

// Crear godoc
// @Summary      Agregar servicio o repuesto al catálogo
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearServicioRepuestoRequest true "Item del catálogo"
// @Success      201  {object} dto.ServicioRepuestoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /servicios-repuestos [post]
func (h *CatalogoHandler) Crear(c *gin.Context) {
	var req dto.CrearServicioRepuestoRequest
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
// @Summary      Listar catálogo completo
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ServicioRepuestoResponse
// @Router       /servicios-repuestos [get]
func (h *CatalogoHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPorTipo godoc
// @Summary      Listar catálogo por tipo
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Param        tipo path string true "servicio | repuesto"
// @Success      200 {array} dto.ServicioRepuestoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /servicios-repuestos/tipo/{tipo} [get]
func (h *CatalogoHandler) ListarPorTipo(c *gin.Context) {
	resp, err := h.svc.ListarPorTipo(c.Request.Context(), c.Param("tipo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar item del catálogo
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del item"
// @Param        body body dto.ActualizarServicioRepuestoRequest true "Campos a modificar"
// @Success      200  {object} dto.ServicioRepuestoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /servicios-repuestos/{id} [put]
func (h *CatalogoHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarServicioRepuestoRequest
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
// @Summary      Eliminar item del catálogo
// @Description  Rechaza la eliminación si el item aparece en órdenes de trabajo activas.
// @Tags         catalogo
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del item"
// @Success      200 {object} dto.EliminarItemResponse
// @Failure      400 {object} apierror.APIError
// @Router       /servicios-repuestos/{id} [delete]
func (h *CatalogoHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
