package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/service"
)

type PresupuestosHandler struct{ svc service.PresupuestoService }

func NewPresupuestosHandler(svc service.PresupuestoService) *PresupuestosHandler {
	return &PresupuestosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear presupuesto
// @Description  Calcula subtotal, IVA 16% y total en USD, y asigna número correlativo P-AAAA-NNN.
// @Tags         presupuestos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearPresupuestoRequest true "Items del presupuesto"
// @Success      201  {object} dto.PresupuestoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /presupuestos [post]
func (h *PresupuestosHandler) Crear(c *gin.Context) {
	var req dto.CrearPresupuestoRequest
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
// @Summary      Listar presupuestos
// @Tags         presupuestos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.PresupuestoResponse
// @Router       /presupuestos [get]
func (h *PresupuestosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Obtener presupuesto por ID
// @Tags         presupuestos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del presupuesto"
// @Success      200 {object} dto.PresupuestoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /presupuestos/{id} [get]
func (h *PresupuestosHandler) Obtener(c *gin.Context) {
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

// Aprobar godoc
// @Summary      Aprobar presupuesto
// @Description  Marca el presupuesto como aprobado: queda habilitado para facturación.
// @Tags         presupuestos
// @Security     BearerAuth
// @Param        id path string true "UUID del presupuesto"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /presupuestos/{id}/aprobar [put]
func (h *PresupuestosHandler) Aprobar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Aprobar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Rechazar godoc
// @Summary      Rechazar presupuesto
// @Tags         presupuestos
// @Security     BearerAuth
// @Param        id path string true "UUID del presupuesto"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /presupuestos/{id}/rechazar [put]
func (h *PresupuestosHandler) Rechazar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Rechazar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
