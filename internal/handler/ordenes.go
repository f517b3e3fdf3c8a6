package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/service"
)

type OrdenesHandler struct{ svc service.OrdenService }

func NewOrdenesHandler(svc service.OrdenService) *OrdenesHandler {
	return &OrdenesHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear orden de trabajo
// @Description  Abre una orden en estado "recibido" con numeración correlativa anual.
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearOrdenRequest true "Datos de la orden"
// @Success      201  {object} dto.OrdenResponse
// @Failure      400  {object} apierror.APIError
// @Router       /ordenes [post]
func (h *OrdenesHandler) Crear(c *gin.Context) {
	var req dto.CrearOrdenRequest
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
// @Summary      Listar órdenes de trabajo
// @Tags         ordenes
// @Produce      json
// @Security     BearerAuth
// @Param        estado query string false "Filtrar por estado exacto"
// @Param        filtro query string false "activas | historial"
// @Success      200 {array} dto.OrdenResponse
// @Router       /ordenes [get]
func (h *OrdenesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), c.Query("estado"), c.Query("filtro"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Obtener orden por ID
// @Tags         ordenes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la orden"
// @Success      200 {object} dto.OrdenResponse
// @Failure      404 {object} apierror.APIError
// @Router       /ordenes/{id} [get]
func (h *OrdenesHandler) Obtener(c *gin.Context) {
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
// @Summary      Actualizar orden de trabajo
// @Description  Actualiza diagnóstico, estado, asignación de mecánico e items con precios congelados al momento de agregarlos.
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID de la orden"
// @Param        body body dto.ActualizarOrdenRequest true "Campos a modificar"
// @Success      200  {object} dto.OrdenResponse
// @Failure      400  {object} apierror.APIError
// @Router       /ordenes/{id} [put]
func (h *OrdenesHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarOrdenRequest
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

// HistorialVehiculo godoc
// @Summary      Historial de órdenes de un vehículo
// @Tags         ordenes
// @Produce      json
// @Security     BearerAuth
// @Param        vehiculo_id path string true "UUID del vehículo"
// @Success      200 {array} dto.OrdenResponse
// @Router       /ordenes/vehiculo/{vehiculo_id} [get]
func (h *OrdenesHandler) HistorialVehiculo(c *gin.Context) {
	id, ok := pathID(c, "vehiculo_id")
	if !ok {
		return
	}
	resp, err := h.svc.HistorialVehiculo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Estadisticas godoc
// @Summary      Estadísticas del dashboard
// @Description  Totales de órdenes, vehículos y clientes, más el desglose de órdenes por estado.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.EstadisticasResponse
// @Router       /dashboard/estadisticas [get]
func (h *OrdenesHandler) Estadisticas(c *gin.Context) {
	resp, err := h.svc.Estadisticas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
