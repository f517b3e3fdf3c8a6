package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/service"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Crear godoc
// @Summary      Registrar cliente
// @Description  Crea un cliente con documento venezolano (CI/RIF). Los campos de texto se normalizan a mayúsculas.
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearClienteRequest true "Datos del cliente"
// @Success      201  {object} dto.ClienteResponse
// @Failure      400  {object} apierror.APIError
// @Router       /clientes [post]
func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
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
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ClienteResponse
// @Router       /clientes [get]
func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Obtener cliente por ID
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del cliente"
// @Success      200 {object} dto.ClienteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /clientes/{id} [get]
func (h *ClientesHandler) Obtener(c *gin.Context) {
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
// @Summary      Actualizar cliente
// @Description  Solo admite nombre, teléfono, empresa y email; el documento es inmutable.
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del cliente"
// @Param        body body dto.ActualizarClienteRequest true "Campos a modificar"
// @Success      200  {object} dto.ClienteResponse
// @Failure      404  {object} apierror.APIError
// @Router       /clientes/{id} [put]
func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarClienteRequest
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
