package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/service"
)

type FacturasHandler struct{ svc service.FacturaService }

func NewFacturasHandler(svc service.FacturaService) *FacturasHandler {
	return &FacturasHandler{svc: svc}
}

// Crear godoc
// @Summary      Emitir factura
// @Description  Crea la factura desde un presupuesto aprobado: congela la tasa de cambio, copia los montos USD y deriva los montos en bolívares. El PDF se genera de forma asíncrona.
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearFacturaRequest true "Presupuesto a facturar"
// @Success      201  {object} dto.FacturaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /facturas [post]
func (h *FacturasHandler) Crear(c *gin.Context) {
	var req dto.CrearFacturaRequest
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
// @Summary      Listar facturas
// @Tags         facturas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.FacturaResponse
// @Router       /facturas [get]
func (h *FacturasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Obtener factura por ID
// @Tags         facturas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la factura"
// @Success      200 {object} dto.FacturaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /facturas/{id} [get]
func (h *FacturasHandler) Obtener(c *gin.Context) {
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

// RegistrarPago godoc
// @Summary      Registrar pago
// @Description  Aplica un pago en bolívares o dólares. Los pagos en dólares activan el IGTF 3% de forma permanente; los montos se convierten con la tasa vigente y el saldo nunca baja de cero.
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID de la factura"
// @Param        body body dto.RegistrarPagoRequest true "Detalle del pago"
// @Success      200  {object} dto.RegistrarPagoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /facturas/{id}/pagos [post]
func (h *FacturasHandler) RegistrarPago(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.RegistrarPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarPago(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
