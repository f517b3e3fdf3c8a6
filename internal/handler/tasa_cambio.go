package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/service"
)

type TasaCambioHandler struct{ svc service.TasaCambioService }

func NewTasaCambioHandler(svc service.TasaCambioService) *TasaCambioHandler {
	return &TasaCambioHandler{svc: svc}
}

// Crear godoc
// @Summary      Registrar tasa de cambio
// @Description  Registra una nueva tasa Bs/USD como activa y desactiva la anterior en la misma transacción.
// @Tags         tasa-cambio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearTasaCambioRequest true "Tasa Bs/USD"
// @Success      201  {object} dto.TasaCambioResponse
// @Failure      400  {object} apierror.APIError
// @Router       /tasa-cambio [post]
func (h *TasaCambioHandler) Crear(c *gin.Context) {
	var req dto.CrearTasaCambioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req, usuarioActual(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actual godoc
// @Summary      Tasa de cambio activa
// @Description  Retorna la tasa activa; si el registro está vacío crea una tasa por defecto de 1.0.
// @Tags         tasa-cambio
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.TasaCambioResponse
// @Router       /tasa-cambio/actual [get]
func (h *TasaCambioHandler) Actual(c *gin.Context) {
	resp, err := h.svc.Actual(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Historial godoc
// @Summary      Historial de tasas de cambio
// @Tags         tasa-cambio
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.TasaCambioResponse
// @Router       /tasa-cambio/historial [get]
func (h *TasaCambioHandler) Historial(c *gin.Context) {
	resp, err := h.svc.Historial(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
