package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/service"
)

type ExtraccionHandler struct{ svc service.ExtraccionService }

func NewExtraccionHandler(svc service.ExtraccionService) *ExtraccionHandler {
	return &ExtraccionHandler{svc: svc}
}

// ExtraerDatos godoc
// @Summary      Extraer datos de vehículo con IA
// @Description  Extrae matrícula, marca, modelo y datos del cliente desde texto dictado o una foto de la matrícula. Si la respuesta del modelo no es JSON válido retorna success=false con el texto crudo.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ExtraerDatosRequest true "Texto dictado o imagen base64"
// @Success      200  {object} dto.ExtraerDatosResponse
// @Failure      400  {object} apierror.APIError
// @Router       /ai/extraer-datos [post]
func (h *ExtraccionHandler) ExtraerDatos(c *gin.Context) {
	var req dto.ExtraerDatosRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ExtraerDatos(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
