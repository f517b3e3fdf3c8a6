package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TiendaCompu/Trieste-IA/internal/service"
)

type BuscarHandler struct{ svc service.BusquedaService }

func NewBuscarHandler(svc service.BusquedaService) *BuscarHandler {
	return &BuscarHandler{svc: svc}
}

// Buscar godoc
// @Summary      Búsqueda general
// @Description  Busca por matrícula, nombre de cliente o empresa. Cada vehículo retorna con su dueño embebido; máximo 10 resultados por colección.
// @Tags         buscar
// @Produce      json
// @Security     BearerAuth
// @Param        q query string true "Texto a buscar (mínimo 2 caracteres)"
// @Success      200 {object} dto.BusquedaResponse
// @Router       /buscar [get]
func (h *BuscarHandler) Buscar(c *gin.Context) {
	resp, err := h.svc.Buscar(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
