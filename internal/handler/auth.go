package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary      Iniciar sesión
// @Description  Autentica un usuario y retorna tokens JWT de acceso y refresco.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credenciales"
// @Success      200  {object} dto.LoginResponse
// @Failure      400  {object} apierror.APIError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary      Renovar tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.RefreshRequest true "Refresh token"
// @Success      200  {object} dto.LoginResponse
// @Failure      400  {object} apierror.APIError
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CrearUsuario godoc
// @Summary      Crear usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearUsuarioRequest true "Datos del usuario"
// @Success      201  {object} dto.UsuarioResponse
// @Failure      400  {object} apierror.APIError
// @Router       /usuarios [post]
func (h *AuthHandler) CrearUsuario(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearUsuario(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarUsuarios godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        incluir_inactivos query bool false "Incluir usuarios desactivados"
// @Success      200 {array} dto.UsuarioResponse
// @Router       /usuarios [get]
func (h *AuthHandler) ListarUsuarios(c *gin.Context) {
	incluirInactivos := c.Query("incluir_inactivos") == "true"
	resp, err := h.svc.ListarUsuarios(c.Request.Context(), incluirInactivos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarUsuario godoc
// @Summary      Actualizar usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID del usuario"
// @Param        body body dto.ActualizarUsuarioRequest true "Campos a modificar"
// @Success      200  {object} dto.UsuarioResponse
// @Failure      404  {object} apierror.APIError
// @Router       /usuarios/{id} [put]
func (h *AuthHandler) ActualizarUsuario(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarUsuario(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DesactivarUsuario godoc
// @Summary      Desactivar usuario
// @Tags         usuarios
// @Security     BearerAuth
// @Param        id path string true "UUID del usuario"
// @Success      204
// @Router       /usuarios/{id} [delete]
func (h *AuthHandler) DesactivarUsuario(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DesactivarUsuario(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReactivarUsuario godoc
// @Summary      Reactivar usuario
// @Tags         usuarios
// @Security     BearerAuth
// @Param        id path string true "UUID del usuario"
// @Success      204
// @Router       /usuarios/{id}/reactivar [put]
func (h *AuthHandler) ReactivarUsuario(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.ReactivarUsuario(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
