package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiendaCompu/Trieste-IA/internal/apierror"
	"github.com/TiendaCompu/Trieste-IA/internal/config"
	"github.com/TiendaCompu/Trieste-IA/internal/dto"
)

func setupAuthService(t *testing.T) (AuthService, *stubUsuarioRepo) {
	t.Helper()
	repo := newStubUsuarioRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 8,
		JWTRefreshHours:    168,
	}
	svc := NewAuthService(repo, cfg)

	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "maria",
		Nombre:   "María Fernández",
		Password: "taller2026",
		Rol:      "supervisor",
	})
	require.NoError(t, err)
	return svc, repo
}

func TestAuthLogin(t *testing.T) {
	svc, _ := setupAuthService(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "taller2026"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "supervisor", resp.User.Rol)

	// Claims carry identity and role for the middleware
	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "maria", claims["username"])
	assert.Equal(t, "supervisor", claims["rol"])
}

func TestAuthLoginCredencialesInvalidas(t *testing.T) {
	svc, _ := setupAuthService(t)

	// Wrong password and unknown user produce the same opaque error
	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "otra"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apierror.ErrValidation))
	assert.Contains(t, err.Error(), "credenciales invalidas")

	_, err2 := svc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "taller2026"})
	require.Error(t, err2)
	assert.Equal(t, err.Error(), err2.Error())
}

func TestAuthLoginUsuarioInactivo(t *testing.T) {
	svc, repo := setupAuthService(t)

	var id uuid.UUID
	for uid := range repo.usuarios {
		id = uid
	}
	require.NoError(t, svc.DesactivarUsuario(context.Background(), id))

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "taller2026"})
	assert.True(t, errors.Is(err, apierror.ErrValidation))

	require.NoError(t, svc.ReactivarUsuario(context.Background(), id))
	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "taller2026"})
	assert.NoError(t, err)
}

func TestAuthRefresh(t *testing.T) {
	svc, _ := setupAuthService(t)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "taller2026"})
	require.NoError(t, err)

	renovado, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renovado.AccessToken)
	assert.Equal(t, "maria", renovado.User.Username)

	_, err = svc.Refresh(context.Background(), "no-es-un-token")
	assert.True(t, errors.Is(err, apierror.ErrValidation))
}

func TestAuthListarUsuarios(t *testing.T) {
	svc, repo := setupAuthService(t)

	otro, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "jose",
		Nombre:   "José Rivas",
		Password: "1234",
		Rol:      "recepcion",
	})
	require.NoError(t, err)
	require.NoError(t, svc.DesactivarUsuario(context.Background(), uuid.MustParse(otro.ID)))

	activos, err := svc.ListarUsuarios(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, activos, 1)

	todos, err := svc.ListarUsuarios(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
	assert.Len(t, repo.usuarios, 2)
}

func TestAuthActualizarUsuarioRehashPassword(t *testing.T) {
	svc, repo := setupAuthService(t)

	var id uuid.UUID
	for uid := range repo.usuarios {
		id = uid
	}
	hashAnterior := repo.usuarios[id].PasswordHash

	_, err := svc.ActualizarUsuario(context.Background(), id, dto.ActualizarUsuarioRequest{
		Password: "nueva-clave",
		Rol:      "administrador",
	})
	require.NoError(t, err)
	assert.NotEqual(t, hashAnterior, repo.usuarios[id].PasswordHash)
	assert.Equal(t, "administrador", repo.usuarios[id].Rol)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "nueva-clave"})
	assert.NoError(t, err)
}
