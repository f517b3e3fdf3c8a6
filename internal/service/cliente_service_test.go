package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiendaCompu/Trieste-IA/internal/apierror"
	"github.com/TiendaCompu/Trieste-IA/internal/dto"
)

func TestClienteCrearNormaliza(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	empresa := "inversiones el valle"
	resp, err := svc.Crear(context.Background(), dto.CrearClienteRequest{
		Nombre:           "josé gutiérrez",
		TipoDocumento:    "CI",
		PrefijoDocumento: "V",
		NumeroDocumento:  "12345678",
		DireccionFiscal:  "av. bolívar, caracas",
		Empresa:          &empresa,
		Email:            "jose@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "JOSÉ GUTIÉRREZ", resp.Nombre)
	assert.Equal(t, "AV. BOLÍVAR, CARACAS", resp.DireccionFiscal)
	require.NotNil(t, resp.Empresa)
	assert.Equal(t, "INVERSIONES EL VALLE", *resp.Empresa)
	// Email keeps its original casing
	assert.Equal(t, "jose@example.com", resp.Email)
}

func TestClienteActualizarCamposPermitidos(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)

	creado, err := svc.Crear(context.Background(), dto.CrearClienteRequest{
		Nombre:           "ANA TORRES",
		TipoDocumento:    "RIF",
		PrefijoDocumento: "J",
		NumeroDocumento:  "405112233",
		DireccionFiscal:  "VALENCIA",
		Email:            "ana@example.com",
	})
	require.NoError(t, err)

	tel := "0414-5556677"
	resp, err := svc.Actualizar(context.Background(), uuid.MustParse(creado.ID), dto.ActualizarClienteRequest{
		Telefono: &tel,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Telefono)
	assert.Equal(t, tel, *resp.Telefono)
	// Identity fields survive untouched
	assert.Equal(t, "405112233", resp.NumeroDocumento)
}

func TestClienteObtenerInexistente(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	_, err := svc.ObtenerPorID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, apierror.ErrNotFound))
}
