package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiendaCompu/Trieste-IA/internal/apierror"
	"github.com/TiendaCompu/Trieste-IA/internal/dto"
)

func setupCatalogoService() (CatalogoService, *stubOrdenRepo) {
	ordenRepo := newStubOrdenRepo()
	return NewCatalogoService(newStubCatalogoRepo(), ordenRepo), ordenRepo
}

func TestCatalogoCrearYListarPorTipo(t *testing.T) {
	svc, _ := setupCatalogoService()
	ctx := context.Background()

	_, err := svc.Crear(ctx, dto.CrearServicioRepuestoRequest{
		Tipo: "servicio", Nombre: "alineacion y balanceo", Precio: decimal.NewFromFloat(30),
	})
	require.NoError(t, err)
	_, err = svc.Crear(ctx, dto.CrearServicioRepuestoRequest{
		Tipo: "repuesto", Nombre: "bujia", Precio: decimal.NewFromFloat(8),
	})
	require.NoError(t, err)

	servicios, err := svc.ListarPorTipo(ctx, "servicio")
	require.NoError(t, err)
	require.Len(t, servicios, 1)
	assert.Equal(t, "ALINEACION Y BALANCEO", servicios[0].Nombre)

	_, err = svc.ListarPorTipo(ctx, "herramienta")
	assert.True(t, errors.Is(err, apierror.ErrValidation))
}

func TestCatalogoEliminarBloqueadoEnUso(t *testing.T) {
	svc, ordenRepo := setupCatalogoService()
	ctx := context.Background()

	creado, err := svc.Crear(ctx, dto.CrearServicioRepuestoRequest{
		Tipo: "repuesto", Nombre: "CORREA", Precio: decimal.NewFromFloat(15),
	})
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	ordenRepo.activasConItem[id] = 1
	_, err = svc.Eliminar(ctx, id)
	assert.True(t, errors.Is(err, apierror.ErrValidation))

	ordenRepo.activasConItem[id] = 0
	resp, err := svc.Eliminar(ctx, id)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "CORREA", resp.ItemEliminado)
}

func TestCatalogoActualizarPrecio(t *testing.T) {
	svc, _ := setupCatalogoService()
	ctx := context.Background()

	creado, err := svc.Crear(ctx, dto.CrearServicioRepuestoRequest{
		Tipo: "servicio", Nombre: "CAMBIO DE ACEITE", Precio: decimal.NewFromFloat(25),
	})
	require.NoError(t, err)

	nuevo := decimal.NewFromFloat(28)
	resp, err := svc.Actualizar(ctx, uuid.MustParse(creado.ID), dto.ActualizarServicioRepuestoRequest{
		Precio: &nuevo,
	})
	require.NoError(t, err)
	assert.True(t, resp.Precio.Equal(nuevo))
	assert.Equal(t, "CAMBIO DE ACEITE", resp.Nombre)
}
