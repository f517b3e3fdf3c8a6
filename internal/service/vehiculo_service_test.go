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
	"github.com/TiendaCompu/Trieste-IA/internal/model"
)

func ptrStr(s string) *string { return &s }
func ptrInt(n int) *int       { return &n }

func setupVehiculoService() (VehiculoService, *stubVehiculoRepo, *stubClienteRepo, *stubOrdenRepo, uuid.UUID) {
	clienteRepo := newStubClienteRepo()
	cliente := &model.Cliente{Nombre: "CARLOS PEREZ", Email: "carlos@example.com"}
	_ = clienteRepo.Create(context.Background(), cliente)

	vehiculoRepo := newStubVehiculoRepo()
	ordenRepo := newStubOrdenRepo()
	svc := NewVehiculoService(vehiculoRepo, clienteRepo, ordenRepo)
	return svc, vehiculoRepo, clienteRepo, ordenRepo, cliente.ID
}

func TestVehiculoCrearNormalizaMatricula(t *testing.T) {
	svc, _, _, _, clienteID := setupVehiculoService()

	resp, err := svc.Crear(context.Background(), dto.CrearVehiculoRequest{
		Matricula: "ab123cd",
		Marca:     "toyota",
		Modelo:    "corolla",
		ClienteID: clienteID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "AB123CD", resp.Matricula)
	assert.Equal(t, "TOYOTA", resp.Marca)
	assert.Equal(t, "COROLLA", resp.Modelo)
}

func TestVehiculoCrearMatriculaInvalida(t *testing.T) {
	svc, _, _, _, clienteID := setupVehiculoService()

	casos := []string{"AB1", "AB-123CD", "ABCD12345", "AB 12"}
	for _, matricula := range casos {
		_, err := svc.Crear(context.Background(), dto.CrearVehiculoRequest{
			Matricula: matricula,
			Marca:     "FORD",
			Modelo:    "FIESTA",
			ClienteID: clienteID.String(),
		})
		assert.True(t, errors.Is(err, apierror.ErrValidation), "matricula %q debería ser inválida", matricula)
	}
}

func TestVehiculoCrearMatriculaDuplicada(t *testing.T) {
	svc, _, _, _, clienteID := setupVehiculoService()

	req := dto.CrearVehiculoRequest{
		Matricula: "XYZ789",
		Marca:     "CHEVROLET",
		Modelo:    "AVEO",
		ClienteID: clienteID.String(),
	}
	_, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	// Same plate in lowercase still collides after normalization
	req.Matricula = "xyz789"
	_, err = svc.Crear(context.Background(), req)
	assert.True(t, errors.Is(err, apierror.ErrConflict))
}

func TestVehiculoCrearClienteInexistente(t *testing.T) {
	svc, _, _, _, _ := setupVehiculoService()

	_, err := svc.Crear(context.Background(), dto.CrearVehiculoRequest{
		Matricula: "AAA1234",
		Marca:     "KIA",
		Modelo:    "RIO",
		ClienteID: uuid.NewString(),
	})
	assert.True(t, errors.Is(err, apierror.ErrNotFound))
}

func TestVehiculoVerificarMatricula(t *testing.T) {
	svc, _, _, _, clienteID := setupVehiculoService()

	_, err := svc.Crear(context.Background(), dto.CrearVehiculoRequest{
		Matricula: "DEF456",
		Marca:     "HONDA",
		Modelo:    "CIVIC",
		ClienteID: clienteID.String(),
	})
	require.NoError(t, err)

	resp, err := svc.VerificarMatricula(context.Background(), "def456")
	require.NoError(t, err)
	assert.True(t, resp.Existe)
	assert.Equal(t, "DEF456", resp.Matricula)

	resp, err = svc.VerificarMatricula(context.Background(), "NOEXISTE")
	require.NoError(t, err)
	assert.False(t, resp.Existe)
}

func TestVehiculoCambiarMatriculaAuditado(t *testing.T) {
	svc, vehiculoRepo, _, _, clienteID := setupVehiculoService()

	creado, err := svc.Crear(context.Background(), dto.CrearVehiculoRequest{
		Matricula: "GHI789",
		Marca:     "NISSAN",
		Modelo:    "SENTRA",
		ClienteID: clienteID.String(),
	})
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	resp, err := svc.CambiarMatricula(context.Background(), id, dto.CambioMatriculaRequest{
		MatriculaNueva: "jkl012",
		Motivo:         "Cambio de placa por robo",
	}, "maria")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "GHI789", resp.MatriculaAnterior)
	assert.Equal(t, "JKL012", resp.MatriculaNueva)

	// Plate updated and the swap recorded
	v, err := vehiculoRepo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "JKL012", v.Matricula)

	require.Len(t, vehiculoRepo.cambios, 1)
	assert.Equal(t, "GHI789", vehiculoRepo.cambios[0].MatriculaAnterior)
	assert.Equal(t, "JKL012", vehiculoRepo.cambios[0].MatriculaNueva)
	assert.Equal(t, "maria", vehiculoRepo.cambios[0].Usuario)

	historial, err := svc.HistorialCambiosMatricula(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, historial, 1)
	assert.Equal(t, "Cambio de placa por robo", historial[0].Motivo)
}

func TestVehiculoCambiarMatriculaOcupada(t *testing.T) {
	svc, _, _, _, clienteID := setupVehiculoService()

	_, err := svc.Crear(context.Background(), dto.CrearVehiculoRequest{
		Matricula: "AAA111",
		Marca:     "FIAT",
		Modelo:    "UNO",
		ClienteID: clienteID.String(),
	})
	require.NoError(t, err)

	otro, err := svc.Crear(context.Background(), dto.CrearVehiculoRequest{
		Matricula: "BBB222",
		Marca:     "FIAT",
		Modelo:    "PALIO",
		ClienteID: clienteID.String(),
	})
	require.NoError(t, err)

	_, err = svc.CambiarMatricula(context.Background(), uuid.MustParse(otro.ID), dto.CambioMatriculaRequest{
		MatriculaNueva: "AAA111",
	}, "maria")
	assert.True(t, errors.Is(err, apierror.ErrConflict))
}

func TestVehiculoEliminarBloqueadoPorOrdenesActivas(t *testing.T) {
	svc, _, _, ordenRepo, clienteID := setupVehiculoService()

	creado, err := svc.Crear(context.Background(), dto.CrearVehiculoRequest{
		Matricula: "CCC333",
		Marca:     "JEEP",
		Modelo:    "CHEROKEE",
		ClienteID: clienteID.String(),
	})
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	ordenRepo.activasPorVehiculo[id] = 2
	_, err = svc.Eliminar(context.Background(), id, "maria")
	assert.True(t, errors.Is(err, apierror.ErrValidation))
}

func TestVehiculoEliminarConAuditoria(t *testing.T) {
	svc, vehiculoRepo, _, ordenRepo, clienteID := setupVehiculoService()

	creado, err := svc.Crear(context.Background(), dto.CrearVehiculoRequest{
		Matricula: "DDD444",
		Marca:     "MAZDA",
		Modelo:    "BT50",
		Anio:      ptrInt(2020),
		ClienteID: clienteID.String(),
	})
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	// A delivered order keeps the plate after the vehicle is gone
	orden := &model.OrdenTrabajo{VehiculoID: id, Estado: model.EstadoOrdenEntregado}
	require.NoError(t, ordenRepo.Create(context.Background(), orden))

	resp, err := svc.Eliminar(context.Background(), id, "maria")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "DDD444", resp.Matricula)

	_, err = vehiculoRepo.FindByID(context.Background(), id)
	assert.Error(t, err)

	require.Len(t, vehiculoRepo.eliminados, 1)
	assert.Equal(t, "DDD444", vehiculoRepo.eliminados[0].Matricula)
	assert.Equal(t, "maria", vehiculoRepo.eliminados[0].Usuario)

	guardada, err := ordenRepo.FindByID(context.Background(), orden.ID)
	require.NoError(t, err)
	assert.True(t, guardada.VehiculoEliminado)
	require.NotNil(t, guardada.MatriculaOriginal)
	assert.Equal(t, "DDD444", *guardada.MatriculaOriginal)
}

func TestVehiculoActualizarNoTocaMatricula(t *testing.T) {
	svc, _, _, _, clienteID := setupVehiculoService()

	creado, err := svc.Crear(context.Background(), dto.CrearVehiculoRequest{
		Matricula: "EEE555",
		Marca:     "RENAULT",
		Modelo:    "LOGAN",
		ClienteID: clienteID.String(),
	})
	require.NoError(t, err)

	resp, err := svc.Actualizar(context.Background(), uuid.MustParse(creado.ID), dto.ActualizarVehiculoRequest{
		Color: ptrStr("rojo"),
	})
	require.NoError(t, err)
	assert.Equal(t, "EEE555", resp.Matricula)
	require.NotNil(t, resp.Color)
	assert.Equal(t, "ROJO", *resp.Color)
}
