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
	"github.com/TiendaCompu/Trieste-IA/internal/model"
)

type ordenFixture struct {
	svc        OrdenService
	ordenes    *stubOrdenRepo
	catalogo   *stubCatalogoRepo
	mecanicoID uuid.UUID
	vehiculoID uuid.UUID
	clienteID  uuid.UUID
}

func newOrdenFixture(t *testing.T) *ordenFixture {
	t.Helper()
	ctx := context.Background()

	clienteRepo := newStubClienteRepo()
	cliente := &model.Cliente{Nombre: "ROSA DIAZ", Email: "rosa@example.com"}
	require.NoError(t, clienteRepo.Create(ctx, cliente))

	vehiculoRepo := newStubVehiculoRepo()
	vehiculo := &model.Vehiculo{Matricula: "AB123CD", Marca: "CHEVROLET", Modelo: "SPARK", ClienteID: cliente.ID}
	require.NoError(t, vehiculoRepo.Create(ctx, vehiculo))

	mecanicoRepo := newStubMecanicoRepo()
	mecanico := &model.Mecanico{Nombre: "PEDRO MATA", Especialidad: "Electricidad", Estado: "disponible", Activo: true}
	require.NoError(t, mecanicoRepo.Create(ctx, mecanico))

	catalogoRepo := newStubCatalogoRepo()
	ordenRepo := newStubOrdenRepo()
	svc := NewOrdenService(ordenRepo, vehiculoRepo, clienteRepo, mecanicoRepo, catalogoRepo)

	return &ordenFixture{
		svc:        svc,
		ordenes:    ordenRepo,
		catalogo:   catalogoRepo,
		mecanicoID: mecanico.ID,
		vehiculoID: vehiculo.ID,
		clienteID:  cliente.ID,
	}
}

func (fx *ordenFixture) crear(t *testing.T) *dto.OrdenResponse {
	t.Helper()
	resp, err := fx.svc.Crear(context.Background(), dto.CrearOrdenRequest{
		VehiculoID: fx.vehiculoID.String(),
		ClienteID:  fx.clienteID.String(),
	})
	require.NoError(t, err)
	return resp
}

func TestOrdenCrearEstadoInicial(t *testing.T) {
	fx := newOrdenFixture(t)

	resp := fx.crear(t)
	assert.Equal(t, "recibido", resp.Estado)
	assert.False(t, resp.AprobadoCliente)
	assert.NotEmpty(t, resp.FechaIngreso)
	assert.Nil(t, resp.MecanicoID)
}

func TestOrdenActualizarEstadoDesconocido(t *testing.T) {
	fx := newOrdenFixture(t)
	creada := fx.crear(t)

	estado := "en_lavado"
	_, err := fx.svc.Actualizar(context.Background(), uuid.MustParse(creada.ID), dto.ActualizarOrdenRequest{
		Estado: &estado,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apierror.ErrValidation))
	assert.Contains(t, err.Error(), "en_lavado")
}

func TestOrdenActualizarAsignaMecanico(t *testing.T) {
	fx := newOrdenFixture(t)
	creada := fx.crear(t)

	mid := fx.mecanicoID.String()
	estado := "diagnosticando"
	diag := "falla en el alternador"
	resp, err := fx.svc.Actualizar(context.Background(), uuid.MustParse(creada.ID), dto.ActualizarOrdenRequest{
		MecanicoID:  &mid,
		Estado:      &estado,
		Diagnostico: &diag,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.MecanicoID)
	assert.Equal(t, mid, *resp.MecanicoID)
	assert.Equal(t, "diagnosticando", resp.Estado)
	require.NotNil(t, resp.Diagnostico)
	assert.Equal(t, "FALLA EN EL ALTERNADOR", *resp.Diagnostico)
}

func TestOrdenActualizarMecanicoInexistente(t *testing.T) {
	fx := newOrdenFixture(t)
	creada := fx.crear(t)

	mid := uuid.NewString()
	_, err := fx.svc.Actualizar(context.Background(), uuid.MustParse(creada.ID), dto.ActualizarOrdenRequest{
		MecanicoID: &mid,
	})
	assert.True(t, errors.Is(err, apierror.ErrNotFound))
}

func TestOrdenItemsCongelanPrecio(t *testing.T) {
	fx := newOrdenFixture(t)
	creada := fx.crear(t)
	ctx := context.Background()

	item := &model.ServicioRepuesto{Tipo: "repuesto", Nombre: "ALTERNADOR", Precio: decimal.NewFromFloat(120)}
	require.NoError(t, fx.catalogo.Create(ctx, item))

	resp, err := fx.svc.Actualizar(ctx, uuid.MustParse(creada.ID), dto.ActualizarOrdenRequest{
		ServiciosRepuestos: []dto.OrdenItemInput{
			{ID: item.ID.String(), Cantidad: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.ServiciosRepuestos, 1)
	// Zero price in the request takes the catalog price as snapshot
	assert.True(t, resp.ServiciosRepuestos[0].Precio.Equal(decimal.NewFromFloat(120)))

	// A catalog price change must not touch the stored snapshot
	item.Precio = decimal.NewFromFloat(150)
	releida, err := fx.svc.ObtenerPorID(ctx, uuid.MustParse(creada.ID))
	require.NoError(t, err)
	assert.True(t, releida.ServiciosRepuestos[0].Precio.Equal(decimal.NewFromFloat(120)))
}

func TestOrdenListarPorFiltro(t *testing.T) {
	fx := newOrdenFixture(t)
	ctx := context.Background()

	primera := fx.crear(t)
	fx.crear(t)

	entregado := "entregado"
	_, err := fx.svc.Actualizar(ctx, uuid.MustParse(primera.ID), dto.ActualizarOrdenRequest{Estado: &entregado})
	require.NoError(t, err)

	activas, err := fx.svc.Listar(ctx, "", "activas")
	require.NoError(t, err)
	assert.Len(t, activas, 1)

	entregadas, err := fx.svc.Listar(ctx, "", "entregadas")
	require.NoError(t, err)
	assert.Len(t, entregadas, 1)

	_, err = fx.svc.Listar(ctx, "inexistente", "")
	assert.True(t, errors.Is(err, apierror.ErrValidation))
}

func TestOrdenTerminadoSigueActiva(t *testing.T) {
	fx := newOrdenFixture(t)
	ctx := context.Background()

	creada := fx.crear(t)
	terminado := "terminado"
	_, err := fx.svc.Actualizar(ctx, uuid.MustParse(creada.ID), dto.ActualizarOrdenRequest{Estado: &terminado})
	require.NoError(t, err)

	// terminado has not left the shop yet, so it still counts as active
	activas, err := fx.svc.Listar(ctx, "", "activas")
	require.NoError(t, err)
	assert.Len(t, activas, 1)
}

func TestOrdenEstadisticas(t *testing.T) {
	fx := newOrdenFixture(t)
	ctx := context.Background()

	primera := fx.crear(t)
	fx.crear(t)
	fx.crear(t)

	entregado := "entregado"
	_, err := fx.svc.Actualizar(ctx, uuid.MustParse(primera.ID), dto.ActualizarOrdenRequest{Estado: &entregado})
	require.NoError(t, err)

	stats, err := fx.svc.Estadisticas(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalOrdenes)
	assert.Equal(t, int64(2), stats.OrdenesActivas)
	assert.Equal(t, int64(1), stats.TotalVehiculos)
	assert.Equal(t, int64(1), stats.TotalClientes)
	assert.Equal(t, int64(1), stats.EstadosOrdenes["entregado"])
	assert.Equal(t, int64(2), stats.EstadosOrdenes["recibido"])
}
