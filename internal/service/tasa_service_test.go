package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiendaCompu/Trieste-IA/internal/dto"
)

func TestTasaCrearDesactivaAnterior(t *testing.T) {
	repo := &stubTasaRepo{}
	svc := NewTasaCambioService(repo, nil)

	_, err := svc.Crear(context.Background(), dto.CrearTasaCambioRequest{
		TasaBsUSD: decimal.NewFromFloat(36.50),
	}, "maria")
	require.NoError(t, err)

	resp, err := svc.Crear(context.Background(), dto.CrearTasaCambioRequest{
		TasaBsUSD: decimal.NewFromFloat(37.20),
	}, "maria")
	require.NoError(t, err)
	assert.True(t, resp.Activa)
	require.NotNil(t, resp.Usuario)
	assert.Equal(t, "maria", *resp.Usuario)

	// The previous rate is deactivated; the active one is always the latest
	activa, err := svc.Actual(context.Background())
	require.NoError(t, err)
	assert.True(t, activa.TasaBsUSD.Equal(decimal.NewFromFloat(37.20)))

	historial, err := svc.Historial(context.Background())
	require.NoError(t, err)
	require.Len(t, historial, 2)
	assert.True(t, historial[0].Activa)
	assert.False(t, historial[1].Activa)
}

func TestTasaActualSinRegistroSiembraDefault(t *testing.T) {
	repo := &stubTasaRepo{}
	svc := NewTasaCambioService(repo, nil)

	resp, err := svc.Actual(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.TasaBsUSD.Equal(decimal.NewFromInt(1)))
	assert.True(t, resp.Activa)
	require.NotNil(t, resp.Observaciones)
	assert.Equal(t, "Tasa por defecto", *resp.Observaciones)

	// The default is persisted, not regenerated on every read
	require.Len(t, repo.tasas, 1)
	_, err = svc.Actual(context.Background())
	require.NoError(t, err)
	assert.Len(t, repo.tasas, 1)
}

func TestTasaCrearSinUsuario(t *testing.T) {
	repo := &stubTasaRepo{}
	svc := NewTasaCambioService(repo, nil)

	resp, err := svc.Crear(context.Background(), dto.CrearTasaCambioRequest{
		TasaBsUSD: decimal.NewFromFloat(40),
	}, "")
	require.NoError(t, err)
	assert.Nil(t, resp.Usuario)
}
