package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/model"
	"github.com/TiendaCompu/Trieste-IA/internal/repository"
)

const (
	tasaCacheKey = "tasa_cambio:activa"
	tasaCacheTTL = 5 * time.Minute
)

// TasaCambioService maintains the bolívar/dólar exchange rate register.
// Exactly one rate is active at any time; invoices freeze the rate that was
// active when they were created.
type TasaCambioService interface {
	Crear(ctx context.Context, req dto.CrearTasaCambioRequest, usuario string) (*dto.TasaCambioResponse, error)
	// Actual returns the active rate, creating a default 1.0 placeholder when
	// the register is empty so dependent flows never block on a missing rate.
	Actual(ctx context.Context) (*dto.TasaCambioResponse, error)
	ActivaModel(ctx context.Context) (*model.TasaCambio, error)
	Historial(ctx context.Context) ([]dto.TasaCambioResponse, error)
}

type tasaService struct {
	repo repository.TasaCambioRepository
	rdb  *redis.Client
}

func NewTasaCambioService(repo repository.TasaCambioRepository, rdb *redis.Client) TasaCambioService {
	return &tasaService{repo: repo, rdb: rdb}
}

func (s *tasaService) Crear(ctx context.Context, req dto.CrearTasaCambioRequest, usuario string) (*dto.TasaCambioResponse, error) {
	tasa := &model.TasaCambio{
		TasaBsUSD:     req.TasaBsUSD,
		Observaciones: req.Observaciones,
	}
	if usuario != "" {
		tasa.Usuario = &usuario
	}
	if err := s.repo.SetActiva(ctx, tasa); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return tasaToResponse(tasa), nil
}

func (s *tasaService) Actual(ctx context.Context) (*dto.TasaCambioResponse, error) {
	tasa, err := s.ActivaModel(ctx)
	if err != nil {
		return nil, err
	}
	return tasaToResponse(tasa), nil
}

// ActivaModel is the internal lookup used by invoicing: cache first, then DB,
// self-healing an empty register with a 1.0 default.
func (s *tasaService) ActivaModel(ctx context.Context) (*model.TasaCambio, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	tasa, err := s.repo.FindActiva(ctx)
	if err != nil {
		// Empty register: seed the default so conversions keep working.
		obs := "Tasa por defecto"
		tasa = &model.TasaCambio{
			TasaBsUSD:     decimal.NewFromInt(1),
			Observaciones: &obs,
		}
		if err := s.repo.SetActiva(ctx, tasa); err != nil {
			return nil, err
		}
	}

	s.toCache(ctx, tasa)
	return tasa, nil
}

func (s *tasaService) Historial(ctx context.Context) ([]dto.TasaCambioResponse, error) {
	tasas, err := s.repo.List(ctx, 100)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TasaCambioResponse, len(tasas))
	for i := range tasas {
		resp[i] = *tasaToResponse(&tasas[i])
	}
	return resp, nil
}

// ── Redis cache ──────────────────────────────────────────────────────────────
// The active rate is read on every invoice and payment; a short TTL keeps the
// hot path off the database. Cache failures only cost a DB roundtrip.

func (s *tasaService) fromCache(ctx context.Context) *model.TasaCambio {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, tasaCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var tasa model.TasaCambio
	if err := json.Unmarshal(raw, &tasa); err != nil {
		return nil
	}
	return &tasa
}

func (s *tasaService) toCache(ctx context.Context, tasa *model.TasaCambio) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(tasa)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, tasaCacheKey, raw, tasaCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("no se pudo cachear la tasa activa")
	}
}

func (s *tasaService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, tasaCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar el cache de tasa")
	}
}

func tasaToResponse(t *model.TasaCambio) *dto.TasaCambioResponse {
	return &dto.TasaCambioResponse{
		ID:                 t.ID.String(),
		TasaBsUSD:          t.TasaBsUSD,
		Usuario:            t.Usuario,
		Observaciones:      t.Observaciones,
		Activa:             t.Activa,
		FechaActualizacion: t.CreatedAt.Format(fechaISO),
	}
}
