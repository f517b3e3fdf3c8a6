package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/TiendaCompu/Trieste-IA/internal/apierror"
	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/model"
	"github.com/TiendaCompu/Trieste-IA/internal/repository"
)

const secuenciaPresupuesto = "presupuesto"

type PresupuestoService interface {
	Crear(ctx context.Context, req dto.CrearPresupuestoRequest) (*dto.PresupuestoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PresupuestoResponse, error)
	Listar(ctx context.Context) ([]dto.PresupuestoResponse, error)
	Aprobar(ctx context.Context, id uuid.UUID) error
	Rechazar(ctx context.Context, id uuid.UUID) error
}

type presupuestoService struct {
	repo          repository.PresupuestoRepository
	vehiculoRepo  repository.VehiculoRepository
	clienteRepo   repository.ClienteRepository
	secuenciaRepo repository.SecuenciaRepository
}

func NewPresupuestoService(
	repo repository.PresupuestoRepository,
	vehiculoRepo repository.VehiculoRepository,
	clienteRepo repository.ClienteRepository,
	secuenciaRepo repository.SecuenciaRepository,
) PresupuestoService {
	return &presupuestoService{
		repo:          repo,
		vehiculoRepo:  vehiculoRepo,
		clienteRepo:   clienteRepo,
		secuenciaRepo: secuenciaRepo,
	}
}

// Crear computes subtotal, IVA (16%) and total from the line items, assigns
// the next P-YYYY-NNN number from the atomic sequence, and persists everything
// in one transaction.
func (s *presupuestoService) Crear(ctx context.Context, req dto.CrearPresupuestoRequest) (*dto.PresupuestoResponse, error) {
	vehiculoID, err := uuid.Parse(req.VehiculoID)
	if err != nil {
		return nil, apierror.Validation("vehiculo_id inválido")
	}
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, apierror.Validation("cliente_id inválido")
	}
	var ordenID *uuid.UUID
	if req.OrdenTrabajoID != nil {
		oid, err := uuid.Parse(*req.OrdenTrabajoID)
		if err != nil {
			return nil, apierror.Validation("orden_trabajo_id inválido")
		}
		ordenID = &oid
	}

	if _, err := s.vehiculoRepo.FindByID(ctx, vehiculoID); err != nil {
		return nil, apierror.NotFound("Vehículo no encontrado")
	}
	if _, err := s.clienteRepo.FindByID(ctx, clienteID); err != nil {
		return nil, apierror.NotFound("Cliente no encontrado")
	}

	items := make([]model.ItemPresupuesto, 0, len(req.Items))
	subtotal := decimal.Zero
	for _, input := range req.Items {
		lineTotal := input.PrecioUnitarioUSD.Mul(decimal.NewFromInt(int64(input.Cantidad)))
		subtotal = subtotal.Add(lineTotal)
		items = append(items, model.ItemPresupuesto{
			Tipo:              input.Tipo,
			Descripcion:       mayus(input.Descripcion),
			Cantidad:          input.Cantidad,
			PrecioUnitarioUSD: input.PrecioUnitarioUSD,
			TotalUSD:          lineTotal,
		})
	}
	iva := subtotal.Mul(model.IVAPorcentaje).Round(2)
	total := subtotal.Add(iva)

	presupuesto := &model.Presupuesto{
		VehiculoID:     vehiculoID,
		ClienteID:      clienteID,
		OrdenTrabajoID: ordenID,
		SubtotalUSD:    subtotal,
		IVAUSD:         iva,
		TotalUSD:       total,
		Estado:         "pendiente",
		Observaciones:  req.Observaciones,
		Items:          items,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		anio := time.Now().UTC().Year()
		seq, err := s.secuenciaRepo.NextTx(tx, secuenciaPresupuesto, anio)
		if err != nil {
			return err
		}
		presupuesto.NumeroPresupuesto = fmt.Sprintf("P-%d-%03d", anio, seq)
		return s.repo.CreateTx(tx, presupuesto)
	})
	if txErr != nil {
		return nil, txErr
	}

	return presupuestoToResponse(presupuesto), nil
}

func (s *presupuestoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PresupuestoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Presupuesto no encontrado")
	}
	return presupuestoToResponse(p), nil
}

func (s *presupuestoService) Listar(ctx context.Context) ([]dto.PresupuestoResponse, error) {
	presupuestos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PresupuestoResponse, len(presupuestos))
	for i := range presupuestos {
		resp[i] = *presupuestoToResponse(&presupuestos[i])
	}
	return resp, nil
}

func (s *presupuestoService) Aprobar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Presupuesto no encontrado")
	}
	return s.repo.UpdateCampos(ctx, id, map[string]interface{}{
		"estado":           "aprobado",
		"fecha_aprobacion": time.Now().UTC(),
	})
}

func (s *presupuestoService) Rechazar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Presupuesto no encontrado")
	}
	return s.repo.UpdateCampos(ctx, id, map[string]interface{}{
		"estado": "rechazado",
	})
}

func presupuestoToResponse(p *model.Presupuesto) *dto.PresupuestoResponse {
	items := make([]dto.ItemPresupuestoResponse, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, dto.ItemPresupuestoResponse{
			ID:                item.ID.String(),
			Tipo:              item.Tipo,
			Descripcion:       item.Descripcion,
			Cantidad:          item.Cantidad,
			PrecioUnitarioUSD: item.PrecioUnitarioUSD,
			TotalUSD:          item.TotalUSD,
		})
	}

	var ordenID *string
	if p.OrdenTrabajoID != nil {
		v := p.OrdenTrabajoID.String()
		ordenID = &v
	}
	var fechaAprobacion *string
	if p.FechaAprobacion != nil {
		v := p.FechaAprobacion.Format(fechaISO)
		fechaAprobacion = &v
	}

	return &dto.PresupuestoResponse{
		ID:                p.ID.String(),
		NumeroPresupuesto: p.NumeroPresupuesto,
		VehiculoID:        p.VehiculoID.String(),
		ClienteID:         p.ClienteID.String(),
		OrdenTrabajoID:    ordenID,
		Items:             items,
		SubtotalUSD:       p.SubtotalUSD,
		IVAUSD:            p.IVAUSD,
		TotalUSD:          p.TotalUSD,
		Estado:            p.Estado,
		FechaAprobacion:   fechaAprobacion,
		Observaciones:     p.Observaciones,
		CreatedAt:         p.CreatedAt.Format(fechaISO),
	}
}
