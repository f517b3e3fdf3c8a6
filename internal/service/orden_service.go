package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/TiendaCompu/Trieste-IA/internal/apierror"
	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/model"
	"github.com/TiendaCompu/Trieste-IA/internal/repository"
)

type OrdenService interface {
	Crear(ctx context.Context, req dto.CrearOrdenRequest) (*dto.OrdenResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.OrdenResponse, error)
	Listar(ctx context.Context, estado, filtro string) ([]dto.OrdenResponse, error)
	HistorialVehiculo(ctx context.Context, vehiculoID uuid.UUID) ([]dto.OrdenResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarOrdenRequest) (*dto.OrdenResponse, error)
	Estadisticas(ctx context.Context) (*dto.EstadisticasResponse, error)
}

type ordenService struct {
	repo         repository.OrdenRepository
	vehiculoRepo repository.VehiculoRepository
	clienteRepo  repository.ClienteRepository
	mecanicoRepo repository.MecanicoRepository
	catalogoRepo repository.CatalogoRepository
}

func NewOrdenService(
	repo repository.OrdenRepository,
	vehiculoRepo repository.VehiculoRepository,
	clienteRepo repository.ClienteRepository,
	mecanicoRepo repository.MecanicoRepository,
	catalogoRepo repository.CatalogoRepository,
) OrdenService {
	return &ordenService{
		repo:         repo,
		vehiculoRepo: vehiculoRepo,
		clienteRepo:  clienteRepo,
		mecanicoRepo: mecanicoRepo,
		catalogoRepo: catalogoRepo,
	}
}

func (s *ordenService) Crear(ctx context.Context, req dto.CrearOrdenRequest) (*dto.OrdenResponse, error) {
	vehiculoID, err := uuid.Parse(req.VehiculoID)
	if err != nil {
		return nil, apierror.Validation("vehiculo_id inválido")
	}
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, apierror.Validation("cliente_id inválido")
	}

	if _, err := s.vehiculoRepo.FindByID(ctx, vehiculoID); err != nil {
		return nil, apierror.NotFound("Vehículo no encontrado")
	}
	if _, err := s.clienteRepo.FindByID(ctx, clienteID); err != nil {
		return nil, apierror.NotFound("Cliente no encontrado")
	}

	orden := &model.OrdenTrabajo{
		VehiculoID:    vehiculoID,
		ClienteID:     clienteID,
		Diagnostico:   req.Diagnostico,
		Observaciones: req.Observaciones,
		Estado:        "recibido",
		FechaIngreso:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, orden); err != nil {
		return nil, err
	}
	return ordenToResponse(orden), nil
}

func (s *ordenService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.OrdenResponse, error) {
	orden, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Orden de trabajo no encontrada")
	}
	return ordenToResponse(orden), nil
}

// Listar supports either an exact estado or a coarse filtro:
// "activas" (todo menos entregado), "entregadas", or everything.
func (s *ordenService) Listar(ctx context.Context, estado, filtro string) ([]dto.OrdenResponse, error) {
	if estado != "" && !model.EstadosOrden[estado] {
		return nil, apierror.Validation("Estado de orden desconocido: %s", estado)
	}
	ordenes, err := s.repo.List(ctx, estado, filtro)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OrdenResponse, len(ordenes))
	for i := range ordenes {
		resp[i] = *ordenToResponse(&ordenes[i])
	}
	return resp, nil
}

func (s *ordenService) HistorialVehiculo(ctx context.Context, vehiculoID uuid.UUID) ([]dto.OrdenResponse, error) {
	ordenes, err := s.repo.ListByVehiculoID(ctx, vehiculoID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OrdenResponse, len(ordenes))
	for i := range ordenes {
		resp[i] = *ordenToResponse(&ordenes[i])
	}
	return resp, nil
}

func (s *ordenService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarOrdenRequest) (*dto.OrdenResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, apierror.NotFound("Orden de trabajo no encontrada")
	}

	campos := map[string]interface{}{}

	if req.Estado != nil {
		if !model.EstadosOrden[*req.Estado] {
			return nil, apierror.Validation("Estado de orden desconocido: %s", *req.Estado)
		}
		campos["estado"] = *req.Estado
	}
	if req.MecanicoID != nil {
		mecanicoID, err := uuid.Parse(*req.MecanicoID)
		if err != nil {
			return nil, apierror.Validation("mecanico_id inválido")
		}
		if _, err := s.mecanicoRepo.FindByID(ctx, mecanicoID); err != nil {
			return nil, apierror.NotFound("Mecánico no encontrado")
		}
		campos["mecanico_id"] = mecanicoID
	}
	if req.Diagnostico != nil {
		campos["diagnostico"] = mayus(*req.Diagnostico)
	}
	if req.Observaciones != nil {
		campos["observaciones"] = mayus(*req.Observaciones)
	}
	if req.PresupuestoTotal != nil {
		campos["presupuesto_total"] = *req.PresupuestoTotal
	}
	if req.AprobadoCliente != nil {
		campos["aprobado_cliente"] = *req.AprobadoCliente
	}
	if req.FechaEstimadaEntrega != nil {
		fecha, err := time.Parse(time.RFC3339, *req.FechaEstimadaEntrega)
		if err != nil {
			return nil, apierror.Validation("fecha_estimada_entrega inválida: use formato RFC3339")
		}
		campos["fecha_estimada_entrega"] = fecha
	}

	// Item list replacement: each entry snapshots the price at this moment.
	if req.ServiciosRepuestos != nil {
		items := make([]model.OrdenItem, 0, len(req.ServiciosRepuestos))
		for _, input := range req.ServiciosRepuestos {
			itemID, err := uuid.Parse(input.ID)
			if err != nil {
				return nil, apierror.Validation("id de servicio/repuesto inválido")
			}
			catItem, err := s.catalogoRepo.FindByID(ctx, itemID)
			if err != nil {
				return nil, apierror.NotFound("Servicio/repuesto %s no encontrado", input.ID)
			}
			precio := input.Precio
			if precio.IsZero() {
				precio = catItem.Precio
			}
			items = append(items, model.OrdenItem{
				ServicioRepuestoID: itemID,
				Cantidad:           input.Cantidad,
				Precio:             precio,
			})
		}
		if err := s.repo.ReplaceItems(ctx, id, items); err != nil {
			return nil, err
		}
	}

	if len(campos) > 0 {
		if err := s.repo.UpdateCampos(ctx, id, campos); err != nil {
			return nil, err
		}
	}

	orden, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ordenToResponse(orden), nil
}

func (s *ordenService) Estadisticas(ctx context.Context) (*dto.EstadisticasResponse, error) {
	totalOrdenes, err := s.repo.CountTotal(ctx)
	if err != nil {
		return nil, err
	}
	activas, err := s.repo.CountActivas(ctx)
	if err != nil {
		return nil, err
	}
	totalVehiculos, err := s.vehiculoRepo.CountTotal(ctx)
	if err != nil {
		return nil, err
	}
	totalClientes, err := s.clienteRepo.CountTotal(ctx)
	if err != nil {
		return nil, err
	}
	porEstado, err := s.repo.CountPorEstado(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.EstadisticasResponse{
		TotalOrdenes:   totalOrdenes,
		OrdenesActivas: activas,
		TotalVehiculos: totalVehiculos,
		TotalClientes:  totalClientes,
		EstadosOrdenes: porEstado,
	}, nil
}

func ordenToResponse(o *model.OrdenTrabajo) *dto.OrdenResponse {
	items := make([]dto.OrdenItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		nombre := ""
		if item.ServicioRepuesto != nil {
			nombre = item.ServicioRepuesto.Nombre
		}
		items = append(items, dto.OrdenItemResponse{
			ID:       item.ServicioRepuestoID.String(),
			Nombre:   nombre,
			Cantidad: item.Cantidad,
			Precio:   item.Precio,
		})
	}

	var mecanicoID *string
	if o.MecanicoID != nil {
		v := o.MecanicoID.String()
		mecanicoID = &v
	}
	var fechaEntrega *string
	if o.FechaEstimadaEntrega != nil {
		v := o.FechaEstimadaEntrega.Format(fechaISO)
		fechaEntrega = &v
	}

	return &dto.OrdenResponse{
		ID:                   o.ID.String(),
		VehiculoID:           o.VehiculoID.String(),
		ClienteID:            o.ClienteID.String(),
		MecanicoID:           mecanicoID,
		Diagnostico:          o.Diagnostico,
		ServiciosRepuestos:   items,
		Estado:               o.Estado,
		PresupuestoTotal:     o.PresupuestoTotal,
		FechaIngreso:         o.FechaIngreso.Format(fechaISO),
		FechaEstimadaEntrega: fechaEntrega,
		Observaciones:        o.Observaciones,
		AprobadoCliente:      o.AprobadoCliente,
		VehiculoEliminado:    o.VehiculoEliminado,
		MatriculaOriginal:    o.MatriculaOriginal,
		CreatedAt:            o.CreatedAt.Format(fechaISO),
	}
}
