package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/TiendaCompu/Trieste-IA/internal/apierror"
	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/model"
	"github.com/TiendaCompu/Trieste-IA/internal/repository"
)

// CatalogoService manages the servicios/repuestos price catalog. Prices here
// are list prices: orders snapshot the price at the moment the item is added,
// so catalog edits never rewrite history.
type CatalogoService interface {
	Crear(ctx context.Context, req dto.CrearServicioRepuestoRequest) (*dto.ServicioRepuestoResponse, error)
	Listar(ctx context.Context) ([]dto.ServicioRepuestoResponse, error)
	ListarPorTipo(ctx context.Context, tipo string) ([]dto.ServicioRepuestoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarServicioRepuestoRequest) (*dto.ServicioRepuestoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) (*dto.EliminarItemResponse, error)
}

type catalogoService struct {
	repo      repository.CatalogoRepository
	ordenRepo repository.OrdenRepository
}

func NewCatalogoService(repo repository.CatalogoRepository, ordenRepo repository.OrdenRepository) CatalogoService {
	return &catalogoService{repo: repo, ordenRepo: ordenRepo}
}

func (s *catalogoService) Crear(ctx context.Context, req dto.CrearServicioRepuestoRequest) (*dto.ServicioRepuestoResponse, error) {
	item := &model.ServicioRepuesto{
		Tipo:        req.Tipo,
		Nombre:      mayus(req.Nombre),
		Descripcion: mayusPtr(req.Descripcion),
		Precio:      req.Precio,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return catalogoToResponse(item), nil
}

func (s *catalogoService) Listar(ctx context.Context) ([]dto.ServicioRepuestoResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ServicioRepuestoResponse, len(items))
	for i := range items {
		resp[i] = *catalogoToResponse(&items[i])
	}
	return resp, nil
}

func (s *catalogoService) ListarPorTipo(ctx context.Context, tipo string) ([]dto.ServicioRepuestoResponse, error) {
	if tipo != "servicio" && tipo != "repuesto" {
		return nil, apierror.Validation("tipo inválido: debe ser servicio o repuesto")
	}
	items, err := s.repo.ListByTipo(ctx, tipo)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ServicioRepuestoResponse, len(items))
	for i := range items {
		resp[i] = *catalogoToResponse(&items[i])
	}
	return resp, nil
}

func (s *catalogoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarServicioRepuestoRequest) (*dto.ServicioRepuestoResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, apierror.NotFound("Item no encontrado")
	}

	campos := map[string]interface{}{}
	if req.Tipo != nil {
		campos["tipo"] = *req.Tipo
	}
	if req.Nombre != nil {
		campos["nombre"] = mayus(*req.Nombre)
	}
	if req.Descripcion != nil {
		campos["descripcion"] = mayus(*req.Descripcion)
	}
	if req.Precio != nil {
		campos["precio"] = *req.Precio
	}

	if len(campos) > 0 {
		if err := s.repo.UpdateCampos(ctx, id, campos); err != nil {
			return nil, err
		}
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return catalogoToResponse(item), nil
}

// Eliminar is blocked while any active order still references the item.
func (s *catalogoService) Eliminar(ctx context.Context, id uuid.UUID) (*dto.EliminarItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Item no encontrado")
	}

	enUso, err := s.ordenRepo.CountActivasConItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if enUso > 0 {
		return nil, apierror.Validation("No se puede eliminar: el item está siendo usado en órdenes activas")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.EliminarItemResponse{Success: true, ItemEliminado: item.Nombre}, nil
}

func catalogoToResponse(item *model.ServicioRepuesto) *dto.ServicioRepuestoResponse {
	return &dto.ServicioRepuestoResponse{
		ID:          item.ID.String(),
		Tipo:        item.Tipo,
		Nombre:      item.Nombre,
		Descripcion: item.Descripcion,
		Precio:      item.Precio,
		CreatedAt:   item.CreatedAt.Format(fechaISO),
	}
}
