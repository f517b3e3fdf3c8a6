package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/TiendaCompu/Trieste-IA/internal/apierror"
	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/model"
	"github.com/TiendaCompu/Trieste-IA/internal/repository"
)

type MecanicoService interface {
	Crear(ctx context.Context, req dto.CrearMecanicoRequest) (*dto.MecanicoResponse, error)
	Listar(ctx context.Context) ([]dto.MecanicoResponse, error)
	ListarActivos(ctx context.Context) ([]dto.MecanicoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMecanicoRequest) (*dto.MecanicoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type mecanicoService struct {
	repo      repository.MecanicoRepository
	ordenRepo repository.OrdenRepository
}

func NewMecanicoService(repo repository.MecanicoRepository, ordenRepo repository.OrdenRepository) MecanicoService {
	return &mecanicoService{repo: repo, ordenRepo: ordenRepo}
}

func (s *mecanicoService) Crear(ctx context.Context, req dto.CrearMecanicoRequest) (*dto.MecanicoResponse, error) {
	estado := req.Estado
	if estado == "" {
		estado = "disponible"
	}
	mecanico := &model.Mecanico{
		Nombre:       mayus(req.Nombre),
		Especialidad: req.Especialidad,
		Telefono:     req.Telefono,
		Whatsapp:     req.Whatsapp,
		Avatar:       req.Avatar,
		Estado:       estado,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, mecanico); err != nil {
		return nil, err
	}
	return mecanicoToResponse(mecanico), nil
}

func (s *mecanicoService) Listar(ctx context.Context) ([]dto.MecanicoResponse, error) {
	mecanicos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MecanicoResponse, len(mecanicos))
	for i := range mecanicos {
		resp[i] = *mecanicoToResponse(&mecanicos[i])
	}
	return resp, nil
}

func (s *mecanicoService) ListarActivos(ctx context.Context) ([]dto.MecanicoResponse, error) {
	mecanicos, err := s.repo.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MecanicoResponse, len(mecanicos))
	for i := range mecanicos {
		resp[i] = *mecanicoToResponse(&mecanicos[i])
	}
	return resp, nil
}

func (s *mecanicoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMecanicoRequest) (*dto.MecanicoResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, apierror.NotFound("Mecánico no encontrado")
	}

	campos := map[string]interface{}{}
	if req.Nombre != nil {
		campos["nombre"] = mayus(*req.Nombre)
	}
	if req.Especialidad != nil {
		campos["especialidad"] = *req.Especialidad
	}
	if req.Telefono != nil {
		campos["telefono"] = *req.Telefono
	}
	if req.Whatsapp != nil {
		campos["whatsapp"] = *req.Whatsapp
	}
	if req.Avatar != nil {
		campos["avatar"] = *req.Avatar
	}
	if req.Estado != nil {
		campos["estado"] = *req.Estado
	}
	if req.Activo != nil {
		campos["activo"] = *req.Activo
	}

	if len(campos) > 0 {
		if err := s.repo.UpdateCampos(ctx, id, campos); err != nil {
			return nil, err
		}
	}

	mecanico, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mecanicoToResponse(mecanico), nil
}

// Eliminar is blocked while the mechanic has orders not yet delivered.
func (s *mecanicoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apierror.NotFound("Mecánico no encontrado")
	}

	activas, err := s.ordenRepo.CountNoEntregadasByMecanico(ctx, id)
	if err != nil {
		return err
	}
	if activas > 0 {
		return apierror.Validation("No se puede eliminar el mecánico porque tiene %d órdenes activas asignadas", activas)
	}

	return s.repo.Delete(ctx, id)
}

func mecanicoToResponse(m *model.Mecanico) *dto.MecanicoResponse {
	return &dto.MecanicoResponse{
		ID:           m.ID.String(),
		Nombre:       m.Nombre,
		Especialidad: m.Especialidad,
		Telefono:     m.Telefono,
		Whatsapp:     m.Whatsapp,
		Avatar:       m.Avatar,
		Estado:       m.Estado,
		Activo:       m.Activo,
		CreatedAt:    m.CreatedAt.Format(fechaISO),
	}
}
