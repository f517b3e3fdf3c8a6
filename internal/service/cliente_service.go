package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/TiendaCompu/Trieste-IA/internal/apierror"
	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/model"
	"github.com/TiendaCompu/Trieste-IA/internal/repository"
)

// ClienteService defines the business logic contract for clients.
type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	cliente := &model.Cliente{
		Nombre:             mayus(req.Nombre),
		TipoDocumento:      req.TipoDocumento,
		PrefijoDocumento:   req.PrefijoDocumento,
		NumeroDocumento:    mayus(req.NumeroDocumento),
		Telefono:           req.Telefono,
		TelefonoSecundario: req.TelefonoSecundario,
		DireccionFiscal:    mayus(req.DireccionFiscal),
		Empresa:            mayusPtr(req.Empresa),
		Email:              req.Email,
	}
	if err := s.repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Cliente no encontrado")
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteResponse, len(clientes))
	for i := range clientes {
		resp[i] = *clienteToResponse(&clientes[i])
	}
	return resp, nil
}

// Actualizar applies the restricted allow-list of mutable fields. Identity
// document fields and direccion fiscal are immutable once the client exists.
func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, apierror.NotFound("Cliente no encontrado")
	}

	campos := map[string]interface{}{}
	if req.Nombre != nil {
		campos["nombre"] = mayus(*req.Nombre)
	}
	if req.Telefono != nil {
		campos["telefono"] = *req.Telefono
	}
	if req.Empresa != nil {
		campos["empresa"] = mayus(*req.Empresa)
	}
	if req.Email != nil {
		campos["email"] = *req.Email
	}

	if len(campos) > 0 {
		if err := s.repo.UpdateCampos(ctx, id, campos); err != nil {
			return nil, err
		}
	}

	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:                 c.ID.String(),
		Nombre:             c.Nombre,
		TipoDocumento:      c.TipoDocumento,
		PrefijoDocumento:   c.PrefijoDocumento,
		NumeroDocumento:    c.NumeroDocumento,
		Telefono:           c.Telefono,
		TelefonoSecundario: c.TelefonoSecundario,
		DireccionFiscal:    c.DireccionFiscal,
		Empresa:            c.Empresa,
		Email:              c.Email,
		CreatedAt:          c.CreatedAt.Format(fechaISO),
	}
}
