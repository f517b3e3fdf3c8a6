package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/repository"
)

const busquedaLimit = 10

type BusquedaService interface {
	Buscar(ctx context.Context, q string) (*dto.BusquedaResponse, error)
}

type busquedaService struct {
	vehiculoRepo repository.VehiculoRepository
	clienteRepo  repository.ClienteRepository
}

func NewBusquedaService(vehiculoRepo repository.VehiculoRepository, clienteRepo repository.ClienteRepository) BusquedaService {
	return &busquedaService{vehiculoRepo: vehiculoRepo, clienteRepo: clienteRepo}
}

// Buscar resolves a free-text query against plates and client names/companies.
// A vehicle matches either directly by plate or indirectly because its owner
// matched; indirect matches pull in ALL the owner's vehicles. Each vehicle
// carries its owner embedded so the UI needs no second request.
//
// Queries shorter than 2 characters return empty results rather than an error.
func (s *busquedaService) Buscar(ctx context.Context, q string) (*dto.BusquedaResponse, error) {
	resp := &dto.BusquedaResponse{
		Vehiculos: []dto.VehiculoResponse{},
		Clientes:  []dto.ClienteResponse{},
	}

	q = strings.TrimSpace(q)
	if len(q) < 2 {
		return resp, nil
	}
	q = strings.ToUpper(q)

	vistos := make(map[uuid.UUID]bool)

	porMatricula, err := s.vehiculoRepo.SearchByMatricula(ctx, q, busquedaLimit)
	if err != nil {
		return nil, err
	}
	for i := range porMatricula {
		v := &porMatricula[i]
		if vistos[v.ID] {
			continue
		}
		vistos[v.ID] = true
		vr := vehiculoToResponse(v)
		if cliente, err := s.clienteRepo.FindByID(ctx, v.ClienteID); err == nil {
			vr.Cliente = clienteToResponse(cliente)
		} else {
			log.Warn().Err(err).Str("vehiculo_id", v.ID.String()).Msg("busqueda: dueño no encontrado")
		}
		resp.Vehiculos = append(resp.Vehiculos, *vr)
	}

	clientes, err := s.clienteRepo.SearchByNombreEmpresa(ctx, q, busquedaLimit)
	if err != nil {
		return nil, err
	}
	for i := range clientes {
		cliente := &clientes[i]
		resp.Clientes = append(resp.Clientes, *clienteToResponse(cliente))

		suyos, err := s.vehiculoRepo.ListByClienteID(ctx, cliente.ID)
		if err != nil {
			log.Warn().Err(err).Str("cliente_id", cliente.ID.String()).Msg("busqueda: error listando vehículos del cliente")
			continue
		}
		for j := range suyos {
			v := &suyos[j]
			if vistos[v.ID] {
				continue
			}
			vistos[v.ID] = true
			vr := vehiculoToResponse(v)
			vr.Cliente = clienteToResponse(cliente)
			resp.Vehiculos = append(resp.Vehiculos, *vr)
		}
	}

	if len(resp.Vehiculos) > busquedaLimit {
		resp.Vehiculos = resp.Vehiculos[:busquedaLimit]
	}
	if len(resp.Clientes) > busquedaLimit {
		resp.Clientes = resp.Clientes[:busquedaLimit]
	}
	return resp, nil
}
