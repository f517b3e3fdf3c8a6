package service

import (
	"context"
	"regexp"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TiendaCompu/Trieste-IA/internal/apierror"
	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/model"
	"github.com/TiendaCompu/Trieste-IA/internal/repository"
)

// matriculaRx is the Venezuelan plate format: 4-7 alphanumeric characters,
// validated after uppercase normalization.
var matriculaRx = regexp.MustCompile(`^[A-Z0-9]{4,7}$`)

type VehiculoService interface {
	Crear(ctx context.Context, req dto.CrearVehiculoRequest) (*dto.VehiculoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VehiculoResponse, error)
	Listar(ctx context.Context) ([]dto.VehiculoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarVehiculoRequest) (*dto.VehiculoResponse, error)
	VerificarMatricula(ctx context.Context, matricula string) (*dto.VerificarMatriculaResponse, error)
	CambiarMatricula(ctx context.Context, id uuid.UUID, req dto.CambioMatriculaRequest, usuario string) (*dto.CambioMatriculaResponse, error)
	HistorialCambiosMatricula(ctx context.Context, id uuid.UUID) ([]dto.CambioMatriculaHistorialResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID, usuario string) (*dto.EliminarVehiculoResponse, error)
}

type vehiculoService struct {
	repo        repository.VehiculoRepository
	clienteRepo repository.ClienteRepository
	ordenRepo   repository.OrdenRepository
}

func NewVehiculoService(
	repo repository.VehiculoRepository,
	clienteRepo repository.ClienteRepository,
	ordenRepo repository.OrdenRepository,
) VehiculoService {
	return &vehiculoService{repo: repo, clienteRepo: clienteRepo, ordenRepo: ordenRepo}
}

func (s *vehiculoService) Crear(ctx context.Context, req dto.CrearVehiculoRequest) (*dto.VehiculoResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, apierror.Validation("cliente_id inválido")
	}
	if _, err := s.clienteRepo.FindByID(ctx, clienteID); err != nil {
		return nil, apierror.NotFound("Cliente no encontrado")
	}

	matricula := mayus(req.Matricula)
	if !matriculaRx.MatchString(matricula) {
		return nil, apierror.Validation("Matrícula inválida. Debe tener 4-7 caracteres alfanuméricos sin símbolos")
	}
	if _, err := s.repo.FindByMatricula(ctx, matricula); err == nil {
		return nil, apierror.Conflict("Esta matrícula ya está registrada")
	}

	vehiculo := &model.Vehiculo{
		Matricula:       matricula,
		Marca:           mayus(req.Marca),
		Modelo:          mayus(req.Modelo),
		Anio:            req.Anio,
		Color:           mayusPtr(req.Color),
		Kilometraje:     req.Kilometraje,
		TipoCombustible: mayusPtr(req.TipoCombustible),
		SerialNIV:       mayusPtr(req.SerialNIV),
		Tara:            req.Tara,
		FotoVehiculo:    req.FotoVehiculo,
		FotoMatricula:   req.FotoMatricula,
		ClienteID:       clienteID,
	}
	if err := s.repo.Create(ctx, vehiculo); err != nil {
		return nil, err
	}
	return vehiculoToResponse(vehiculo), nil
}

func (s *vehiculoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VehiculoResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Vehículo no encontrado")
	}
	return vehiculoToResponse(v), nil
}

func (s *vehiculoService) Listar(ctx context.Context) ([]dto.VehiculoResponse, error) {
	vehiculos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VehiculoResponse, len(vehiculos))
	for i := range vehiculos {
		resp[i] = *vehiculoToResponse(&vehiculos[i])
	}
	return resp, nil
}

// Actualizar updates the allow-listed fields only. The plate never changes
// here: that goes through CambiarMatricula so the change is audited.
func (s *vehiculoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarVehiculoRequest) (*dto.VehiculoResponse, error) {
	vehiculo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Vehículo no encontrado")
	}

	campos := map[string]interface{}{}
	if req.Marca != nil {
		campos["marca"] = mayus(*req.Marca)
	}
	if req.Modelo != nil {
		campos["modelo"] = mayus(*req.Modelo)
	}
	if req.Anio != nil {
		campos["anio"] = *req.Anio
	}
	if req.Color != nil {
		campos["color"] = mayus(*req.Color)
	}
	if req.Kilometraje != nil {
		campos["kilometraje"] = *req.Kilometraje
	}
	if req.ClienteID != nil {
		nuevoClienteID, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, apierror.Validation("cliente_id inválido")
		}
		if nuevoClienteID != vehiculo.ClienteID {
			if _, err := s.clienteRepo.FindByID(ctx, nuevoClienteID); err != nil {
				return nil, apierror.NotFound("Cliente no encontrado")
			}
		}
		campos["cliente_id"] = nuevoClienteID
	}

	if len(campos) > 0 {
		if err := s.repo.UpdateCampos(ctx, id, campos); err != nil {
			return nil, err
		}
	}

	actualizado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vehiculoToResponse(actualizado), nil
}

func (s *vehiculoService) VerificarMatricula(ctx context.Context, matricula string) (*dto.VerificarMatriculaResponse, error) {
	matricula = mayus(matricula)
	_, err := s.repo.FindByMatricula(ctx, matricula)
	return &dto.VerificarMatriculaResponse{
		Existe:    err == nil,
		Matricula: matricula,
	}, nil
}

// CambiarMatricula swaps the plate and records the change in the same
// transaction so the audit trail can never miss a swap.
func (s *vehiculoService) CambiarMatricula(ctx context.Context, id uuid.UUID, req dto.CambioMatriculaRequest, usuario string) (*dto.CambioMatriculaResponse, error) {
	vehiculo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Vehículo no encontrado")
	}

	nueva := mayus(req.MatriculaNueva)
	if !matriculaRx.MatchString(nueva) {
		return nil, apierror.Validation("Matrícula inválida. Debe tener 4-7 caracteres alfanuméricos")
	}
	if existente, err := s.repo.FindByMatricula(ctx, nueva); err == nil && existente.ID != id {
		return nil, apierror.Conflict("La matrícula %s ya está registrada en otro vehículo", nueva)
	}

	anterior := vehiculo.Matricula
	if usuario == "" {
		usuario = "sistema"
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateMatriculaTx(tx, id, nueva); err != nil {
			return err
		}
		return s.repo.CreateCambioMatriculaTx(tx, &model.CambioMatricula{
			VehiculoID:        id,
			MatriculaAnterior: anterior,
			MatriculaNueva:    nueva,
			Motivo:            req.Motivo,
			Usuario:           usuario,
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.CambioMatriculaResponse{
		Success:           true,
		MatriculaAnterior: anterior,
		MatriculaNueva:    nueva,
	}, nil
}

func (s *vehiculoService) HistorialCambiosMatricula(ctx context.Context, id uuid.UUID) ([]dto.CambioMatriculaHistorialResponse, error) {
	cambios, err := s.repo.ListCambiosMatricula(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CambioMatriculaHistorialResponse, len(cambios))
	for i, c := range cambios {
		resp[i] = dto.CambioMatriculaHistorialResponse{
			ID:                c.ID.String(),
			VehiculoID:        c.VehiculoID.String(),
			MatriculaAnterior: c.MatriculaAnterior,
			MatriculaNueva:    c.MatriculaNueva,
			Motivo:            c.Motivo,
			Usuario:           c.Usuario,
			FechaCambio:       c.CreatedAt.Format(fechaISO),
		}
	}
	return resp, nil
}

// Eliminar hard-deletes a vehicle after writing the audit snapshot and
// flagging its work orders, all in one transaction. Blocked while the vehicle
// has orders in a state before terminado.
func (s *vehiculoService) Eliminar(ctx context.Context, id uuid.UUID, usuario string) (*dto.EliminarVehiculoResponse, error) {
	vehiculo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Vehículo no encontrado")
	}

	activas, err := s.ordenRepo.CountActivasByVehiculo(ctx, id)
	if err != nil {
		return nil, err
	}
	if activas > 0 {
		return nil, apierror.Validation("No se puede eliminar: el vehículo tiene órdenes de trabajo activas")
	}

	if usuario == "" {
		usuario = "sistema"
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateEliminadoTx(tx, &model.VehiculoEliminado{
			VehiculoID:  vehiculo.ID,
			Matricula:   vehiculo.Matricula,
			Marca:       vehiculo.Marca,
			Modelo:      vehiculo.Modelo,
			Anio:        vehiculo.Anio,
			Color:       vehiculo.Color,
			Kilometraje: vehiculo.Kilometraje,
			ClienteID:   vehiculo.ClienteID,
			Usuario:     usuario,
		}); err != nil {
			return err
		}
		// Orders survive the delete: they keep the original plate string
		if err := s.ordenRepo.MarcarVehiculoEliminadoTx(tx, id, vehiculo.Matricula); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, id)
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.EliminarVehiculoResponse{Success: true, Matricula: vehiculo.Matricula}, nil
}

func vehiculoToResponse(v *model.Vehiculo) *dto.VehiculoResponse {
	resp := &dto.VehiculoResponse{
		ID:              v.ID.String(),
		Matricula:       v.Matricula,
		Marca:           v.Marca,
		Modelo:          v.Modelo,
		Anio:            v.Anio,
		Color:           v.Color,
		Kilometraje:     v.Kilometraje,
		TipoCombustible: v.TipoCombustible,
		SerialNIV:       v.SerialNIV,
		Tara:            v.Tara,
		FotoVehiculo:    v.FotoVehiculo,
		FotoMatricula:   v.FotoMatricula,
		ClienteID:       v.ClienteID.String(),
		CreatedAt:       v.CreatedAt.Format(fechaISO),
	}
	if v.Cliente != nil {
		resp.Cliente = clienteToResponse(v.Cliente)
	}
	return resp
}
