package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TiendaCompu/Trieste-IA/internal/apierror"
	"github.com/TiendaCompu/Trieste-IA/internal/dto"
	"github.com/TiendaCompu/Trieste-IA/internal/model"
	"github.com/TiendaCompu/Trieste-IA/internal/repository"
)

// KilometrajeService maintains the append-only odometer ledger. Readings only
// move forward; the vehicle's current kilometraje and the ledger entry are
// written in the same transaction.
type KilometrajeService interface {
	Actualizar(ctx context.Context, vehiculoID uuid.UUID, req dto.ActualizarKilometrajeRequest) (*dto.HistorialKilometrajeResponse, error)
	Historial(ctx context.Context, vehiculoID uuid.UUID) ([]dto.HistorialKilometrajeResponse, error)
}

type kilometrajeService struct {
	repo         repository.KilometrajeRepository
	vehiculoRepo repository.VehiculoRepository
}

func NewKilometrajeService(repo repository.KilometrajeRepository, vehiculoRepo repository.VehiculoRepository) KilometrajeService {
	return &kilometrajeService{repo: repo, vehiculoRepo: vehiculoRepo}
}

func (s *kilometrajeService) Actualizar(ctx context.Context, vehiculoID uuid.UUID, req dto.ActualizarKilometrajeRequest) (*dto.HistorialKilometrajeResponse, error) {
	vehiculo, err := s.vehiculoRepo.FindByID(ctx, vehiculoID)
	if err != nil {
		return nil, apierror.NotFound("Vehículo no encontrado")
	}

	actual := 0
	if vehiculo.Kilometraje != nil {
		actual = *vehiculo.Kilometraje
	}
	if req.KilometrajeNuevo < actual {
		return nil, apierror.Validation("El kilometraje nuevo (%d) no puede ser inferior al actual (%d)",
			req.KilometrajeNuevo, actual)
	}

	entrada := &model.HistorialKilometraje{
		VehiculoID:          vehiculoID,
		KilometrajeAnterior: actual,
		KilometrajeNuevo:    req.KilometrajeNuevo,
		Motivo:              "ENTRADA AL TALLER",
		Observaciones:       req.Observaciones,
	}

	txErr := runTx(ctx, s.vehiculoRepo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, entrada); err != nil {
			return err
		}
		return s.vehiculoRepo.UpdateKilometrajeTx(tx, vehiculoID, req.KilometrajeNuevo)
	})
	if txErr != nil {
		return nil, txErr
	}

	return historialToResponse(entrada), nil
}

func (s *kilometrajeService) Historial(ctx context.Context, vehiculoID uuid.UUID) ([]dto.HistorialKilometrajeResponse, error) {
	historial, err := s.repo.ListByVehiculoID(ctx, vehiculoID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.HistorialKilometrajeResponse, len(historial))
	for i := range historial {
		resp[i] = *historialToResponse(&historial[i])
	}
	return resp, nil
}

func historialToResponse(h *model.HistorialKilometraje) *dto.HistorialKilometrajeResponse {
	return &dto.HistorialKilometrajeResponse{
		ID:                  h.ID.String(),
		VehiculoID:          h.VehiculoID.String(),
		KilometrajeAnterior: h.KilometrajeAnterior,
		KilometrajeNuevo:    h.KilometrajeNuevo,
		Motivo:              h.Motivo,
		Observaciones:       h.Observaciones,
		FechaActualizacion:  h.CreatedAt.Format(fechaISO),
	}
}
