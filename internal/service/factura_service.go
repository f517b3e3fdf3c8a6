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
	"github.com/TiendaCompu/Trieste-IA/internal/worker"
)

const secuenciaFactura = "factura"

type FacturaService interface {
	Crear(ctx context.Context, req dto.CrearFacturaRequest) (*dto.FacturaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.FacturaResponse, error)
	Listar(ctx context.Context) ([]dto.FacturaResponse, error)
	RegistrarPago(ctx context.Context, facturaID uuid.UUID, req dto.RegistrarPagoRequest) (*dto.RegistrarPagoResponse, error)
}

type facturaService struct {
	repo            repository.FacturaRepository
	presupuestoRepo repository.PresupuestoRepository
	vehiculoRepo    repository.VehiculoRepository
	clienteRepo     repository.ClienteRepository
	tasaRepo        repository.TasaCambioRepository
	secuenciaRepo   repository.SecuenciaRepository
	dispatcher      *worker.Dispatcher
}

func NewFacturaService(
	repo repository.FacturaRepository,
	presupuestoRepo repository.PresupuestoRepository,
	vehiculoRepo repository.VehiculoRepository,
	clienteRepo repository.ClienteRepository,
	tasaRepo repository.TasaCambioRepository,
	secuenciaRepo repository.SecuenciaRepository,
	dispatcher *worker.Dispatcher,
) FacturaService {
	return &facturaService{
		repo:            repo,
		presupuestoRepo: presupuestoRepo,
		vehiculoRepo:    vehiculoRepo,
		clienteRepo:     clienteRepo,
		tasaRepo:        tasaRepo,
		secuenciaRepo:   secuenciaRepo,
		dispatcher:      dispatcher,
	}
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// Invoice creation from an approved presupuesto:
//   1. Presupuesto must exist and be "aprobado"
//   2. An active exchange rate must be configured — it is FROZEN onto the
//      invoice; later rate changes never touch this document
//   3. Vehicle data is snapshotted (matrícula, color, año, km at entry)
//   4. Bs amounts derive from the USD amounts at the frozen rate
//   5. FAC-YYYY-NNN from the atomic sequence, inside the same transaction

func (s *facturaService) Crear(ctx context.Context, req dto.CrearFacturaRequest) (*dto.FacturaResponse, error) {
	presupuestoID, err := uuid.Parse(req.PresupuestoID)
	if err != nil {
		return nil, apierror.Validation("presupuesto_id inválido")
	}

	presupuesto, err := s.presupuestoRepo.FindByID(ctx, presupuestoID)
	if err != nil {
		return nil, apierror.NotFound("Presupuesto no encontrado")
	}
	if presupuesto.Estado != "aprobado" {
		return nil, apierror.Validation("El presupuesto debe estar aprobado")
	}

	tasa, err := s.tasaRepo.FindActiva(ctx)
	if err != nil {
		return nil, apierror.Validation("No hay tasa de cambio configurada")
	}

	vehiculo, err := s.vehiculoRepo.FindByID(ctx, presupuesto.VehiculoID)
	if err != nil {
		return nil, apierror.NotFound("Vehículo no encontrado")
	}

	items := make([]model.ItemFactura, 0, len(presupuesto.Items))
	for _, item := range presupuesto.Items {
		items = append(items, model.ItemFactura{
			Tipo:              item.Tipo,
			Descripcion:       item.Descripcion,
			Cantidad:          item.Cantidad,
			PrecioUnitarioUSD: item.PrecioUnitarioUSD,
			TotalUSD:          item.TotalUSD,
		})
	}

	totalBs := presupuesto.TotalUSD.Mul(tasa.TasaBsUSD).Round(2)

	var fechaVencimiento *time.Time
	if req.FechaVencimiento != nil {
		fv, err := time.Parse(time.RFC3339, *req.FechaVencimiento)
		if err != nil {
			return nil, apierror.Validation("fecha_vencimiento inválida: use formato RFC3339")
		}
		fechaVencimiento = &fv
	}

	factura := &model.Factura{
		PresupuestoID:     presupuestoID,
		VehiculoID:        presupuesto.VehiculoID,
		ClienteID:         presupuesto.ClienteID,
		VehiculoMatricula: vehiculo.Matricula,
		VehiculoColor:     vehiculo.Color,
		VehiculoAnio:      vehiculo.Anio,
		KmIngreso:         vehiculo.Kilometraje,
		SubtotalUSD:       presupuesto.SubtotalUSD,
		IVAUSD:            presupuesto.IVAUSD,
		TotalUSD:          presupuesto.TotalUSD,
		TasaCambio:        tasa.TasaBsUSD,
		SubtotalBs:        presupuesto.SubtotalUSD.Mul(tasa.TasaBsUSD).Round(2),
		IVABs:             presupuesto.IVAUSD.Mul(tasa.TasaBsUSD).Round(2),
		TotalBs:           totalBs,
		TotalFinalBs:      totalBs,
		SaldoPendienteBs:  totalBs,
		MontoPagadoBs:     decimal.Zero,
		EstadoPago:        "pendiente",
		FechaVencimiento:  fechaVencimiento,
		Observaciones:     req.Observaciones,
		Items:             items,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		anio := time.Now().UTC().Year()
		seq, err := s.secuenciaRepo.NextTx(tx, secuenciaFactura, anio)
		if err != nil {
			return err
		}
		factura.NumeroFactura = fmt.Sprintf("FAC-%d-%03d", anio, seq)
		return s.repo.CreateTx(tx, factura)
	})
	if txErr != nil {
		return nil, txErr
	}

	// Async PDF generation + email (best-effort, fire & forget)
	if s.dispatcher != nil {
		payload := worker.FacturaPDFJobPayload{FacturaID: factura.ID.String()}
		if cliente, err := s.clienteRepo.FindByID(ctx, factura.ClienteID); err == nil && cliente.Email != "" {
			payload.ClienteEmail = &cliente.Email
		}
		_ = s.dispatcher.EnqueueFacturaPDF(ctx, payload)
	}

	return facturaToResponse(factura), nil
}

func (s *facturaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.FacturaResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Factura no encontrada")
	}
	return facturaToResponse(f), nil
}

func (s *facturaService) Listar(ctx context.Context) ([]dto.FacturaResponse, error) {
	facturas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.FacturaResponse, len(facturas))
	for i := range facturas {
		resp[i] = *facturaToResponse(&facturas[i])
	}
	return resp, nil
}

// ── RegistrarPago ─────────────────────────────────────────────────────────────
// Payments convert at the LIVE rate (falling back to the invoice's frozen rate
// when the register is empty); IGTF, however, always converts at the frozen
// rate because it is part of the invoice document.

func (s *facturaService) RegistrarPago(ctx context.Context, facturaID uuid.UUID, req dto.RegistrarPagoRequest) (*dto.RegistrarPagoResponse, error) {
	factura, err := s.repo.FindByID(ctx, facturaID)
	if err != nil {
		return nil, apierror.NotFound("Factura no encontrada")
	}

	tasaActual := factura.TasaCambio
	if tasa, err := s.tasaRepo.FindActiva(ctx); err == nil {
		tasaActual = tasa.TasaBsUSD
	}

	var montoUSD, montoBs decimal.Decimal
	switch req.Tipo {
	case "dolares":
		if req.MontoUSD == nil || req.MontoUSD.LessThanOrEqual(decimal.Zero) {
			return nil, apierror.Validation("monto_usd es requerido para pagos en dólares")
		}
		montoUSD = *req.MontoUSD
		montoBs = montoUSD.Mul(tasaActual).Round(2)
	case "bolivares":
		if req.MontoBs == nil || req.MontoBs.LessThanOrEqual(decimal.Zero) {
			return nil, apierror.Validation("monto_bs es requerido para pagos en bolívares")
		}
		montoBs = *req.MontoBs
		montoUSD = montoBs.Div(tasaActual).Round(2)
	default:
		return nil, apierror.Validation("tipo de pago inválido: debe ser bolivares o dolares")
	}

	resultado := aplicarPago(factura, req.Tipo, montoBs)

	pago := &model.PagoFactura{
		FacturaID:  facturaID,
		Tipo:       req.Tipo,
		Metodo:     req.Metodo,
		MontoUSD:   montoUSD,
		MontoBs:    montoBs,
		Referencia: req.Referencia,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreatePagoTx(tx, pago); err != nil {
			return err
		}
		return s.repo.UpdateDerivadosTx(tx, facturaID, map[string]interface{}{
			"monto_pagado_bs":    resultado.MontoPagadoBs,
			"saldo_pendiente_bs": resultado.SaldoPendienteBs,
			"estado_pago":        resultado.EstadoPago,
			"aplica_igtf":        resultado.AplicaIGTF,
			"igtf_usd":           resultado.IGTFUSD,
			"igtf_bs":            resultado.IGTFBs,
			"total_final_bs":     resultado.TotalFinalBs,
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.RegistrarPagoResponse{
		Mensaje:          "Pago registrado correctamente",
		MontoPagadoBs:    resultado.MontoPagadoBs,
		SaldoPendienteBs: resultado.SaldoPendienteBs,
		EstadoPago:       resultado.EstadoPago,
		AplicaIGTF:       resultado.AplicaIGTF,
		TotalFinalBs:     resultado.TotalFinalBs,
	}, nil
}

// pagoAplicado carries every derived field recomputed by a payment.
type pagoAplicado struct {
	AplicaIGTF       bool
	IGTFUSD          decimal.Decimal
	IGTFBs           decimal.Decimal
	TotalFinalBs     decimal.Decimal
	MontoPagadoBs    decimal.Decimal
	SaldoPendienteBs decimal.Decimal
	EstadoPago       string
}

// aplicarPago is a pure function: given the current invoice state and one new
// payment, it returns the full set of derived fields. It never mutates its
// inputs, which keeps payment math directly testable.
//
// IGTF activates the moment ANY payment (past or present) is in dólares and
// never deactivates. Both IGTF amounts derive from the invoice's FROZEN rate.
func aplicarPago(f *model.Factura, tipoNuevo string, montoBs decimal.Decimal) pagoAplicado {
	aplicaIGTF := tipoNuevo == "dolares"
	for _, p := range f.Pagos {
		if p.Tipo == "dolares" {
			aplicaIGTF = true
		}
	}

	igtfUSD := decimal.Zero
	igtfBs := decimal.Zero
	totalFinal := f.TotalBs
	if aplicaIGTF {
		igtfUSD = f.TotalUSD.Mul(model.IGTFPorcentaje).Round(2)
		igtfBs = igtfUSD.Mul(f.TasaCambio).Round(2)
		totalFinal = f.TotalBs.Add(igtfBs)
	}

	totalPagado := f.MontoPagadoBs.Add(montoBs)
	saldo := totalFinal.Sub(totalPagado)

	var estado string
	switch {
	case saldo.LessThanOrEqual(decimal.Zero):
		estado = "pagado_total"
	case totalPagado.GreaterThan(decimal.Zero):
		estado = "pagado_parcial"
	default:
		estado = "pendiente"
	}

	if saldo.IsNegative() {
		saldo = decimal.Zero
	}

	return pagoAplicado{
		AplicaIGTF:       aplicaIGTF,
		IGTFUSD:          igtfUSD,
		IGTFBs:           igtfBs,
		TotalFinalBs:     totalFinal,
		MontoPagadoBs:    totalPagado,
		SaldoPendienteBs: saldo,
		EstadoPago:       estado,
	}
}

func facturaToResponse(f *model.Factura) *dto.FacturaResponse {
	items := make([]dto.ItemPresupuestoResponse, 0, len(f.Items))
	for _, item := range f.Items {
		items = append(items, dto.ItemPresupuestoResponse{
			ID:                item.ID.String(),
			Tipo:              item.Tipo,
			Descripcion:       item.Descripcion,
			Cantidad:          item.Cantidad,
			PrecioUnitarioUSD: item.PrecioUnitarioUSD,
			TotalUSD:          item.TotalUSD,
		})
	}

	pagos := make([]dto.PagoFacturaResponse, 0, len(f.Pagos))
	for _, p := range f.Pagos {
		pagos = append(pagos, dto.PagoFacturaResponse{
			ID:         p.ID.String(),
			Tipo:       p.Tipo,
			Metodo:     p.Metodo,
			MontoUSD:   p.MontoUSD,
			MontoBs:    p.MontoBs,
			Referencia: p.Referencia,
			FechaPago:  p.CreatedAt.Format(fechaISO),
		})
	}

	var fechaVencimiento *string
	if f.FechaVencimiento != nil {
		v := f.FechaVencimiento.Format(fechaISO)
		fechaVencimiento = &v
	}

	return &dto.FacturaResponse{
		ID:            f.ID.String(),
		NumeroFactura: f.NumeroFactura,
		PresupuestoID: f.PresupuestoID.String(),
		VehiculoID:    f.VehiculoID.String(),
		ClienteID:     f.ClienteID.String(),
		VehiculoDatos: dto.VehiculoDatosResponse{
			Matricula: f.VehiculoMatricula,
			Color:     f.VehiculoColor,
			Anio:      f.VehiculoAnio,
			KmIngreso: f.KmIngreso,
		},
		Items:            items,
		SubtotalUSD:      f.SubtotalUSD,
		IVAUSD:           f.IVAUSD,
		TotalUSD:         f.TotalUSD,
		TasaCambio:       f.TasaCambio,
		SubtotalBs:       f.SubtotalBs,
		IVABs:            f.IVABs,
		TotalBs:          f.TotalBs,
		AplicaIGTF:       f.AplicaIGTF,
		IGTFUSD:          f.IGTFUSD,
		IGTFBs:           f.IGTFBs,
		TotalFinalBs:     f.TotalFinalBs,
		MontoPagadoBs:    f.MontoPagadoBs,
		SaldoPendienteBs: f.SaldoPendienteBs,
		EstadoPago:       f.EstadoPago,
		Pagos:            pagos,
		FechaVencimiento: fechaVencimiento,
		Observaciones:    f.Observaciones,
		PDFPath:          f.PDFPath,
		CreatedAt:        f.CreatedAt.Format(fechaISO),
	}
}
