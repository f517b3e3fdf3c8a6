package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/TiendaCompu/Trieste-IA/internal/model"
	"github.com/TiendaCompu/Trieste-IA/internal/repository"
)

// ── In-memory stubs ───────────────────────────────────────────────────────────
// Shared across the service tests. All DB() accessors return nil so runTx
// executes callbacks directly, without a real transaction.

var errStubNotFound = errors.New("not found")

// stubClienteRepo is an in-memory ClienteRepository.
type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errStubNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) UpdateCampos(_ context.Context, id uuid.UUID, campos map[string]interface{}) error {
	c, ok := r.clientes[id]
	if !ok {
		return errStubNotFound
	}
	for k, v := range campos {
		switch k {
		case "nombre":
			c.Nombre = v.(string)
		case "telefono":
			tel := v.(string)
			c.Telefono = &tel
		case "empresa":
			emp := v.(string)
			c.Empresa = &emp
		case "email":
			c.Email = v.(string)
		}
	}
	return nil
}

func (r *stubClienteRepo) SearchByNombreEmpresa(_ context.Context, q string, limit int) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		if strings.Contains(c.Nombre, q) || (c.Empresa != nil && strings.Contains(*c.Empresa, q)) {
			out = append(out, *c)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *stubClienteRepo) CountTotal(_ context.Context) (int64, error) {
	return int64(len(r.clientes)), nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// stubVehiculoRepo is an in-memory VehiculoRepository with a plate index and
// captured audit rows.
type stubVehiculoRepo struct {
	vehiculos  map[uuid.UUID]*model.Vehiculo
	cambios    []model.CambioMatricula
	eliminados []model.VehiculoEliminado
}

func newStubVehiculoRepo() *stubVehiculoRepo {
	return &stubVehiculoRepo{vehiculos: make(map[uuid.UUID]*model.Vehiculo)}
}

func (r *stubVehiculoRepo) Create(_ context.Context, v *model.Vehiculo) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.vehiculos[v.ID] = v
	return nil
}

func (r *stubVehiculoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Vehiculo, error) {
	v, ok := r.vehiculos[id]
	if !ok {
		return nil, errStubNotFound
	}
	return v, nil
}

func (r *stubVehiculoRepo) FindByMatricula(_ context.Context, matricula string) (*model.Vehiculo, error) {
	for _, v := range r.vehiculos {
		if v.Matricula == matricula {
			return v, nil
		}
	}
	return nil, errStubNotFound
}

func (r *stubVehiculoRepo) List(_ context.Context) ([]model.Vehiculo, error) {
	out := make([]model.Vehiculo, 0, len(r.vehiculos))
	for _, v := range r.vehiculos {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVehiculoRepo) ListByClienteID(_ context.Context, clienteID uuid.UUID) ([]model.Vehiculo, error) {
	var out []model.Vehiculo
	for _, v := range r.vehiculos {
		if v.ClienteID == clienteID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVehiculoRepo) SearchByMatricula(_ context.Context, q string, limit int) ([]model.Vehiculo, error) {
	var out []model.Vehiculo
	for _, v := range r.vehiculos {
		if strings.Contains(v.Matricula, q) {
			out = append(out, *v)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *stubVehiculoRepo) UpdateCampos(_ context.Context, id uuid.UUID, campos map[string]interface{}) error {
	v, ok := r.vehiculos[id]
	if !ok {
		return errStubNotFound
	}
	for k, val := range campos {
		switch k {
		case "marca":
			v.Marca = val.(string)
		case "modelo":
			v.Modelo = val.(string)
		case "anio":
			anio := val.(int)
			v.Anio = &anio
		case "color":
			color := val.(string)
			v.Color = &color
		case "kilometraje":
			km := val.(int)
			v.Kilometraje = &km
		case "cliente_id":
			v.ClienteID = val.(uuid.UUID)
		}
	}
	return nil
}

func (r *stubVehiculoRepo) UpdateMatriculaTx(_ *gorm.DB, id uuid.UUID, matricula string) error {
	v, ok := r.vehiculos[id]
	if !ok {
		return errStubNotFound
	}
	v.Matricula = matricula
	return nil
}

func (r *stubVehiculoRepo) UpdateKilometrajeTx(_ *gorm.DB, id uuid.UUID, kilometraje int) error {
	v, ok := r.vehiculos[id]
	if !ok {
		return errStubNotFound
	}
	v.Kilometraje = &kilometraje
	return nil
}

func (r *stubVehiculoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.vehiculos, id)
	return nil
}

func (r *stubVehiculoRepo) CreateCambioMatriculaTx(_ *gorm.DB, c *model.CambioMatricula) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	r.cambios = append(r.cambios, *c)
	return nil
}

func (r *stubVehiculoRepo) CreateEliminadoTx(_ *gorm.DB, e *model.VehiculoEliminado) error {
	e.ID = uuid.New()
	r.eliminados = append(r.eliminados, *e)
	return nil
}

func (r *stubVehiculoRepo) ListCambiosMatricula(_ context.Context, vehiculoID uuid.UUID) ([]model.CambioMatricula, error) {
	var out []model.CambioMatricula
	for _, c := range r.cambios {
		if c.VehiculoID == vehiculoID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubVehiculoRepo) CountTotal(_ context.Context) (int64, error) {
	return int64(len(r.vehiculos)), nil
}

func (r *stubVehiculoRepo) DB() *gorm.DB { return nil }

var _ repository.VehiculoRepository = (*stubVehiculoRepo)(nil)

// stubOrdenRepo only models what the dependent services need: referential
// counts and stored orders.
type stubOrdenRepo struct {
	ordenes            map[uuid.UUID]*model.OrdenTrabajo
	activasPorVehiculo map[uuid.UUID]int64
	activasPorMecanico map[uuid.UUID]int64
	activasConItem     map[uuid.UUID]int64
}

func newStubOrdenRepo() *stubOrdenRepo {
	return &stubOrdenRepo{
		ordenes:            make(map[uuid.UUID]*model.OrdenTrabajo),
		activasPorVehiculo: make(map[uuid.UUID]int64),
		activasPorMecanico: make(map[uuid.UUID]int64),
		activasConItem:     make(map[uuid.UUID]int64),
	}
}

func (r *stubOrdenRepo) Create(_ context.Context, o *model.OrdenTrabajo) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.ordenes[o.ID] = o
	return nil
}

func (r *stubOrdenRepo) FindByID(_ context.Context, id uuid.UUID) (*model.OrdenTrabajo, error) {
	o, ok := r.ordenes[id]
	if !ok {
		return nil, errStubNotFound
	}
	return o, nil
}

func (r *stubOrdenRepo) List(_ context.Context, estado, filtro string) ([]model.OrdenTrabajo, error) {
	var out []model.OrdenTrabajo
	for _, o := range r.ordenes {
		switch {
		case estado != "" && o.Estado != estado:
			continue
		case filtro == "activas" && o.Estado == model.EstadoOrdenEntregado:
			continue
		case filtro == "entregadas" && o.Estado != model.EstadoOrdenEntregado:
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOrdenRepo) ListByVehiculoID(_ context.Context, vehiculoID uuid.UUID) ([]model.OrdenTrabajo, error) {
	var out []model.OrdenTrabajo
	for _, o := range r.ordenes {
		if o.VehiculoID == vehiculoID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrdenRepo) UpdateCampos(_ context.Context, id uuid.UUID, campos map[string]interface{}) error {
	o, ok := r.ordenes[id]
	if !ok {
		return errStubNotFound
	}
	for k, v := range campos {
		switch k {
		case "estado":
			o.Estado = v.(string)
		case "mecanico_id":
			mid := v.(uuid.UUID)
			o.MecanicoID = &mid
		case "diagnostico":
			d := v.(string)
			o.Diagnostico = &d
		case "observaciones":
			obs := v.(string)
			o.Observaciones = &obs
		case "presupuesto_total":
			total := v.(decimal.Decimal)
			o.PresupuestoTotal = &total
		case "aprobado_cliente":
			o.AprobadoCliente = v.(bool)
		case "fecha_estimada_entrega":
			fecha := v.(time.Time)
			o.FechaEstimadaEntrega = &fecha
		}
	}
	return nil
}

func (r *stubOrdenRepo) ReplaceItems(_ context.Context, id uuid.UUID, items []model.OrdenItem) error {
	o, ok := r.ordenes[id]
	if !ok {
		return errStubNotFound
	}
	o.Items = items
	return nil
}

func (r *stubOrdenRepo) CountActivasByVehiculo(_ context.Context, vehiculoID uuid.UUID) (int64, error) {
	return r.activasPorVehiculo[vehiculoID], nil
}

func (r *stubOrdenRepo) CountNoEntregadasByMecanico(_ context.Context, mecanicoID uuid.UUID) (int64, error) {
	return r.activasPorMecanico[mecanicoID], nil
}

func (r *stubOrdenRepo) CountActivasConItem(_ context.Context, servicioRepuestoID uuid.UUID) (int64, error) {
	return r.activasConItem[servicioRepuestoID], nil
}

func (r *stubOrdenRepo) MarcarVehiculoEliminadoTx(_ *gorm.DB, vehiculoID uuid.UUID, matriculaOriginal string) error {
	for _, o := range r.ordenes {
		if o.VehiculoID == vehiculoID {
			o.VehiculoEliminado = true
			o.MatriculaOriginal = &matriculaOriginal
		}
	}
	return nil
}

func (r *stubOrdenRepo) CountTotal(_ context.Context) (int64, error) {
	return int64(len(r.ordenes)), nil
}

func (r *stubOrdenRepo) CountActivas(_ context.Context) (int64, error) {
	var n int64
	for _, o := range r.ordenes {
		if o.Estado != model.EstadoOrdenEntregado {
			n++
		}
	}
	return n, nil
}

func (r *stubOrdenRepo) CountPorEstado(_ context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, o := range r.ordenes {
		out[o.Estado]++
	}
	return out, nil
}

var _ repository.OrdenRepository = (*stubOrdenRepo)(nil)

// stubKilometrajeRepo captures odometer ledger rows.
type stubKilometrajeRepo struct {
	entradas []model.HistorialKilometraje
}

func (r *stubKilometrajeRepo) CreateTx(_ *gorm.DB, h *model.HistorialKilometraje) error {
	h.ID = uuid.New()
	h.CreatedAt = time.Now()
	r.entradas = append(r.entradas, *h)
	return nil
}

func (r *stubKilometrajeRepo) ListByVehiculoID(_ context.Context, vehiculoID uuid.UUID) ([]model.HistorialKilometraje, error) {
	var out []model.HistorialKilometraje
	for i := len(r.entradas) - 1; i >= 0; i-- {
		if r.entradas[i].VehiculoID == vehiculoID {
			out = append(out, r.entradas[i])
		}
	}
	return out, nil
}

var _ repository.KilometrajeRepository = (*stubKilometrajeRepo)(nil)

// stubTasaRepo keeps the full rate history in insertion order.
type stubTasaRepo struct {
	tasas []*model.TasaCambio
}

func (r *stubTasaRepo) SetActiva(_ context.Context, t *model.TasaCambio) error {
	for _, prev := range r.tasas {
		prev.Activa = false
	}
	t.ID = uuid.New()
	t.Activa = true
	t.CreatedAt = time.Now()
	r.tasas = append(r.tasas, t)
	return nil
}

func (r *stubTasaRepo) FindActiva(_ context.Context) (*model.TasaCambio, error) {
	for i := len(r.tasas) - 1; i >= 0; i-- {
		if r.tasas[i].Activa {
			return r.tasas[i], nil
		}
	}
	return nil, errStubNotFound
}

func (r *stubTasaRepo) List(_ context.Context, limit int) ([]model.TasaCambio, error) {
	var out []model.TasaCambio
	for i := len(r.tasas) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *r.tasas[i])
	}
	return out, nil
}

var _ repository.TasaCambioRepository = (*stubTasaRepo)(nil)

// stubSecuenciaRepo increments named yearly counters in memory.
type stubSecuenciaRepo struct {
	valores map[string]int64
}

func newStubSecuenciaRepo() *stubSecuenciaRepo {
	return &stubSecuenciaRepo{valores: make(map[string]int64)}
}

func (r *stubSecuenciaRepo) NextTx(_ *gorm.DB, nombre string, anio int) (int64, error) {
	key := fmt.Sprintf("%s-%d", nombre, anio)
	r.valores[key]++
	return r.valores[key], nil
}

var _ repository.SecuenciaRepository = (*stubSecuenciaRepo)(nil)

// stubPresupuestoRepo is an in-memory PresupuestoRepository.
type stubPresupuestoRepo struct {
	presupuestos map[uuid.UUID]*model.Presupuesto
}

func newStubPresupuestoRepo() *stubPresupuestoRepo {
	return &stubPresupuestoRepo{presupuestos: make(map[uuid.UUID]*model.Presupuesto)}
}

func (r *stubPresupuestoRepo) CreateTx(_ *gorm.DB, p *model.Presupuesto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.presupuestos[p.ID] = p
	return nil
}

func (r *stubPresupuestoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Presupuesto, error) {
	p, ok := r.presupuestos[id]
	if !ok {
		return nil, errStubNotFound
	}
	return p, nil
}

func (r *stubPresupuestoRepo) List(_ context.Context) ([]model.Presupuesto, error) {
	out := make([]model.Presupuesto, 0, len(r.presupuestos))
	for _, p := range r.presupuestos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPresupuestoRepo) UpdateCampos(_ context.Context, id uuid.UUID, campos map[string]interface{}) error {
	p, ok := r.presupuestos[id]
	if !ok {
		return errStubNotFound
	}
	if v, ok := campos["estado"]; ok {
		p.Estado = v.(string)
	}
	if v, ok := campos["fecha_aprobacion"]; ok {
		if t, ok := v.(time.Time); ok {
			p.FechaAprobacion = &t
		}
	}
	return nil
}

func (r *stubPresupuestoRepo) DB() *gorm.DB { return nil }

var _ repository.PresupuestoRepository = (*stubPresupuestoRepo)(nil)

// stubMecanicoRepo is an in-memory MecanicoRepository.
type stubMecanicoRepo struct {
	mecanicos map[uuid.UUID]*model.Mecanico
}

func newStubMecanicoRepo() *stubMecanicoRepo {
	return &stubMecanicoRepo{mecanicos: make(map[uuid.UUID]*model.Mecanico)}
}

func (r *stubMecanicoRepo) Create(_ context.Context, m *model.Mecanico) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.mecanicos[m.ID] = m
	return nil
}

func (r *stubMecanicoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Mecanico, error) {
	m, ok := r.mecanicos[id]
	if !ok {
		return nil, errStubNotFound
	}
	return m, nil
}

func (r *stubMecanicoRepo) List(_ context.Context) ([]model.Mecanico, error) {
	out := make([]model.Mecanico, 0, len(r.mecanicos))
	for _, m := range r.mecanicos {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMecanicoRepo) ListActivos(_ context.Context) ([]model.Mecanico, error) {
	var out []model.Mecanico
	for _, m := range r.mecanicos {
		if m.Activo {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMecanicoRepo) UpdateCampos(_ context.Context, id uuid.UUID, campos map[string]interface{}) error {
	m, ok := r.mecanicos[id]
	if !ok {
		return errStubNotFound
	}
	for k, v := range campos {
		switch k {
		case "nombre":
			m.Nombre = v.(string)
		case "especialidad":
			m.Especialidad = v.(string)
		case "telefono":
			tel := v.(string)
			m.Telefono = &tel
		case "estado":
			m.Estado = v.(string)
		case "activo":
			m.Activo = v.(bool)
		}
	}
	return nil
}

func (r *stubMecanicoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.mecanicos[id]; !ok {
		return errStubNotFound
	}
	delete(r.mecanicos, id)
	return nil
}

var _ repository.MecanicoRepository = (*stubMecanicoRepo)(nil)

// stubCatalogoRepo is an in-memory CatalogoRepository.
type stubCatalogoRepo struct {
	items map[uuid.UUID]*model.ServicioRepuesto
}

func newStubCatalogoRepo() *stubCatalogoRepo {
	return &stubCatalogoRepo{items: make(map[uuid.UUID]*model.ServicioRepuesto)}
}

func (r *stubCatalogoRepo) Create(_ context.Context, item *model.ServicioRepuesto) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubCatalogoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ServicioRepuesto, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, errStubNotFound
	}
	return item, nil
}

func (r *stubCatalogoRepo) List(_ context.Context) ([]model.ServicioRepuesto, error) {
	out := make([]model.ServicioRepuesto, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *stubCatalogoRepo) ListByTipo(_ context.Context, tipo string) ([]model.ServicioRepuesto, error) {
	var out []model.ServicioRepuesto
	for _, item := range r.items {
		if item.Tipo == tipo {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubCatalogoRepo) UpdateCampos(_ context.Context, id uuid.UUID, campos map[string]interface{}) error {
	item, ok := r.items[id]
	if !ok {
		return errStubNotFound
	}
	for k, v := range campos {
		switch k {
		case "tipo":
			item.Tipo = v.(string)
		case "nombre":
			item.Nombre = v.(string)
		case "descripcion":
			desc := v.(string)
			item.Descripcion = &desc
		case "precio":
			item.Precio = v.(decimal.Decimal)
		}
	}
	return nil
}

func (r *stubCatalogoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return errStubNotFound
	}
	delete(r.items, id)
	return nil
}

var _ repository.CatalogoRepository = (*stubCatalogoRepo)(nil)

// stubUsuarioRepo is an in-memory UsuarioRepository with soft-delete support.
type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errStubNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errStubNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.Activo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) ListAll(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	if _, ok := r.usuarios[u.ID]; !ok {
		return errStubNotFound
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errStubNotFound
	}
	u.Activo = false
	return nil
}

func (r *stubUsuarioRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errStubNotFound
	}
	u.Activo = true
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// stubFacturaRepo applies derived-field updates the way the SQL layer would.
type stubFacturaRepo struct {
	facturas map[uuid.UUID]*model.Factura
}

func newStubFacturaRepo() *stubFacturaRepo {
	return &stubFacturaRepo{facturas: make(map[uuid.UUID]*model.Factura)}
}

func (r *stubFacturaRepo) CreateTx(_ *gorm.DB, f *model.Factura) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.facturas[f.ID] = f
	return nil
}

func (r *stubFacturaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Factura, error) {
	f, ok := r.facturas[id]
	if !ok {
		return nil, errStubNotFound
	}
	return f, nil
}

func (r *stubFacturaRepo) List(_ context.Context) ([]model.Factura, error) {
	out := make([]model.Factura, 0, len(r.facturas))
	for _, f := range r.facturas {
		out = append(out, *f)
	}
	return out, nil
}

func (r *stubFacturaRepo) CreatePagoTx(_ *gorm.DB, p *model.PagoFactura) error {
	f, ok := r.facturas[p.FacturaID]
	if !ok {
		return errStubNotFound
	}
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	f.Pagos = append(f.Pagos, *p)
	return nil
}

func (r *stubFacturaRepo) UpdateDerivadosTx(_ *gorm.DB, id uuid.UUID, campos map[string]interface{}) error {
	f, ok := r.facturas[id]
	if !ok {
		return errStubNotFound
	}
	for k, v := range campos {
		switch k {
		case "monto_pagado_bs":
			f.MontoPagadoBs = v.(decimal.Decimal)
		case "saldo_pendiente_bs":
			f.SaldoPendienteBs = v.(decimal.Decimal)
		case "estado_pago":
			f.EstadoPago = v.(string)
		case "aplica_igtf":
			f.AplicaIGTF = v.(bool)
		case "igtf_usd":
			f.IGTFUSD = v.(decimal.Decimal)
		case "igtf_bs":
			f.IGTFBs = v.(decimal.Decimal)
		case "total_final_bs":
			f.TotalFinalBs = v.(decimal.Decimal)
		}
	}
	return nil
}

func (r *stubFacturaRepo) UpdatePDFPath(_ context.Context, id uuid.UUID, path string) error {
	f, ok := r.facturas[id]
	if !ok {
		return errStubNotFound
	}
	f.PDFPath = &path
	return nil
}

func (r *stubFacturaRepo) DB() *gorm.DB { return nil }

var _ repository.FacturaRepository = (*stubFacturaRepo)(nil)
