package router

import (
	"time"

	"github.com/TiendaCompu/Trieste-IA/internal/config"
	"github.com/TiendaCompu/Trieste-IA/internal/handler"
	"github.com/TiendaCompu/Trieste-IA/internal/infra"
	"github.com/TiendaCompu/Trieste-IA/internal/middleware"
	"github.com/TiendaCompu/Trieste-IA/internal/repository"
	"github.com/TiendaCompu/Trieste-IA/internal/service"
	"github.com/TiendaCompu/Trieste-IA/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns the configured Gin engine plus the
// background worker pool (started by the caller once the engine is serving).
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, *worker.Pool) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	extractorClient := infra.NewExtractorClient(cfg.ExtractorURL, cfg.ExtractorKey, cfg.ExtractorModel)
	mailer := infra.NewMailer(cfg)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	vehiculoRepo := repository.NewVehiculoRepository(db)
	kilometrajeRepo := repository.NewKilometrajeRepository(db)
	mecanicoRepo := repository.NewMecanicoRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	ordenRepo := repository.NewOrdenRepository(db)
	tasaRepo := repository.NewTasaCambioRepository(db)
	presupuestoRepo := repository.NewPresupuestoRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)
	secuenciaRepo := repository.NewSecuenciaRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo)
	vehiculoSvc := service.NewVehiculoService(vehiculoRepo, clienteRepo, ordenRepo)
	kilometrajeSvc := service.NewKilometrajeService(kilometrajeRepo, vehiculoRepo)
	mecanicoSvc := service.NewMecanicoService(mecanicoRepo, ordenRepo)
	catalogoSvc := service.NewCatalogoService(catalogoRepo, ordenRepo)
	ordenSvc := service.NewOrdenService(ordenRepo, vehiculoRepo, clienteRepo, mecanicoRepo, catalogoRepo)
	tasaSvc := service.NewTasaCambioService(tasaRepo, rdb)
	presupuestoSvc := service.NewPresupuestoService(presupuestoRepo, vehiculoRepo, clienteRepo, secuenciaRepo)
	facturaSvc := service.NewFacturaService(facturaRepo, presupuestoRepo, vehiculoRepo, clienteRepo, tasaRepo, secuenciaRepo, dispatcher)
	busquedaSvc := service.NewBusquedaService(vehiculoRepo, clienteRepo)
	extraccionSvc := service.NewExtraccionService(extractorClient)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	vehiculosH := handler.NewVehiculosHandler(vehiculoSvc, kilometrajeSvc)
	mecanicosH := handler.NewMecanicosHandler(mecanicoSvc)
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	ordenesH := handler.NewOrdenesHandler(ordenSvc)
	tasaH := handler.NewTasaCambioHandler(tasaSvc)
	presupuestosH := handler.NewPresupuestosHandler(presupuestoSvc)
	facturasH := handler.NewFacturasHandler(facturaSvc)
	buscarH := handler.NewBuscarHandler(busquedaSvc)
	extraccionH := handler.NewExtraccionHandler(extraccionSvc)

	// ── Worker pool ──────────────────────────────────────────────────────────
	pool := worker.NewPool(rdb)
	pool.Register("factura_pdf", worker.NewFacturaPDFWorker(facturaRepo, dispatcher, rdb, cfg.PDFStoragePath, cfg.NombreTaller))
	pool.Register("email", worker.NewEmailWorker(mailer))

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	todos := middleware.RequireRole("recepcion", "supervisor", "administrador")
	gestion := middleware.RequireRole("supervisor", "administrador")

	api := r.Group("/api", jwtMW)
	{
		// Clientes — front desk operates these daily
		api.POST("/clientes", todos, clientesH.Crear)
		api.GET("/clientes", todos, clientesH.Listar)
		api.GET("/clientes/:id", todos, clientesH.Obtener)
		api.PUT("/clientes/:id", todos, clientesH.Actualizar)

		// Vehículos — plate changes and deletion need supervision
		api.POST("/vehiculos", todos, vehiculosH.Crear)
		api.GET("/vehiculos", todos, vehiculosH.Listar)
		api.GET("/vehiculos/verificar-matricula/:matricula", todos, vehiculosH.VerificarMatricula)
		api.GET("/vehiculos/:id", todos, vehiculosH.Obtener)
		api.PUT("/vehiculos/:id", todos, vehiculosH.Actualizar)
		api.POST("/vehiculos/:id/actualizar-kilometraje", todos, vehiculosH.ActualizarKilometraje)
		api.GET("/vehiculos/:id/historial-kilometraje", todos, vehiculosH.HistorialKilometraje)
		api.POST("/vehiculos/:id/cambio-matricula", gestion, vehiculosH.CambiarMatricula)
		api.GET("/vehiculos/:id/historial-matriculas", todos, vehiculosH.HistorialMatriculas)
		api.DELETE("/vehiculos/:id", gestion, vehiculosH.Eliminar)

		// Mecánicos
		api.GET("/mecanicos", todos, mecanicosH.Listar)
		api.POST("/mecanicos", gestion, mecanicosH.Crear)
		api.PUT("/mecanicos/:id", gestion, mecanicosH.Actualizar)
		api.DELETE("/mecanicos/:id", gestion, mecanicosH.Eliminar)

		// Catálogo de servicios y repuestos
		api.GET("/servicios-repuestos", todos, catalogoH.Listar)
		api.GET("/servicios-repuestos/tipo/:tipo", todos, catalogoH.ListarPorTipo)
		api.POST("/servicios-repuestos", gestion, catalogoH.Crear)
		api.PUT("/servicios-repuestos/:id", gestion, catalogoH.Actualizar)
		api.DELETE("/servicios-repuestos/:id", gestion, catalogoH.Eliminar)

		// Órdenes de trabajo
		api.POST("/ordenes", todos, ordenesH.Crear)
		api.GET("/ordenes", todos, ordenesH.Listar)
		api.GET("/ordenes/vehiculo/:vehiculo_id", todos, ordenesH.HistorialVehiculo)
		api.GET("/ordenes/:id", todos, ordenesH.Obtener)
		api.PUT("/ordenes/:id", todos, ordenesH.Actualizar)

		// Dashboard
		api.GET("/dashboard/estadisticas", todos, ordenesH.Estadisticas)

		// Tasa de cambio — only management registers new rates
		api.POST("/tasa-cambio", gestion, tasaH.Crear)
		api.GET("/tasa-cambio/actual", todos, tasaH.Actual)
		api.GET("/tasa-cambio/historial", todos, tasaH.Historial)

		// Presupuestos — approval is a management decision
		api.POST("/presupuestos", todos, presupuestosH.Crear)
		api.GET("/presupuestos", todos, presupuestosH.Listar)
		api.GET("/presupuestos/:id", todos, presupuestosH.Obtener)
		api.PUT("/presupuestos/:id/aprobar", gestion, presupuestosH.Aprobar)
		api.PUT("/presupuestos/:id/rechazar", gestion, presupuestosH.Rechazar)

		// Facturas — emission restricted, payments taken at front desk
		api.POST("/facturas", gestion, facturasH.Crear)
		api.GET("/facturas", todos, facturasH.Listar)
		api.GET("/facturas/:id", todos, facturasH.Obtener)
		api.POST("/facturas/:id/pagos", todos, facturasH.RegistrarPago)

		// Búsqueda general
		api.GET("/buscar", todos, buscarH.Buscar)

		// Extracción de datos con IA
		api.POST("/ai/extraer-datos", todos, extraccionH.ExtraerDatos)

		// Usuarios — administración del sistema
		usuarios := api.Group("/usuarios", middleware.RequireRole("administrador"))
		{
			usuarios.POST("", authH.CrearUsuario)
			usuarios.GET("", authH.ListarUsuarios)
			usuarios.PUT("/:id", authH.ActualizarUsuario)
			usuarios.DELETE("/:id", authH.DesactivarUsuario)
			usuarios.PUT("/:id/reactivar", authH.ReactivarUsuario)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, pool
}
