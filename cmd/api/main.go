package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/farmacia-api/internal/application/auth"
	"github.com/tu-usuario/farmacia-api/internal/application/pedidos"
	"github.com/tu-usuario/farmacia-api/internal/application/usecase"
	"github.com/tu-usuario/farmacia-api/internal/application/ventas"
	"github.com/tu-usuario/farmacia-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/farmacia-api/internal/interfaces/http"
	"github.com/tu-usuario/farmacia-api/pkg/config"
	"github.com/tu-usuario/farmacia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	contactoRepo := postgres.NewContactoProveedorRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	inventarioRepo := postgres.NewInventarioRepository(pool)
	loteRepo := postgres.NewLoteRepository(pool)
	ubicacionRepo := postgres.NewUbicacionRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	pagoRepo := postgres.NewPagoRepository(pool)
	comprobanteRepo := postgres.NewComprobanteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	rolRepo := postgres.NewCatalogoRepository(pool, "rol", "id_rol", "nombre_rol")
	cargoRepo := postgres.NewCatalogoRepository(pool, "cargo", "id_cargo", "descripcion")
	categoriaRepo := postgres.NewCatalogoRepository(pool, "categoria", "id_categoria", "nombre_categoria")
	presentacionRepo := postgres.NewCatalogoRepository(pool, "presentacion", "id_presentacion", "desc_presentacion")
	componenteRepo := postgres.NewCatalogoRepository(pool, "componente", "id_componente", "nombre_componente")
	estadoPedidoRepo := postgres.NewCatalogoRepository(pool, "estado_pedido", "id_estado_pedido", "descripcion")
	motivoPedidoRepo := postgres.NewCatalogoRepository(pool, "motivo_pedido", "id_motivo_pedido", "descripcion")
	metodoPagoRepo := postgres.NewCatalogoRepository(pool, "metodo_pago", "id_metodo_pago", "descripcion")

	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, txRunner)
	clienteUC := usecase.NewClienteUseCase(clienteRepo, txRunner)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo, contactoRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo, txRunner)
	inventarioUC := usecase.NewInventarioUseCase(inventarioRepo, loteRepo, ubicacionRepo, productoRepo)
	compraUC := usecase.NewCompraUseCase(compraRepo, pedidoRepo)
	pedidoSvc := pedidos.NewService(txRunner, pedidoRepo, proveedorRepo, productoRepo, estadoPedidoRepo, motivoPedidoRepo)
	ventaSvc := ventas.NewService(txRunner, ventaRepo, pagoRepo, comprobanteRepo, clienteRepo, productoRepo, metodoPagoRepo)
	authUC := auth.NewUseCase(usuarioRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Farmacia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UsuarioUC:      usuarioUC,
		ClienteUC:      clienteUC,
		ProveedorUC:    proveedorUC,
		ProductoUC:     productoUC,
		InventarioUC:   inventarioUC,
		CompraUC:       compraUC,
		PedidoSvc:      pedidoSvc,
		VentaSvc:       ventaSvc,
		AuthUC:         authUC,
		RolUC:          usecase.NewCatalogoUseCase(rolRepo),
		CargoUC:        usecase.NewCatalogoUseCase(cargoRepo),
		CategoriaUC:    usecase.NewCatalogoUseCase(categoriaRepo),
		PresentacionUC: usecase.NewCatalogoUseCase(presentacionRepo),
		ComponenteUC:   usecase.NewCatalogoUseCase(componenteRepo),
		EstadoPedidoUC: usecase.NewCatalogoUseCase(estadoPedidoRepo),
		MotivoPedidoUC: usecase.NewCatalogoUseCase(motivoPedidoRepo),
		MetodoPagoUC:   usecase.NewCatalogoUseCase(metodoPagoRepo),
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
