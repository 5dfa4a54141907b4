package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/farmacia-api/internal/application/auth"
	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/application/pedidos"
	"github.com/tu-usuario/farmacia-api/internal/application/usecase"
	"github.com/tu-usuario/farmacia-api/internal/application/ventas"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UsuarioUC    *usecase.UsuarioUseCase
	ClienteUC    *usecase.ClienteUseCase
	ProveedorUC  *usecase.ProveedorUseCase
	ProductoUC   *usecase.ProductoUseCase
	InventarioUC *usecase.InventarioUseCase
	CompraUC     *usecase.CompraUseCase
	PedidoSvc    *pedidos.Service
	VentaSvc     *ventas.Service
	AuthUC       *auth.UseCase

	// Catálogos, uno por tabla id + descripción.
	RolUC          *usecase.CatalogoUseCase
	CargoUC        *usecase.CatalogoUseCase
	CategoriaUC    *usecase.CatalogoUseCase
	PresentacionUC *usecase.CatalogoUseCase
	ComponenteUC   *usecase.CatalogoUseCase
	EstadoPedidoUC *usecase.CatalogoUseCase
	MotivoPedidoUC *usecase.CatalogoUseCase
	MetodoPagoUC   *usecase.CatalogoUseCase

	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Patch("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Patch("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Patch("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", proveedorHandler.Delete)
	proveedores.Post("/:id/contactos", proveedorHandler.CreateContacto)
	proveedores.Get("/:id/contactos", proveedorHandler.ListContactos)

	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	// La búsqueda va antes de /:id para que "search" no se tome como id.
	productos.Get("/search", productoHandler.Search)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Patch("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	inventario := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	inventario.Get("/", inventarioHandler.List)
	inventario.Post("/", inventarioHandler.Create)
	inventario.Get("/:id", inventarioHandler.GetByID)
	inventario.Patch("/:id", inventarioHandler.UpdateStock)

	lotes := protected.Group("/lotes")
	lotes.Post("/", inventarioHandler.CreateLote)
	lotes.Get("/", inventarioHandler.ListLotes)
	lotes.Get("/:id", inventarioHandler.GetLote)

	ubicaciones := protected.Group("/ubicaciones")
	ubicaciones.Post("/", inventarioHandler.CreateUbicacion)
	ubicaciones.Get("/", inventarioHandler.ListUbicaciones)

	pedidosGroup := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoSvc)
	pedidosGroup.Post("/", pedidoHandler.Create)
	pedidosGroup.Get("/", pedidoHandler.List)
	pedidosGroup.Get("/:id", pedidoHandler.GetByID)
	pedidosGroup.Patch("/:id", pedidoHandler.Update)
	pedidosGroup.Patch("/:id/estado", pedidoHandler.UpdateEstado)

	compras := protected.Group("/compras")
	compraHandler := NewCompraHandler(deps.CompraUC)
	compras.Post("/", compraHandler.Create)
	compras.Get("/", compraHandler.List)
	compras.Get("/:id", compraHandler.GetByID)
	compras.Patch("/:id", compraHandler.Update)

	ventasGroup := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaSvc)
	ventasGroup.Post("/", ventaHandler.Create)
	ventasGroup.Get("/", ventaHandler.List)
	ventasGroup.Get("/:id", ventaHandler.GetByID)

	registerCatalogo(protected, "/roles", NewCatalogoHandler(deps.RolUC, "rol", func(r dto.CatalogoResponse) any {
		return dto.RolResponse{IDRol: r.ID, NombreRol: r.Descripcion}
	}))
	registerCatalogo(protected, "/cargos", NewCatalogoHandler(deps.CargoUC, "cargo", func(r dto.CatalogoResponse) any {
		return dto.CargoResponse{IDCargo: r.ID, Descripcion: r.Descripcion}
	}))
	registerCatalogo(protected, "/categorias", NewCatalogoHandler(deps.CategoriaUC, "categoría", func(r dto.CatalogoResponse) any {
		return dto.CategoriaResponse{IDCategoria: r.ID, NombreCategoria: r.Descripcion}
	}))
	registerCatalogo(protected, "/presentaciones", NewCatalogoHandler(deps.PresentacionUC, "presentación", func(r dto.CatalogoResponse) any {
		return dto.PresentacionResponse{IDPresentacion: r.ID, DescPresentacion: r.Descripcion}
	}))
	registerCatalogo(protected, "/componentes", NewCatalogoHandler(deps.ComponenteUC, "componente", func(r dto.CatalogoResponse) any {
		return dto.ComponenteResponse{IDComponente: r.ID, NombreComponente: r.Descripcion}
	}))
	registerCatalogo(protected, "/estados-pedido", NewCatalogoHandler(deps.EstadoPedidoUC, "estado de pedido", func(r dto.CatalogoResponse) any {
		return dto.EstadoPedidoResponse{IDEstadoPedido: r.ID, Descripcion: r.Descripcion}
	}))
	registerCatalogo(protected, "/motivos-pedido", NewCatalogoHandler(deps.MotivoPedidoUC, "motivo de pedido", func(r dto.CatalogoResponse) any {
		return dto.MotivoPedidoResponse{IDMotivoPedido: r.ID, Descripcion: r.Descripcion}
	}))
	registerCatalogo(protected, "/metodos-pago", NewCatalogoHandler(deps.MetodoPagoUC, "método de pago", func(r dto.CatalogoResponse) any {
		return dto.MetodoPagoResponse{IDMetodoPago: r.ID, Descripcion: r.Descripcion}
	}))
}

func registerCatalogo(g fiber.Router, path string, h *CatalogoHandler) {
	grp := g.Group(path)
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.GetByID)
	grp.Delete("/:id", h.Delete)
}
