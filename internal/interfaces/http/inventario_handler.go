package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/application/usecase"
	"github.com/tu-usuario/farmacia-api/internal/domain"
)

// InventarioHandler maneja las peticiones HTTP para inventario, lotes
// y ubicaciones.
type InventarioHandler struct {
	uc *usecase.InventarioUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *usecase.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario con lote y ubicación
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id_producto  query  int  false  "Filtrar por producto"
// @Success      200  {array}  dto.InventarioResponse
// @Router       /api/inventario [get]
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	if q := c.Query("id_producto"); q != "" {
		idProducto, err := strconv.ParseInt(q, 10, 64)
		if err != nil || idProducto <= 0 {
			return respondError(c, domain.ErrInvalidInput)
		}
		out, err := h.uc.ListByProducto(idProducto)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	limit, offset := pageFrom(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener fila de inventario por ID
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de inventario"
// @Success      200  {object}  dto.InventarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{id} [get]
func (h *InventarioHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetInventario(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "inventario no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar inventario de un lote
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventarioRequest  true  "Datos de inventario"
// @Success      201   {object}  dto.InventarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventario [post]
func (h *InventarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateInventario(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStock godoc
// @Summary      Reemplazar el stock actual
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                          true  "ID de inventario"
// @Param        body  body  dto.UpdateInventarioRequest  true  "Nuevo stock"
// @Success      200   {object}  dto.InventarioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/{id} [patch]
func (h *InventarioHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStock(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateLote godoc
// @Summary      Registrar lote recibido
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLoteRequest  true  "Datos del lote"
// @Success      201   {object}  dto.LoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/lotes [post]
func (h *InventarioHandler) CreateLote(c *fiber.Ctx) error {
	var in dto.CreateLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateLote(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListLotes godoc
// @Summary      Listar lotes
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LoteResponse
// @Router       /api/lotes [get]
func (h *InventarioHandler) ListLotes(c *fiber.Ctx) error {
	limit, offset := pageFrom(c)
	out, err := h.uc.ListLotes(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetLote godoc
// @Summary      Obtener lote por ID
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del lote"
// @Success      200  {object}  dto.LoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id} [get]
func (h *InventarioHandler) GetLote(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetLote(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "lote no encontrado")
	}
	return c.JSON(out)
}

// CreateUbicacion godoc
// @Summary      Crear ubicación de estante
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUbicacionRequest  true  "Estante y nivel"
// @Success      201   {object}  dto.UbicacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ubicaciones [post]
func (h *InventarioHandler) CreateUbicacion(c *fiber.Ctx) error {
	var in dto.CreateUbicacionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateUbicacion(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListUbicaciones godoc
// @Summary      Listar ubicaciones de estante
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UbicacionResponse
// @Router       /api/ubicaciones [get]
func (h *InventarioHandler) ListUbicaciones(c *fiber.Ctx) error {
	out, err := h.uc.ListUbicaciones()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
