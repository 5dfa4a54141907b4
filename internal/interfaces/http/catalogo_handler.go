package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/application/usecase"
)

// CatalogoHandler handler genérico para las tablas de catálogo. Se
// instancia una vez por catálogo; toJSON adapta la respuesta genérica
// a los nombres de campo propios de cada tabla.
type CatalogoHandler struct {
	uc     *usecase.CatalogoUseCase
	nombre string
	toJSON func(dto.CatalogoResponse) any
}

// NewCatalogoHandler construye el handler para un catálogo.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase, nombre string, toJSON func(dto.CatalogoResponse) any) *CatalogoHandler {
	if toJSON == nil {
		toJSON = func(r dto.CatalogoResponse) any { return r }
	}
	return &CatalogoHandler{uc: uc, nombre: nombre, toJSON: toJSON}
}

// Create crea una entrada del catálogo.
func (h *CatalogoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCatalogoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.toJSON(*out))
}

// List lista todas las entradas del catálogo.
func (h *CatalogoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]any, 0, len(list))
	for _, item := range list {
		out = append(out, h.toJSON(item))
	}
	return c.JSON(out)
}

// GetByID obtiene una entrada por ID.
func (h *CatalogoHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, h.nombre+" no encontrado")
	}
	return c.JSON(h.toJSON(*out))
}

// Delete elimina una entrada.
func (h *CatalogoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeleteResponse{Deleted: true, ID: id})
}
