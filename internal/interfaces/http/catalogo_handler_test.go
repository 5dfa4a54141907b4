package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/application/usecase"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/farmacia-api/internal/interfaces/http"
)

type fakeCatalogoRepo struct {
	items  []entity.CatalogoItem
	nextID int64
	usados map[int64]bool
}

func (r *fakeCatalogoRepo) List() ([]entity.CatalogoItem, error) { return r.items, nil }

func (r *fakeCatalogoRepo) GetByID(id int64) (*entity.CatalogoItem, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			return &r.items[i], nil
		}
	}
	return nil, nil
}

func (r *fakeCatalogoRepo) GetByDescripcion(desc string) (*entity.CatalogoItem, error) {
	for i := range r.items {
		if r.items[i].Descripcion == desc {
			return &r.items[i], nil
		}
	}
	return nil, nil
}

func (r *fakeCatalogoRepo) Create(item *entity.CatalogoItem) error {
	r.nextID++
	item.ID = r.nextID
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeCatalogoRepo) Delete(id int64) error {
	if r.usados[id] {
		return domain.ErrReferencia
	}
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// buildCatalogoApp monta el handler de categorías sin middleware de auth.
func buildCatalogoApp(repo *fakeCatalogoRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewCatalogoHandler(usecase.NewCatalogoUseCase(repo), "categoría", func(r dto.CatalogoResponse) any {
		return dto.CategoriaResponse{IDCategoria: r.ID, NombreCategoria: r.Descripcion}
	})
	grp := app.Group("/api/categorias")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.GetByID)
	grp.Delete("/:id", h.Delete)
	return app
}

// Crear responde 201 con los nombres de campo propios del catálogo.
func TestCatalogoHandler_Create201(t *testing.T) {
	app := buildCatalogoApp(&fakeCatalogoRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/categorias/",
		strings.NewReader(`{"descripcion":"Analgésico"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.CategoriaResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body.IDCategoria)
	assert.Equal(t, "Analgésico", body.NombreCategoria)
}

// Crear con descripción repetida responde 400, no 500 ni silencio.
func TestCatalogoHandler_Duplicado400(t *testing.T) {
	repo := &fakeCatalogoRepo{}
	app := buildCatalogoApp(repo)

	body := `{"descripcion":"Analgésico"}`
	req := httptest.NewRequest(http.MethodPost, "/api/categorias/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/api/categorias/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Len(t, repo.items, 1, "el segundo intento no debe escribir")
}

// GET de un id ausente responde 404.
func TestCatalogoHandler_GetInexistente404(t *testing.T) {
	app := buildCatalogoApp(&fakeCatalogoRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/categorias/42", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// DELETE de un id ausente responde 404; de uno referenciado, 400.
func TestCatalogoHandler_Delete(t *testing.T) {
	repo := &fakeCatalogoRepo{usados: map[int64]bool{}}
	app := buildCatalogoApp(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/categorias/",
		strings.NewReader(`{"descripcion":"Antibiótico"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	req = httptest.NewRequest(http.MethodDelete, "/api/categorias/999", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	repo.usados[1] = true
	req = httptest.NewRequest(http.MethodDelete, "/api/categorias/1", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Un id no numérico responde 400, no 500.
func TestCatalogoHandler_IDInvalido400(t *testing.T) {
	app := buildCatalogoApp(&fakeCatalogoRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/categorias/abc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
