package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/application/usecase"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de ProductoRepository con uniones en memoria. catalogosValidos
// simula las FKs de las tablas de unión: agregar un ID fuera del
// conjunto devuelve ErrReferencia como lo haría PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type productoStore struct {
	productos        []*entity.Producto
	categorias       [][2]int64
	presentaciones   [][2]int64
	componentes      [][2]int64
	nextID           int64
	catalogosValidos map[int64]bool
}

type fakeProductoRepo struct{ s *productoStore }

func (r *fakeProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	return r.s.productos, nil
}

func (r *fakeProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	for _, p := range r.s.productos {
		if p.IDProducto == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	for _, p := range r.s.productos {
		if p.CodigoInterno == codigo {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductoRepo) Search(q string) ([]*entity.Producto, error) {
	return r.s.productos, nil
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	r.s.nextID++
	p.IDProducto = r.s.nextID
	r.s.productos = append(r.s.productos, p)
	return nil
}

func (r *fakeProductoRepo) addJoin(dst *[][2]int64, idProducto, id int64) error {
	if !r.s.catalogosValidos[id] {
		return domain.ErrReferencia
	}
	*dst = append(*dst, [2]int64{idProducto, id})
	return nil
}

func (r *fakeProductoRepo) AddCategoria(idProducto, id int64) error {
	return r.addJoin(&r.s.categorias, idProducto, id)
}

func (r *fakeProductoRepo) AddPresentacion(idProducto, id int64) error {
	return r.addJoin(&r.s.presentaciones, idProducto, id)
}

func (r *fakeProductoRepo) AddComponente(idProducto, id int64) error {
	return r.addJoin(&r.s.componentes, idProducto, id)
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error { return nil }
func (r *fakeProductoRepo) Delete(id int64) error           { return nil }

type fakeProductoTx struct{ s *productoStore }

func (t *fakeProductoTx) RunProducto(ctx context.Context, fn func(repository.ProductoRepository) error) error {
	snapshot := *t.s
	if err := fn(&fakeProductoRepo{s: t.s}); err != nil {
		*t.s = snapshot
		return err
	}
	return nil
}

func buildProductoUC(s *productoStore) *usecase.ProductoUseCase {
	if s.catalogosValidos == nil {
		s.catalogosValidos = map[int64]bool{1: true, 2: true, 3: true}
	}
	return usecase.NewProductoUseCase(&fakeProductoRepo{s: s}, &fakeProductoTx{s: s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El producto se crea con sus uniones y afecta_igv por defecto en true.
func TestCreateProducto_ConUniones(t *testing.T) {
	s := &productoStore{}
	uc := buildProductoUC(s)

	out, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		CodigoInterno:   "PARA500",
		NombreComercial: "Paracetamol 500mg",
		PrecioVenta:     decimal.RequireFromString("2.50"),
		Categorias:      []int64{1},
		Presentaciones:  []int64{2},
		Componentes:     []int64{3},
	})
	require.NoError(t, err)
	assert.True(t, out.AfectaIGV, "afecta_igv debe ser true por defecto")
	assert.Len(t, s.categorias, 1)
	assert.Len(t, s.presentaciones, 1)
	assert.Len(t, s.componentes, 1)
}

// Un código interno repetido reporta conflicto y no crea filas nuevas,
// ni en producto ni en sus tablas de unión.
func TestCreateProducto_CodigoDuplicado(t *testing.T) {
	s := &productoStore{}
	uc := buildProductoUC(s)

	_, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		CodigoInterno:   "PARA500",
		NombreComercial: "Paracetamol 500mg",
		PrecioVenta:     decimal.RequireFromString("2.50"),
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateProductoRequest{
		CodigoInterno:   "PARA500",
		NombreComercial: "Otro nombre",
		PrecioVenta:     decimal.RequireFromString("3.00"),
		Categorias:      []int64{1},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, s.productos, 1, "debe quedar exactamente un producto")
	assert.Empty(t, s.categorias, "el segundo intento no debe dejar uniones")
}

// Una categoría inexistente aborta el agregado: el producto tampoco queda.
func TestCreateProducto_CategoriaInexistente_SinFilasParciales(t *testing.T) {
	s := &productoStore{}
	uc := buildProductoUC(s)

	_, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		CodigoInterno:   "IBU400",
		NombreComercial: "Ibuprofeno 400mg",
		PrecioVenta:     decimal.RequireFromString("1.80"),
		Categorias:      []int64{999},
	})
	assert.ErrorIs(t, err, domain.ErrReferencia)
	assert.Empty(t, s.productos, "el producto debe revertirse con el agregado")
}

// Precio negativo es entrada inválida.
func TestCreateProducto_PrecioNegativo(t *testing.T) {
	s := &productoStore{}
	uc := buildProductoUC(s)

	_, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		CodigoInterno:   "X",
		NombreComercial: "X",
		PrecioVenta:     decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La actualización parcial solo toca los campos presentes.
func TestUpdateProducto_Parcial(t *testing.T) {
	s := &productoStore{}
	uc := buildProductoUC(s)

	created, err := uc.Create(context.Background(), dto.CreateProductoRequest{
		CodigoInterno:   "PARA500",
		NombreComercial: "Paracetamol 500mg",
		PrecioVenta:     decimal.RequireFromString("2.50"),
	})
	require.NoError(t, err)

	nuevoPrecio := decimal.RequireFromString("2.80")
	out, err := uc.Update(created.IDProducto, dto.UpdateProductoRequest{PrecioVenta: &nuevoPrecio})
	require.NoError(t, err)
	assert.True(t, nuevoPrecio.Equal(out.PrecioVenta))
	assert.Equal(t, "PARA500", out.CodigoInterno, "el código no enviado no debe cambiar")
	assert.Equal(t, "Paracetamol 500mg", out.NombreComercial, "el nombre no enviado no debe cambiar")
}

// Actualizar un producto inexistente devuelve nil (404 en HTTP).
func TestUpdateProducto_Inexistente(t *testing.T) {
	s := &productoStore{}
	uc := buildProductoUC(s)

	out, err := uc.Update(42, dto.UpdateProductoRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// La búsqueda exige texto no vacío.
func TestSearchProducto_TextoVacio(t *testing.T) {
	s := &productoStore{}
	uc := buildProductoUC(s)

	_, err := uc.Search("   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
