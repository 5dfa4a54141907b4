package pedidos_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/application/pedidos"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type pedidoStore struct {
	pedidos  []*entity.Pedido
	detalles []entity.DetallePedido
	nextID   int64
}

type fakePedidoRepo struct{ s *pedidoStore }

func (r *fakePedidoRepo) List(limit, offset int) ([]*entity.Pedido, error) { return r.s.pedidos, nil }

func (r *fakePedidoRepo) GetByID(id int64) (*entity.Pedido, error) {
	for _, p := range r.s.pedidos {
		if p.IDPedido == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePedidoRepo) Create(p *entity.Pedido) error {
	r.s.nextID++
	p.IDPedido = r.s.nextID
	r.s.pedidos = append(r.s.pedidos, p)
	return nil
}

func (r *fakePedidoRepo) CreateDetalle(d *entity.DetallePedido) error {
	r.s.detalles = append(r.s.detalles, *d)
	return nil
}

func (r *fakePedidoRepo) GetDetalles(idPedido int64) ([]entity.DetallePedido, error) {
	var out []entity.DetallePedido
	for _, d := range r.s.detalles {
		if d.IDPedido == idPedido {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakePedidoRepo) UpdateEstado(idPedido, idEstado int64) error {
	for _, p := range r.s.pedidos {
		if p.IDPedido == idPedido {
			p.IDEstadoPedido = idEstado
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakePedidoRepo) Update(p *entity.Pedido) error { return nil }

type fakeTxRunner struct{ s *pedidoStore }

func (t *fakeTxRunner) RunPedido(ctx context.Context, fn func(repository.PedidoRepository) error) error {
	snapshot := *t.s
	if err := fn(&fakePedidoRepo{s: t.s}); err != nil {
		*t.s = snapshot
		return err
	}
	return nil
}

type fakeProveedorRepo struct{ ids map[int64]bool }

func (r *fakeProveedorRepo) List(limit, offset int) ([]*entity.Proveedor, error) { return nil, nil }
func (r *fakeProveedorRepo) GetByID(id int64) (*entity.Proveedor, error) {
	if r.ids[id] {
		return &entity.Proveedor{IDProveedor: id}, nil
	}
	return nil, nil
}
func (r *fakeProveedorRepo) GetByRUC(string) (*entity.Proveedor, error) { return nil, nil }
func (r *fakeProveedorRepo) Create(*entity.Proveedor) error             { return nil }
func (r *fakeProveedorRepo) Update(*entity.Proveedor) error             { return nil }
func (r *fakeProveedorRepo) Delete(int64) error                         { return nil }

type fakeProductoRepo struct{ ids map[int64]bool }

func (r *fakeProductoRepo) List(limit, offset int) ([]*entity.Producto, error) { return nil, nil }
func (r *fakeProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	if r.ids[id] {
		return &entity.Producto{IDProducto: id}, nil
	}
	return nil, nil
}
func (r *fakeProductoRepo) GetByCodigo(string) (*entity.Producto, error) { return nil, nil }
func (r *fakeProductoRepo) Search(string) ([]*entity.Producto, error)    { return nil, nil }
func (r *fakeProductoRepo) Create(*entity.Producto) error                { return nil }
func (r *fakeProductoRepo) AddCategoria(int64, int64) error              { return nil }
func (r *fakeProductoRepo) AddPresentacion(int64, int64) error           { return nil }
func (r *fakeProductoRepo) AddComponente(int64, int64) error             { return nil }
func (r *fakeProductoRepo) Update(*entity.Producto) error                { return nil }
func (r *fakeProductoRepo) Delete(int64) error                           { return nil }

type fakeCatalogoRepo struct{ ids map[int64]bool }

func (r *fakeCatalogoRepo) List() ([]entity.CatalogoItem, error) { return nil, nil }
func (r *fakeCatalogoRepo) GetByID(id int64) (*entity.CatalogoItem, error) {
	if r.ids[id] {
		return &entity.CatalogoItem{ID: id}, nil
	}
	return nil, nil
}
func (r *fakeCatalogoRepo) GetByDescripcion(string) (*entity.CatalogoItem, error) { return nil, nil }
func (r *fakeCatalogoRepo) Create(*entity.CatalogoItem) error                     { return nil }
func (r *fakeCatalogoRepo) Delete(int64) error                                    { return nil }

func buildService(s *pedidoStore) *pedidos.Service {
	return pedidos.NewService(
		&fakeTxRunner{s: s},
		&fakePedidoRepo{s: s},
		&fakeProveedorRepo{ids: map[int64]bool{20: true}},
		&fakeProductoRepo{ids: map[int64]bool{4001: true, 4002: true}},
		&fakeCatalogoRepo{ids: map[int64]bool{1: true, 2: true}}, // estados
		&fakeCatalogoRepo{ids: map[int64]bool{3: true}},          // motivos
	)
}

func pedidoValido() dto.CreatePedidoRequest {
	return dto.CreatePedidoRequest{
		IDProveedor:    20,
		IDEstadoPedido: 1,
		IDMotivoPedido: 3,
		Motivo:         "reposición de stock",
		Detalles: []dto.DetallePedidoItem{
			{IDProducto: 4001, CantidadSolicitada: 10},
			{IDProducto: 4002, CantidadSolicitada: 5},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Cabecera y líneas se crean juntas; el usuario sale del token.
func TestCreatePedido_AgregadoCompleto(t *testing.T) {
	s := &pedidoStore{}
	svc := buildService(s)

	out, err := svc.Create(context.Background(), 7, pedidoValido())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(7), out.IDUsuario)
	assert.Len(t, out.Detalles, 2)
	assert.Len(t, s.detalles, 2)
	assert.False(t, out.FechaSolicitud.IsZero(), "sin fecha en el cuerpo se usa el instante actual")
}

// Un pedido sin líneas no es válido.
func TestCreatePedido_SinDetalles(t *testing.T) {
	s := &pedidoStore{}
	svc := buildService(s)

	in := pedidoValido()
	in.Detalles = nil
	_, err := svc.Create(context.Background(), 7, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.pedidos)
}

// Proveedor, estado, motivo o producto inexistentes abortan todo el pedido.
func TestCreatePedido_ReferenciasRotas(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreatePedidoRequest)
	}{
		{"proveedor inexistente", func(in *dto.CreatePedidoRequest) { in.IDProveedor = 999 }},
		{"estado inexistente", func(in *dto.CreatePedidoRequest) { in.IDEstadoPedido = 999 }},
		{"motivo inexistente", func(in *dto.CreatePedidoRequest) { in.IDMotivoPedido = 999 }},
		{"producto inexistente", func(in *dto.CreatePedidoRequest) { in.Detalles[0].IDProducto = 999 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &pedidoStore{}
			svc := buildService(s)

			in := pedidoValido()
			tc.mutate(&in)
			_, err := svc.Create(context.Background(), 7, in)
			assert.ErrorIs(t, err, domain.ErrReferencia)
			assert.Empty(t, s.pedidos, "no debe quedar cabecera")
			assert.Empty(t, s.detalles, "no deben quedar líneas")
		})
	}
}

// El mismo producto repetido en dos líneas chocaría contra la clave
// compuesta (pedido, producto); se rechaza antes de abrir la transacción.
func TestCreatePedido_ProductoRepetidoEnLineas(t *testing.T) {
	s := &pedidoStore{}
	svc := buildService(s)

	in := pedidoValido()
	in.Detalles = []dto.DetallePedidoItem{
		{IDProducto: 4001, CantidadSolicitada: 10},
		{IDProducto: 4001, CantidadSolicitada: 5},
	}
	_, err := svc.Create(context.Background(), 7, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, s.pedidos)
	assert.Empty(t, s.detalles)
}

// Cantidad solicitada cero no es válida.
func TestCreatePedido_CantidadInvalida(t *testing.T) {
	s := &pedidoStore{}
	svc := buildService(s)

	in := pedidoValido()
	in.Detalles[1].CantidadSolicitada = 0
	_, err := svc.Create(context.Background(), 7, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La fecha de solicitud del cuerpo se respeta si viene.
func TestCreatePedido_FechaExplicita(t *testing.T) {
	s := &pedidoStore{}
	svc := buildService(s)

	fecha := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)
	in := pedidoValido()
	in.FechaSolicitud = fecha
	out, err := svc.Create(context.Background(), 7, in)
	require.NoError(t, err)
	assert.True(t, fecha.Equal(out.FechaSolicitud))
}

// Cambiar el estado valida que el nuevo estado exista.
func TestUpdateEstado(t *testing.T) {
	s := &pedidoStore{}
	svc := buildService(s)

	created, err := svc.Create(context.Background(), 7, pedidoValido())
	require.NoError(t, err)

	out, err := svc.UpdateEstado(created.IDPedido, dto.UpdateEstadoPedidoRequest{IDEstadoPedido: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.IDEstadoPedido)

	_, err = svc.UpdateEstado(created.IDPedido, dto.UpdateEstadoPedidoRequest{IDEstadoPedido: 999})
	assert.ErrorIs(t, err, domain.ErrReferencia, "un estado inexistente no debe aplicarse")

	_, err = svc.UpdateEstado(12345, dto.UpdateEstadoPedidoRequest{IDEstadoPedido: 2})
	assert.ErrorIs(t, err, domain.ErrNotFound, "un pedido inexistente debe reportar 404")
}

// GetByID de un pedido inexistente devuelve nil sin error.
func TestGetPedido_Inexistente(t *testing.T) {
	s := &pedidoStore{}
	svc := buildService(s)

	out, err := svc.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, out)
}
