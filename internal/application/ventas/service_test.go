package ventas_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/application/ventas"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner escribe sobre un estado temporal y
// solo lo vuelca al estado definitivo si el callback termina sin error,
// imitando el commit/rollback de la transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type ventaStore struct {
	ventas       []*entity.Venta
	detalles     []entity.DetalleVenta
	pagos        []*entity.Pago
	comprobantes []*entity.Comprobante
	nextID       int64

	failDetalleDeProducto int64 // si != 0, CreateDetalle de ese producto falla
}

type fakeVentaRepo struct{ s *ventaStore }

func (r *fakeVentaRepo) List(limit, offset int) ([]*entity.Venta, error) { return r.s.ventas, nil }

func (r *fakeVentaRepo) GetByID(id int64) (*entity.Venta, error) {
	for _, v := range r.s.ventas {
		if v.IDVenta == id {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakeVentaRepo) Create(v *entity.Venta) error {
	r.s.nextID++
	v.IDVenta = r.s.nextID
	r.s.ventas = append(r.s.ventas, v)
	return nil
}

func (r *fakeVentaRepo) CreateDetalle(d *entity.DetalleVenta) error {
	if r.s.failDetalleDeProducto != 0 && d.IDProducto == r.s.failDetalleDeProducto {
		return errors.New("fallo simulado de inserción")
	}
	r.s.detalles = append(r.s.detalles, *d)
	return nil
}

func (r *fakeVentaRepo) GetDetalles(idVenta int64) ([]entity.DetalleVenta, error) {
	var out []entity.DetalleVenta
	for _, d := range r.s.detalles {
		if d.IDVenta == idVenta {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakePagoRepo struct{ s *ventaStore }

func (r *fakePagoRepo) Create(p *entity.Pago) error {
	r.s.nextID++
	p.IDPago = r.s.nextID
	r.s.pagos = append(r.s.pagos, p)
	return nil
}

func (r *fakePagoRepo) GetByVenta(idVenta int64) (*entity.Pago, error) {
	for _, p := range r.s.pagos {
		if p.IDVenta == idVenta {
			return p, nil
		}
	}
	return nil, nil
}

type fakeComprobanteRepo struct{ s *ventaStore }

func (r *fakeComprobanteRepo) Create(c *entity.Comprobante) error {
	r.s.nextID++
	c.IDComprobante = r.s.nextID
	r.s.comprobantes = append(r.s.comprobantes, c)
	return nil
}

func (r *fakeComprobanteRepo) GetByVenta(idVenta int64) (*entity.Comprobante, error) {
	for _, c := range r.s.comprobantes {
		if c.IDVenta == idVenta {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeComprobanteRepo) GetByNumero(nro string) (*entity.Comprobante, error) {
	for _, c := range r.s.comprobantes {
		if c.NroComprobante == nro {
			return c, nil
		}
	}
	return nil, nil
}

type fakeTxRunner struct{ s *ventaStore }

func (t *fakeTxRunner) RunVenta(ctx context.Context, fn func(
	ventaRepo repository.VentaRepository,
	pagoRepo repository.PagoRepository,
	comprobanteRepo repository.ComprobanteRepository,
) error) error {
	// Copia del estado para poder descartar escrituras si el callback falla.
	snapshot := *t.s
	err := fn(&fakeVentaRepo{s: t.s}, &fakePagoRepo{s: t.s}, &fakeComprobanteRepo{s: t.s})
	if err != nil {
		*t.s = snapshot
		return err
	}
	return nil
}

type fakeClienteRepo struct{ ids map[int64]bool }

func (r *fakeClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) { return nil, nil }
func (r *fakeClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	if r.ids[id] {
		return &entity.Cliente{IDCliente: id}, nil
	}
	return nil, nil
}
func (r *fakeClienteRepo) GetByDoc(string) (*entity.Cliente, error) { return nil, nil }
func (r *fakeClienteRepo) Create(*entity.Cliente) error             { return nil }
func (r *fakeClienteRepo) AddTelefono(int64, string) error          { return nil }
func (r *fakeClienteRepo) GetTelefonos(int64) ([]string, error)     { return nil, nil }
func (r *fakeClienteRepo) Update(*entity.Cliente) error             { return nil }
func (r *fakeClienteRepo) Delete(int64) error                       { return nil }

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
		return &entity.CatalogoItem{ID: id, Descripcion: "efectivo"}, nil
	}
	return nil, nil
}
func (r *fakeCatalogoRepo) GetByDescripcion(string) (*entity.CatalogoItem, error) { return nil, nil }
func (r *fakeCatalogoRepo) Create(*entity.CatalogoItem) error                     { return nil }
func (r *fakeCatalogoRepo) Delete(int64) error                                    { return nil }

func buildService(s *ventaStore, productos ...int64) *ventas.Service {
	prodIDs := map[int64]bool{}
	for _, id := range productos {
		prodIDs[id] = true
	}
	return ventas.NewService(
		&fakeTxRunner{s: s},
		&fakeVentaRepo{s: s},
		&fakePagoRepo{s: s},
		&fakeComprobanteRepo{s: s},
		&fakeClienteRepo{ids: map[int64]bool{10: true}},
		&fakeProductoRepo{ids: prodIDs},
		&fakeCatalogoRepo{ids: map[int64]bool{1: true}},
	)
}

func ventaValida() dto.CreateVentaRequest {
	return dto.CreateVentaRequest{
		IDCliente:       10,
		IDMetodoPago:    1,
		TipoComprobante: "Boleta",
		NroComprobante:  "B001-000123",
		Detalles: []dto.DetalleVentaItem{
			{IDProducto: 4001, Cantidad: 2, PrecioUnitarioVenta: decimal.RequireFromString("3.50")},
			{IDProducto: 4003, Cantidad: 3, PrecioUnitarioVenta: decimal.RequireFromString("5.80")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Dos líneas (2×3.50 y 3×5.80) deben producir subtotales 7.00 y 17.40,
// total 24.40 y un pago por exactamente ese monto.
func TestCreateVenta_TotalExacto(t *testing.T) {
	s := &ventaStore{}
	svc := buildService(s, 4001, 4003)

	out, err := svc.Create(context.Background(), 5, ventaValida())
	require.NoError(t, err)
	require.NotNil(t, out)

	require.Len(t, out.Detalles, 2)
	assert.True(t, decimal.RequireFromString("7.00").Equal(out.Detalles[0].Subtotal),
		"subtotal de la primera línea debe ser 7.00, fue %s", out.Detalles[0].Subtotal)
	assert.True(t, decimal.RequireFromString("17.40").Equal(out.Detalles[1].Subtotal),
		"subtotal de la segunda línea debe ser 17.40, fue %s", out.Detalles[1].Subtotal)
	assert.True(t, decimal.RequireFromString("24.40").Equal(out.MontoTotal),
		"monto total debe ser 24.40, fue %s", out.MontoTotal)

	require.NotNil(t, out.Pago)
	assert.True(t, out.MontoTotal.Equal(out.Pago.Monto), "el pago debe ser por el total de la venta")
	assert.Equal(t, out.FechaVenta, out.Pago.FechaHora, "venta y pago deben compartir el mismo instante")
	assert.Equal(t, out.FechaVenta.Format("15:04:05"), out.HoraVenta)

	assert.Equal(t, int64(5), out.IDUsuario, "el usuario debe salir del token, no del cuerpo")
	require.NotNil(t, out.Comprobante)
	assert.Equal(t, "B001-000123", out.Comprobante.NroComprobante)
}

// Una venta sin líneas no es válida y no escribe nada.
func TestCreateVenta_SinDetalles(t *testing.T) {
	s := &ventaStore{}
	svc := buildService(s, 4001)

	in := ventaValida()
	in.Detalles = nil
	_, err := svc.Create(context.Background(), 5, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.ventas)
}

// Un producto inexistente en cualquier línea aborta la venta completa:
// cero filas en venta, detalle, pago y comprobante.
func TestCreateVenta_ProductoInexistente_SinFilasParciales(t *testing.T) {
	s := &ventaStore{}
	svc := buildService(s, 4001) // 4003 no existe

	_, err := svc.Create(context.Background(), 5, ventaValida())
	assert.ErrorIs(t, err, domain.ErrReferencia)
	assert.Empty(t, s.ventas, "no debe quedar cabecera")
	assert.Empty(t, s.detalles, "no deben quedar detalles")
	assert.Empty(t, s.pagos, "no debe quedar pago")
	assert.Empty(t, s.comprobantes, "no debe quedar comprobante")
}

// Si una inserción falla dentro de la transacción, el rollback descarta
// todas las filas del agregado, incluida la cabecera ya insertada.
func TestCreateVenta_FalloEnDetalle_Rollback(t *testing.T) {
	s := &ventaStore{failDetalleDeProducto: 4003}
	svc := buildService(s, 4001, 4003)

	_, err := svc.Create(context.Background(), 5, ventaValida())
	require.Error(t, err)
	assert.Empty(t, s.ventas, "la cabecera debe revertirse con el rollback")
	assert.Empty(t, s.detalles)
	assert.Empty(t, s.pagos)
	assert.Empty(t, s.comprobantes)
}

// Un número de comprobante ya emitido rechaza la venta antes de escribir.
func TestCreateVenta_ComprobanteDuplicado(t *testing.T) {
	s := &ventaStore{
		comprobantes: []*entity.Comprobante{{IDComprobante: 1, IDVenta: 99, NroComprobante: "B001-000123"}},
	}
	svc := buildService(s, 4001, 4003)

	_, err := svc.Create(context.Background(), 5, ventaValida())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, s.ventas)
}

// El mismo producto repetido en dos líneas chocaría contra la clave
// compuesta (venta, producto); se rechaza antes de abrir la transacción.
func TestCreateVenta_ProductoRepetidoEnLineas(t *testing.T) {
	s := &ventaStore{}
	svc := buildService(s, 4001)

	in := ventaValida()
	in.Detalles = []dto.DetalleVentaItem{
		{IDProducto: 4001, Cantidad: 1, PrecioUnitarioVenta: decimal.RequireFromString("3.50")},
		{IDProducto: 4001, Cantidad: 2, PrecioUnitarioVenta: decimal.RequireFromString("3.50")},
	}
	_, err := svc.Create(context.Background(), 5, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, s.ventas)
	assert.Empty(t, s.detalles)
}

// Cantidad cero o negativa en una línea es entrada inválida.
func TestCreateVenta_CantidadInvalida(t *testing.T) {
	s := &ventaStore{}
	svc := buildService(s, 4001, 4003)

	in := ventaValida()
	in.Detalles[0].Cantidad = 0
	_, err := svc.Create(context.Background(), 5, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cliente inexistente es un error de referencia.
func TestCreateVenta_ClienteInexistente(t *testing.T) {
	s := &ventaStore{}
	svc := buildService(s, 4001, 4003)

	in := ventaValida()
	in.IDCliente = 999
	_, err := svc.Create(context.Background(), 5, in)
	assert.ErrorIs(t, err, domain.ErrReferencia)
}

// GetByID arma el agregado completo a partir de las filas persistidas.
func TestGetVenta_AgregadoCompleto(t *testing.T) {
	s := &ventaStore{}
	svc := buildService(s, 4001, 4003)

	created, err := svc.Create(context.Background(), 5, ventaValida())
	require.NoError(t, err)

	out, err := svc.GetByID(created.IDVenta)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Len(t, out.Detalles, 2)
	require.NotNil(t, out.Pago)
	require.NotNil(t, out.Comprobante)
	assert.True(t, created.MontoTotal.Equal(out.MontoTotal))
}

// GetByID de una venta inexistente devuelve nil sin error (404 en HTTP).
func TestGetVenta_Inexistente(t *testing.T) {
	s := &ventaStore{}
	svc := buildService(s)

	out, err := svc.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, out)
}
