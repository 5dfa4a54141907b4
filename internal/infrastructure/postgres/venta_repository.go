package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

var (
	_ repository.VentaRepository       = (*VentaRepo)(nil)
	_ repository.PagoRepository        = (*PagoRepo)(nil)
	_ repository.ComprobanteRepository = (*ComprobanteRepo)(nil)
)

// VentaRepo implementación de VentaRepository (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste la cabecera de la venta y asigna el ID generado
// (root-first: detalles, pago y comprobante lo referencian dentro de la
// misma transacción).
func (r *VentaRepo) Create(v *entity.Venta) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		INSERT INTO venta (id_cliente, id_usuario, fecha_venta, hora_venta, monto_total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_venta`
	err := r.q.QueryRow(ctx, query,
		v.IDCliente, v.IDUsuario, v.FechaVenta, v.HoraVenta, v.MontoTotal,
	).Scan(&v.IDVenta)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateDetalle persiste una línea de la venta. Misma transacción que Create.
func (r *VentaRepo) CreateDetalle(d *entity.DetalleVenta) error {
	ctx, cancel := qctx()
	defer cancel()
	_, err := r.q.Exec(ctx,
		`INSERT INTO detalle_venta (id_venta, id_producto, cantidad, precio_unitario_venta, subtotal)
		 VALUES ($1, $2, $3, $4, $5)`,
		d.IDVenta, d.IDProducto, d.Cantidad, d.PrecioUnitarioVenta, d.Subtotal,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("insert detalle_venta: %w", err)
	}
	return nil
}

// GetDetalles lista las líneas de una venta en orden de producto.
func (r *VentaRepo) GetDetalles(idVenta int64) ([]entity.DetalleVenta, error) {
	ctx, cancel := qctx()
	defer cancel()
	rows, err := r.q.Query(ctx,
		`SELECT id_venta, id_producto, cantidad, precio_unitario_venta, subtotal
		 FROM detalle_venta WHERE id_venta = $1 ORDER BY id_producto`, idVenta)
	if err != nil {
		return nil, fmt.Errorf("list detalles de venta: %w", err)
	}
	defer rows.Close()
	var list []entity.DetalleVenta
	for rows.Next() {
		var d entity.DetalleVenta
		if err := rows.Scan(&d.IDVenta, &d.IDProducto, &d.Cantidad, &d.PrecioUnitarioVenta, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle_venta: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// GetByID obtiene una venta por ID.
func (r *VentaRepo) GetByID(id int64) (*entity.Venta, error) {
	ctx, cancel := qctx()
	defer cancel()
	var v entity.Venta
	err := r.q.QueryRow(ctx,
		`SELECT id_venta, id_cliente, id_usuario, fecha_venta, hora_venta, monto_total
		 FROM venta WHERE id_venta = $1`, id,
	).Scan(&v.IDVenta, &v.IDCliente, &v.IDUsuario, &v.FechaVenta, &v.HoraVenta, &v.MontoTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// List lista ventas con paginación, en orden de inserción.
func (r *VentaRepo) List(limit, offset int) ([]*entity.Venta, error) {
	ctx, cancel := qctx()
	defer cancel()
	rows, err := r.q.Query(ctx,
		`SELECT id_venta, id_cliente, id_usuario, fecha_venta, hora_venta, monto_total
		 FROM venta ORDER BY id_venta LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.IDVenta, &v.IDCliente, &v.IDUsuario, &v.FechaVenta, &v.HoraVenta, &v.MontoTotal); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// PagoRepo implementación de PagoRepository.
type PagoRepo struct {
	q Querier
}

// NewPagoRepository construye el adaptador.
func NewPagoRepository(q Querier) *PagoRepo {
	return &PagoRepo{q: q}
}

// Create persiste el pago de una venta (único por venta).
func (r *PagoRepo) Create(p *entity.Pago) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		INSERT INTO pago (id_venta, id_metodo_pago, fecha_hora, monto)
		VALUES ($1, $2, $3, $4)
		RETURNING id_pago`
	err := r.q.QueryRow(ctx, query, p.IDVenta, p.IDMetodoPago, p.FechaHora, p.Monto).Scan(&p.IDPago)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("insert pago: %w", err)
	}
	return nil
}

// GetByVenta obtiene el pago de una venta.
func (r *PagoRepo) GetByVenta(idVenta int64) (*entity.Pago, error) {
	ctx, cancel := qctx()
	defer cancel()
	var p entity.Pago
	err := r.q.QueryRow(ctx,
		`SELECT id_pago, id_venta, id_metodo_pago, fecha_hora, monto FROM pago WHERE id_venta = $1`, idVenta,
	).Scan(&p.IDPago, &p.IDVenta, &p.IDMetodoPago, &p.FechaHora, &p.Monto)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pago: %w", err)
	}
	return &p, nil
}

// ComprobanteRepo implementación de ComprobanteRepository.
type ComprobanteRepo struct {
	q Querier
}

// NewComprobanteRepository construye el adaptador.
func NewComprobanteRepository(q Querier) *ComprobanteRepo {
	return &ComprobanteRepo{q: q}
}

// Create persiste el comprobante de una venta (único por venta, número único).
func (r *ComprobanteRepo) Create(c *entity.Comprobante) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		INSERT INTO comprobante (id_venta, tipo_comprobante, nro_comprobante)
		VALUES ($1, $2, $3)
		RETURNING id_comprobante`
	err := r.q.QueryRow(ctx, query, c.IDVenta, c.TipoComprobante, c.NroComprobante).Scan(&c.IDComprobante)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("insert comprobante: %w", err)
	}
	return nil
}

// GetByVenta obtiene el comprobante de una venta.
func (r *ComprobanteRepo) GetByVenta(idVenta int64) (*entity.Comprobante, error) {
	ctx, cancel := qctx()
	defer cancel()
	var c entity.Comprobante
	err := r.q.QueryRow(ctx,
		`SELECT id_comprobante, id_venta, tipo_comprobante, nro_comprobante
		 FROM comprobante WHERE id_venta = $1`, idVenta,
	).Scan(&c.IDComprobante, &c.IDVenta, &c.TipoComprobante, &c.NroComprobante)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get comprobante: %w", err)
	}
	return &c, nil
}

// GetByNumero obtiene un comprobante por número externo (clave natural).
func (r *ComprobanteRepo) GetByNumero(nroComprobante string) (*entity.Comprobante, error) {
	ctx, cancel := qctx()
	defer cancel()
	var c entity.Comprobante
	err := r.q.QueryRow(ctx,
		`SELECT id_comprobante, id_venta, tipo_comprobante, nro_comprobante
		 FROM comprobante WHERE nro_comprobante = $1`, nroComprobante,
	).Scan(&c.IDComprobante, &c.IDVenta, &c.TipoComprobante, &c.NroComprobante)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get comprobante by numero: %w", err)
	}
	return &c, nil
}
