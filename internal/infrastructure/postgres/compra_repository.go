package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo implementación de CompraRepository.
type CompraRepo struct {
	q Querier
}

// NewCompraRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

const compraCols = `id_compra, id_pedido, fecha_recepcion, COALESCE(nro_guia, ''),
	COALESCE(tipo_comprobante, ''), COALESCE(nro_comprobante, ''), monto_total, estado, fecha_pago`

func scanCompraRow(row pgx.Row) (*entity.Compra, error) {
	var c entity.Compra
	err := row.Scan(&c.IDCompra, &c.IDPedido, &c.FechaRecepcion, &c.NroGuia,
		&c.TipoComprobante, &c.NroComprobante, &c.MontoTotal, &c.Estado, &c.FechaPago)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una compra y asigna el ID generado. nro_guia y
// nro_comprobante vacíos se guardan como NULL para no chocar con la
// constraint única.
func (r *CompraRepo) Create(c *entity.Compra) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		INSERT INTO compra (id_pedido, fecha_recepcion, nro_guia, tipo_comprobante, nro_comprobante,
		                    monto_total, estado, fecha_pago)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id_compra`
	err := r.q.QueryRow(ctx, query,
		c.IDPedido, c.FechaRecepcion, nullIfEmpty(c.NroGuia), nullIfEmpty(c.TipoComprobante),
		nullIfEmpty(c.NroComprobante), c.MontoTotal, c.Estado, c.FechaPago,
	).Scan(&c.IDCompra)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("insert compra: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID.
func (r *CompraRepo) GetByID(id int64) (*entity.Compra, error) {
	ctx, cancel := qctx()
	defer cancel()
	c, err := scanCompraRow(r.q.QueryRow(ctx,
		`SELECT `+compraCols+` FROM compra WHERE id_compra = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	return c, nil
}

// GetByPedido obtiene la compra asociada a un pedido (1:1).
func (r *CompraRepo) GetByPedido(idPedido int64) (*entity.Compra, error) {
	ctx, cancel := qctx()
	defer cancel()
	c, err := scanCompraRow(r.q.QueryRow(ctx,
		`SELECT `+compraCols+` FROM compra WHERE id_pedido = $1`, idPedido))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra by pedido: %w", err)
	}
	return c, nil
}

// List lista compras con paginación, en orden de inserción.
func (r *CompraRepo) List(limit, offset int) ([]*entity.Compra, error) {
	ctx, cancel := qctx()
	defer cancel()
	rows, err := r.q.Query(ctx,
		`SELECT `+compraCols+` FROM compra ORDER BY id_compra LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()
	var list []*entity.Compra
	for rows.Next() {
		var c entity.Compra
		if err := rows.Scan(&c.IDCompra, &c.IDPedido, &c.FechaRecepcion, &c.NroGuia,
			&c.TipoComprobante, &c.NroComprobante, &c.MontoTotal, &c.Estado, &c.FechaPago); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza estado y fecha de pago.
func (r *CompraRepo) Update(c *entity.Compra) error {
	ctx, cancel := qctx()
	defer cancel()
	cmd, err := r.q.Exec(ctx,
		`UPDATE compra SET estado = $2, fecha_pago = $3 WHERE id_compra = $1`,
		c.IDCompra, c.Estado, c.FechaPago,
	)
	if err != nil {
		return fmt.Errorf("update compra: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// nullIfEmpty convierte "" en NULL para columnas opcionales con constraint única.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
