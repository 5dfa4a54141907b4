package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación de PedidoRepository (usable con pool o tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

const pedidoCols = `id_pedido, id_proveedor, id_usuario, id_estado_pedido, id_motivo_pedido,
	fecha_solicitud, fecha_entrega_estimada, COALESCE(motivo, '')`

// Create persiste la cabecera del pedido y asigna el ID generado
// (root-first: los detalles lo referencian dentro de la misma transacción).
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		INSERT INTO pedido (id_proveedor, id_usuario, id_estado_pedido, id_motivo_pedido,
		                    fecha_solicitud, fecha_entrega_estimada, motivo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_pedido`
	err := r.q.QueryRow(ctx, query,
		p.IDProveedor, p.IDUsuario, p.IDEstadoPedido, p.IDMotivoPedido,
		p.FechaSolicitud, p.FechaEntregaEstimada, p.Motivo,
	).Scan(&p.IDPedido)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// CreateDetalle persiste una línea del pedido. Misma transacción que Create.
func (r *PedidoRepo) CreateDetalle(d *entity.DetallePedido) error {
	ctx, cancel := qctx()
	defer cancel()
	_, err := r.q.Exec(ctx,
		`INSERT INTO detalle_pedido (id_pedido, id_producto, cantidad_solicitada) VALUES ($1, $2, $3)`,
		d.IDPedido, d.IDProducto, d.CantidadSolicitada,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("insert detalle_pedido: %w", err)
	}
	return nil
}

// GetDetalles lista las líneas de un pedido en orden de producto.
func (r *PedidoRepo) GetDetalles(idPedido int64) ([]entity.DetallePedido, error) {
	ctx, cancel := qctx()
	defer cancel()
	rows, err := r.q.Query(ctx,
		`SELECT id_pedido, id_producto, cantidad_solicitada FROM detalle_pedido
		 WHERE id_pedido = $1 ORDER BY id_producto`, idPedido)
	if err != nil {
		return nil, fmt.Errorf("list detalles de pedido: %w", err)
	}
	defer rows.Close()
	var list []entity.DetallePedido
	for rows.Next() {
		var d entity.DetallePedido
		if err := rows.Scan(&d.IDPedido, &d.IDProducto, &d.CantidadSolicitada); err != nil {
			return nil, fmt.Errorf("scan detalle_pedido: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// GetByID obtiene un pedido por ID.
func (r *PedidoRepo) GetByID(id int64) (*entity.Pedido, error) {
	ctx, cancel := qctx()
	defer cancel()
	var p entity.Pedido
	err := r.q.QueryRow(ctx,
		`SELECT `+pedidoCols+` FROM pedido WHERE id_pedido = $1`, id,
	).Scan(&p.IDPedido, &p.IDProveedor, &p.IDUsuario, &p.IDEstadoPedido, &p.IDMotivoPedido,
		&p.FechaSolicitud, &p.FechaEntregaEstimada, &p.Motivo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// List lista pedidos con paginación, en orden de inserción.
func (r *PedidoRepo) List(limit, offset int) ([]*entity.Pedido, error) {
	ctx, cancel := qctx()
	defer cancel()
	rows, err := r.q.Query(ctx,
		`SELECT `+pedidoCols+` FROM pedido ORDER BY id_pedido LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.IDPedido, &p.IDProveedor, &p.IDUsuario, &p.IDEstadoPedido,
			&p.IDMotivoPedido, &p.FechaSolicitud, &p.FechaEntregaEstimada, &p.Motivo); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdateEstado cambia solo el estado del pedido.
func (r *PedidoRepo) UpdateEstado(idPedido, idEstadoPedido int64) error {
	ctx, cancel := qctx()
	defer cancel()
	cmd, err := r.q.Exec(ctx,
		`UPDATE pedido SET id_estado_pedido = $2 WHERE id_pedido = $1`, idPedido, idEstadoPedido)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("update estado de pedido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Update actualiza los campos mutables de la cabecera.
func (r *PedidoRepo) Update(p *entity.Pedido) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		UPDATE pedido
		SET id_estado_pedido = $2, fecha_entrega_estimada = $3, motivo = $4
		WHERE id_pedido = $1`
	cmd, err := r.q.Exec(ctx, query, p.IDPedido, p.IDEstadoPedido, p.FechaEntregaEstimada, p.Motivo)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("update pedido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
