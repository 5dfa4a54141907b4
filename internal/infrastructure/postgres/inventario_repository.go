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
	_ repository.InventarioRepository = (*InventarioRepo)(nil)
	_ repository.LoteRepository       = (*LoteRepo)(nil)
	_ repository.UbicacionRepository  = (*UbicacionRepo)(nil)
)

// InventarioRepo vista de inventario sobre PostgreSQL. Las lecturas
// desnormalizan lote y ubicación con un INNER JOIN: la fila se omite si
// cualquiera de las dos asociaciones falta.
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

const inventarioJoin = `
	SELECT i.id_inventario, i.stock_actual, l.codigo_lote, l.fecha_vencimiento,
	       l.costo_unitario_compra, u.estante || '-' || u.nivel
	FROM inventario i
	JOIN lote l ON l.id_lote = i.id_lote
	JOIN ubicacion_estante u ON u.id_ubicacion_estante = i.id_ubicacion_estante`

func scanInventarioDetalle(rows pgx.Rows) ([]*entity.InventarioDetalle, error) {
	var list []*entity.InventarioDetalle
	for rows.Next() {
		var d entity.InventarioDetalle
		if err := rows.Scan(&d.IDInventario, &d.StockActual, &d.CodigoLote,
			&d.FechaVencimiento, &d.PrecioCompraUnitario, &d.UbicacionEstante); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// List lista el inventario con paginación, en orden de inserción.
func (r *InventarioRepo) List(limit, offset int) ([]*entity.InventarioDetalle, error) {
	ctx, cancel := qctx()
	defer cancel()
	rows, err := r.q.Query(ctx, inventarioJoin+` ORDER BY i.id_inventario LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventario: %w", err)
	}
	defer rows.Close()
	return scanInventarioDetalle(rows)
}

// GetByID obtiene una fila de inventario con lote y ubicación resueltos.
func (r *InventarioRepo) GetByID(id int64) (*entity.InventarioDetalle, error) {
	ctx, cancel := qctx()
	defer cancel()
	var d entity.InventarioDetalle
	err := r.q.QueryRow(ctx, inventarioJoin+` WHERE i.id_inventario = $1`, id).Scan(
		&d.IDInventario, &d.StockActual, &d.CodigoLote, &d.FechaVencimiento,
		&d.PrecioCompraUnitario, &d.UbicacionEstante,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventario: %w", err)
	}
	return &d, nil
}

// ListByProducto lista el inventario de todos los lotes de un producto.
func (r *InventarioRepo) ListByProducto(idProducto int64) ([]*entity.InventarioDetalle, error) {
	ctx, cancel := qctx()
	defer cancel()
	rows, err := r.q.Query(ctx, inventarioJoin+` WHERE l.id_producto = $1 ORDER BY i.id_inventario`, idProducto)
	if err != nil {
		return nil, fmt.Errorf("list inventario by producto: %w", err)
	}
	defer rows.Close()
	return scanInventarioDetalle(rows)
}

// Create persiste una fila de inventario y asigna el ID generado.
func (r *InventarioRepo) Create(inv *entity.Inventario) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		INSERT INTO inventario (id_lote, id_ubicacion_estante, stock_actual)
		VALUES ($1, $2, $3)
		RETURNING id_inventario`
	err := r.q.QueryRow(ctx, query, inv.IDLote, inv.IDUbicacionEstante, inv.StockActual).Scan(&inv.IDInventario)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("insert inventario: %w", err)
	}
	return nil
}

// UpdateStock reemplaza el stock actual de una fila de inventario.
func (r *InventarioRepo) UpdateStock(id int64, stockActual int) error {
	ctx, cancel := qctx()
	defer cancel()
	cmd, err := r.q.Exec(ctx,
		`UPDATE inventario SET stock_actual = $2 WHERE id_inventario = $1`, id, stockActual)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LoteRepo implementación de LoteRepository.
type LoteRepo struct {
	q Querier
}

// NewLoteRepository construye el adaptador.
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

const loteCols = `id_lote, id_producto, codigo_lote, fecha_vencimiento, cantidad_recibida, costo_unitario_compra`

// Create persiste un lote y asigna el ID generado.
func (r *LoteRepo) Create(l *entity.Lote) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		INSERT INTO lote (id_producto, codigo_lote, fecha_vencimiento, cantidad_recibida, costo_unitario_compra)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_lote`
	err := r.q.QueryRow(ctx, query,
		l.IDProducto, l.CodigoLote, l.FechaVencimiento, l.CantidadRecibida, l.CostoUnitarioCompra,
	).Scan(&l.IDLote)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LoteRepo) GetByID(id int64) (*entity.Lote, error) {
	ctx, cancel := qctx()
	defer cancel()
	var l entity.Lote
	err := r.q.QueryRow(ctx, `SELECT `+loteCols+` FROM lote WHERE id_lote = $1`, id).Scan(
		&l.IDLote, &l.IDProducto, &l.CodigoLote, &l.FechaVencimiento, &l.CantidadRecibida, &l.CostoUnitarioCompra,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return &l, nil
}

// GetByCodigo obtiene un lote por código (clave natural).
func (r *LoteRepo) GetByCodigo(codigoLote string) (*entity.Lote, error) {
	ctx, cancel := qctx()
	defer cancel()
	var l entity.Lote
	err := r.q.QueryRow(ctx, `SELECT `+loteCols+` FROM lote WHERE codigo_lote = $1`, codigoLote).Scan(
		&l.IDLote, &l.IDProducto, &l.CodigoLote, &l.FechaVencimiento, &l.CantidadRecibida, &l.CostoUnitarioCompra,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote by codigo: %w", err)
	}
	return &l, nil
}

// List lista lotes con paginación, en orden de inserción.
func (r *LoteRepo) List(limit, offset int) ([]*entity.Lote, error) {
	ctx, cancel := qctx()
	defer cancel()
	rows, err := r.q.Query(ctx,
		`SELECT `+loteCols+` FROM lote ORDER BY id_lote LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lote
	for rows.Next() {
		var l entity.Lote
		if err := rows.Scan(&l.IDLote, &l.IDProducto, &l.CodigoLote,
			&l.FechaVencimiento, &l.CantidadRecibida, &l.CostoUnitarioCompra); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// UbicacionRepo implementación de UbicacionRepository.
type UbicacionRepo struct {
	q Querier
}

// NewUbicacionRepository construye el adaptador.
func NewUbicacionRepository(q Querier) *UbicacionRepo {
	return &UbicacionRepo{q: q}
}

// List lista todas las ubicaciones.
func (r *UbicacionRepo) List() ([]*entity.UbicacionEstante, error) {
	ctx, cancel := qctx()
	defer cancel()
	rows, err := r.q.Query(ctx,
		`SELECT id_ubicacion_estante, estante, nivel FROM ubicacion_estante ORDER BY id_ubicacion_estante`)
	if err != nil {
		return nil, fmt.Errorf("list ubicaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.UbicacionEstante
	for rows.Next() {
		var u entity.UbicacionEstante
		if err := rows.Scan(&u.IDUbicacionEstante, &u.Estante, &u.Nivel); err != nil {
			return nil, fmt.Errorf("scan ubicacion: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Create persiste una ubicación y asigna el ID generado.
func (r *UbicacionRepo) Create(u *entity.UbicacionEstante) error {
	ctx, cancel := qctx()
	defer cancel()
	err := r.q.QueryRow(ctx,
		`INSERT INTO ubicacion_estante (estante, nivel) VALUES ($1, $2) RETURNING id_ubicacion_estante`,
		u.Estante, u.Nivel,
	).Scan(&u.IDUbicacionEstante)
	if err != nil {
		return fmt.Errorf("insert ubicacion: %w", err)
	}
	return nil
}
