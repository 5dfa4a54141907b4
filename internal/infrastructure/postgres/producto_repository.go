package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoCols = `id_producto, codigo_interno, nombre_comercial, precio_venta, afecta_igv, requiere_receta`

// Create persiste un producto y asigna el ID generado.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		INSERT INTO producto (codigo_interno, nombre_comercial, precio_venta, afecta_igv, requiere_receta)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_producto`
	err := r.q.QueryRow(ctx, query,
		p.CodigoInterno, p.NombreComercial, p.PrecioVenta, p.AfectaIGV, p.RequiereReceta,
	).Scan(&p.IDProducto)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// AddCategoria inserta la fila de unión producto-categoría. Misma transacción que Create.
func (r *ProductoRepo) AddCategoria(idProducto, idCategoria int64) error {
	return r.addJoin(`INSERT INTO producto_categoria (id_producto, id_categoria) VALUES ($1, $2)`,
		"producto_categoria", idProducto, idCategoria)
}

// AddPresentacion inserta la fila de unión producto-presentación.
func (r *ProductoRepo) AddPresentacion(idProducto, idPresentacion int64) error {
	return r.addJoin(`INSERT INTO producto_presentacion (id_producto, id_presentacion) VALUES ($1, $2)`,
		"producto_presentacion", idProducto, idPresentacion)
}

// AddComponente inserta la fila de unión producto-componente.
func (r *ProductoRepo) AddComponente(idProducto, idComponente int64) error {
	return r.addJoin(`INSERT INTO producto_componente (id_producto, id_componente) VALUES ($1, $2)`,
		"producto_componente", idProducto, idComponente)
}

func (r *ProductoRepo) addJoin(query, table string, idProducto, idOther int64) error {
	ctx, cancel := qctx()
	defer cancel()
	_, err := r.q.Exec(ctx, query, idProducto, idOther)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	ctx, cancel := qctx()
	defer cancel()
	var p entity.Producto
	err := r.q.QueryRow(ctx,
		`SELECT `+productoCols+` FROM producto WHERE id_producto = $1`, id,
	).Scan(&p.IDProducto, &p.CodigoInterno, &p.NombreComercial, &p.PrecioVenta, &p.AfectaIGV, &p.RequiereReceta)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// GetByCodigo obtiene un producto por código interno (clave natural).
func (r *ProductoRepo) GetByCodigo(codigoInterno string) (*entity.Producto, error) {
	ctx, cancel := qctx()
	defer cancel()
	var p entity.Producto
	err := r.q.QueryRow(ctx,
		`SELECT `+productoCols+` FROM producto WHERE codigo_interno = $1`, codigoInterno,
	).Scan(&p.IDProducto, &p.CodigoInterno, &p.NombreComercial, &p.PrecioVenta, &p.AfectaIGV, &p.RequiereReceta)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto by codigo: %w", err)
	}
	return &p, nil
}

// Search busca por subcadena en nombre_comercial o codigo_interno.
// unaccent en ambos lados hace la comparación insensible a acentos;
// ILIKE la hace insensible a mayúsculas.
func (r *ProductoRepo) Search(q string) ([]*entity.Producto, error) {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		SELECT ` + productoCols + ` FROM producto
		WHERE unaccent(nombre_comercial) ILIKE unaccent('%' || $1 || '%')
		   OR unaccent(codigo_interno)  ILIKE unaccent('%' || $1 || '%')
		ORDER BY id_producto`
	rows, err := r.q.Query(ctx, query, q)
	if err != nil {
		return nil, fmt.Errorf("search productos: %w", err)
	}
	defer rows.Close()
	return scanProductos(rows)
}

// List lista productos con paginación, en orden de inserción.
func (r *ProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	ctx, cancel := qctx()
	defer cancel()
	rows, err := r.q.Query(ctx,
		`SELECT `+productoCols+` FROM producto ORDER BY id_producto LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	return scanProductos(rows)
}

func scanProductos(rows pgx.Rows) ([]*entity.Producto, error) {
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.IDProducto, &p.CodigoInterno, &p.NombreComercial,
			&p.PrecioVenta, &p.AfectaIGV, &p.RequiereReceta); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos mutables del producto.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		UPDATE producto
		SET codigo_interno = $2, nombre_comercial = $3, precio_venta = $4, afecta_igv = $5, requiere_receta = $6
		WHERE id_producto = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.IDProducto, p.CodigoInterno, p.NombreComercial, p.PrecioVenta, p.AfectaIGV, p.RequiereReceta,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto; sus filas de unión caen en cascada.
func (r *ProductoRepo) Delete(id int64) error {
	ctx, cancel := qctx()
	defer cancel()
	cmd, err := r.q.Exec(ctx, `DELETE FROM producto WHERE id_producto = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
