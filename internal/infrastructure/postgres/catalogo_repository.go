package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

var _ repository.CatalogoRepository = (*CatalogoRepo)(nil)

// CatalogoRepo adaptador genérico para tablas de catálogo
// (id + descripción única). Ocho tablas comparten esta forma: rol,
// cargo, categoria, presentacion, componente, estado_pedido,
// motivo_pedido y metodo_pago; la tabla y las columnas se fijan al
// construir el repo.
type CatalogoRepo struct {
	q       Querier
	table   string
	idCol   string
	descCol string
}

// NewCatalogoRepository construye el adaptador para una tabla de catálogo.
// table, idCol y descCol son constantes del código, nunca entrada del usuario.
func NewCatalogoRepository(q Querier, table, idCol, descCol string) *CatalogoRepo {
	return &CatalogoRepo{q: q, table: table, idCol: idCol, descCol: descCol}
}

// List lista todas las filas del catálogo en orden de inserción.
func (r *CatalogoRepo) List() ([]entity.CatalogoItem, error) {
	ctx, cancel := qctx()
	defer cancel()
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s`, r.idCol, r.descCol, r.table, r.idCol)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()
	var list []entity.CatalogoItem
	for rows.Next() {
		var item entity.CatalogoItem
		if err := rows.Scan(&item.ID, &item.Descripcion); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// GetByID obtiene una fila del catálogo por ID.
func (r *CatalogoRepo) GetByID(id int64) (*entity.CatalogoItem, error) {
	ctx, cancel := qctx()
	defer cancel()
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`, r.idCol, r.descCol, r.table, r.idCol)
	var item entity.CatalogoItem
	err := r.q.QueryRow(ctx, query, id).Scan(&item.ID, &item.Descripcion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.table, err)
	}
	return &item, nil
}

// GetByDescripcion obtiene una fila por su descripción (clave natural).
func (r *CatalogoRepo) GetByDescripcion(descripcion string) (*entity.CatalogoItem, error) {
	ctx, cancel := qctx()
	defer cancel()
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`, r.idCol, r.descCol, r.table, r.descCol)
	var item entity.CatalogoItem
	err := r.q.QueryRow(ctx, query, descripcion).Scan(&item.ID, &item.Descripcion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s by descripcion: %w", r.table, err)
	}
	return &item, nil
}

// Create persiste una fila del catálogo y asigna el ID generado.
func (r *CatalogoRepo) Create(item *entity.CatalogoItem) error {
	ctx, cancel := qctx()
	defer cancel()
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`, r.table, r.descCol, r.idCol)
	err := r.q.QueryRow(ctx, query, item.Descripcion).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", r.table, err)
	}
	return nil
}

// Delete elimina una fila del catálogo por ID.
func (r *CatalogoRepo) Delete(id int64) error {
	ctx, cancel := qctx()
	defer cancel()
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, r.table, r.idCol)
	cmd, err := r.q.Exec(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("delete %s: %w", r.table, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
