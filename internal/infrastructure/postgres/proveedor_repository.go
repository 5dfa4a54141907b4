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
	_ repository.ProveedorRepository         = (*ProveedorRepo)(nil)
	_ repository.ContactoProveedorRepository = (*ContactoProveedorRepo)(nil)
)

// ProveedorRepo implementación de ProveedorRepository.
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

const proveedorCols = `id_proveedor, ruc, razon_social,
	COALESCE(direccion_empresa, ''), COALESCE(telefono_empresa, ''), COALESCE(correo_empresa, '')`

// Create persiste un proveedor y asigna el ID generado.
func (r *ProveedorRepo) Create(p *entity.Proveedor) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		INSERT INTO proveedor (ruc, razon_social, direccion_empresa, telefono_empresa, correo_empresa)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_proveedor`
	err := r.q.QueryRow(ctx, query,
		p.RUC, p.RazonSocial, p.DireccionEmpresa, p.TelefonoEmpresa, p.CorreoEmpresa,
	).Scan(&p.IDProveedor)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProveedorRepo) GetByID(id int64) (*entity.Proveedor, error) {
	ctx, cancel := qctx()
	defer cancel()
	var p entity.Proveedor
	err := r.q.QueryRow(ctx,
		`SELECT `+proveedorCols+` FROM proveedor WHERE id_proveedor = $1`, id,
	).Scan(&p.IDProveedor, &p.RUC, &p.RazonSocial, &p.DireccionEmpresa, &p.TelefonoEmpresa, &p.CorreoEmpresa)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// GetByRUC obtiene un proveedor por RUC (clave natural).
func (r *ProveedorRepo) GetByRUC(ruc string) (*entity.Proveedor, error) {
	ctx, cancel := qctx()
	defer cancel()
	var p entity.Proveedor
	err := r.q.QueryRow(ctx,
		`SELECT `+proveedorCols+` FROM proveedor WHERE ruc = $1`, ruc,
	).Scan(&p.IDProveedor, &p.RUC, &p.RazonSocial, &p.DireccionEmpresa, &p.TelefonoEmpresa, &p.CorreoEmpresa)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor by ruc: %w", err)
	}
	return &p, nil
}

// List lista proveedores con paginación, en orden de inserción.
func (r *ProveedorRepo) List(limit, offset int) ([]*entity.Proveedor, error) {
	ctx, cancel := qctx()
	defer cancel()
	rows, err := r.q.Query(ctx,
		`SELECT `+proveedorCols+` FROM proveedor ORDER BY id_proveedor LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.IDProveedor, &p.RUC, &p.RazonSocial,
			&p.DireccionEmpresa, &p.TelefonoEmpresa, &p.CorreoEmpresa); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos mutables del proveedor.
func (r *ProveedorRepo) Update(p *entity.Proveedor) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		UPDATE proveedor
		SET ruc = $2, razon_social = $3, direccion_empresa = $4, telefono_empresa = $5, correo_empresa = $6
		WHERE id_proveedor = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.IDProveedor, p.RUC, p.RazonSocial, p.DireccionEmpresa, p.TelefonoEmpresa, p.CorreoEmpresa,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update proveedor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor; sus contactos caen en cascada.
func (r *ProveedorRepo) Delete(id int64) error {
	ctx, cancel := qctx()
	defer cancel()
	cmd, err := r.q.Exec(ctx, `DELETE FROM proveedor WHERE id_proveedor = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ContactoProveedorRepo implementación de ContactoProveedorRepository.
type ContactoProveedorRepo struct {
	q Querier
}

// NewContactoProveedorRepository construye el adaptador.
func NewContactoProveedorRepository(q Querier) *ContactoProveedorRepo {
	return &ContactoProveedorRepo{q: q}
}

// ListByProveedor lista los contactos de un proveedor.
func (r *ContactoProveedorRepo) ListByProveedor(idProveedor int64) ([]*entity.ContactoProveedor, error) {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		SELECT id_contacto, id_proveedor, id_cargo, nombres, apellido_paterno,
		       COALESCE(apellido_materno, ''), COALESCE(telefono_contacto, '')
		FROM contacto_proveedor WHERE id_proveedor = $1 ORDER BY id_contacto`
	rows, err := r.q.Query(ctx, query, idProveedor)
	if err != nil {
		return nil, fmt.Errorf("list contactos: %w", err)
	}
	defer rows.Close()
	var list []*entity.ContactoProveedor
	for rows.Next() {
		var c entity.ContactoProveedor
		if err := rows.Scan(&c.IDContacto, &c.IDProveedor, &c.IDCargo, &c.Nombres,
			&c.ApellidoPaterno, &c.ApellidoMaterno, &c.TelefonoContacto); err != nil {
			return nil, fmt.Errorf("scan contacto: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Create persiste un contacto y asigna el ID generado.
func (r *ContactoProveedorRepo) Create(c *entity.ContactoProveedor) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		INSERT INTO contacto_proveedor (id_proveedor, id_cargo, nombres, apellido_paterno, apellido_materno, telefono_contacto)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_contacto`
	err := r.q.QueryRow(ctx, query,
		c.IDProveedor, c.IDCargo, c.Nombres, c.ApellidoPaterno, c.ApellidoMaterno, c.TelefonoContacto,
	).Scan(&c.IDContacto)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("insert contacto: %w", err)
	}
	return nil
}
