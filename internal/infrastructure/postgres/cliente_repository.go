package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteCols = `id_cliente, nro_doc, tipo_doc, nombres, apellido_paterno,
	COALESCE(apellido_materno, ''), COALESCE(correo, ''), COALESCE(direccion, '')`

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(&c.IDCliente, &c.NroDoc, &c.TipoDoc, &c.Nombres,
		&c.ApellidoPaterno, &c.ApellidoMaterno, &c.Correo, &c.Direccion)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un cliente y asigna el ID generado.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		INSERT INTO cliente (nro_doc, tipo_doc, nombres, apellido_paterno, apellido_materno, correo, direccion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_cliente`
	err := r.q.QueryRow(ctx, query,
		c.NroDoc, c.TipoDoc, c.Nombres, c.ApellidoPaterno, c.ApellidoMaterno, c.Correo, c.Direccion,
	).Scan(&c.IDCliente)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// AddTelefono inserta un teléfono del cliente. Misma transacción que Create.
func (r *ClienteRepo) AddTelefono(idCliente int64, telefono string) error {
	ctx, cancel := qctx()
	defer cancel()
	_, err := r.q.Exec(ctx,
		`INSERT INTO cliente_telefono (id_cliente, telefono) VALUES ($1, $2)`,
		idCliente, telefono,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("insert cliente_telefono: %w", err)
	}
	return nil
}

// GetTelefonos lista los teléfonos de un cliente.
func (r *ClienteRepo) GetTelefonos(idCliente int64) ([]string, error) {
	ctx, cancel := qctx()
	defer cancel()
	rows, err := r.q.Query(ctx,
		`SELECT telefono FROM cliente_telefono WHERE id_cliente = $1 ORDER BY telefono`, idCliente)
	if err != nil {
		return nil, fmt.Errorf("list telefonos: %w", err)
	}
	defer rows.Close()
	var tels []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan telefono: %w", err)
		}
		tels = append(tels, t)
	}
	return tels, rows.Err()
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	ctx, cancel := qctx()
	defer cancel()
	c, err := scanCliente(r.q.QueryRow(ctx,
		`SELECT `+clienteCols+` FROM cliente WHERE id_cliente = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// GetByDoc obtiene un cliente por número de documento (clave natural).
func (r *ClienteRepo) GetByDoc(nroDoc string) (*entity.Cliente, error) {
	ctx, cancel := qctx()
	defer cancel()
	c, err := scanCliente(r.q.QueryRow(ctx,
		`SELECT `+clienteCols+` FROM cliente WHERE nro_doc = $1`, nroDoc))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente by doc: %w", err)
	}
	return c, nil
}

// List lista clientes con paginación, en orden de inserción.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	ctx, cancel := qctx()
	defer cancel()
	rows, err := r.q.Query(ctx,
		`SELECT `+clienteCols+` FROM cliente ORDER BY id_cliente LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.IDCliente, &c.NroDoc, &c.TipoDoc, &c.Nombres,
			&c.ApellidoPaterno, &c.ApellidoMaterno, &c.Correo, &c.Direccion); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos mutables del cliente.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		UPDATE cliente
		SET nro_doc = $2, tipo_doc = $3, nombres = $4, apellido_paterno = $5,
		    apellido_materno = $6, correo = $7, direccion = $8
		WHERE id_cliente = $1`
	cmd, err := r.q.Exec(ctx, query,
		c.IDCliente, c.NroDoc, c.TipoDoc, c.Nombres, c.ApellidoPaterno,
		c.ApellidoMaterno, c.Correo, c.Direccion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente; sus teléfonos caen en cascada.
func (r *ClienteRepo) Delete(id int64) error {
	ctx, cancel := qctx()
	defer cancel()
	cmd, err := r.q.Exec(ctx, `DELETE FROM cliente WHERE id_cliente = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
