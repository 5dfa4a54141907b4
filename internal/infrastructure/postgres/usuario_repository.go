package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un usuario y asigna el ID generado.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		INSERT INTO usuario (username, password, nombres, apellido_paterno, apellido_materno)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_usuario`
	err := r.q.QueryRow(ctx, query,
		u.Username, u.Password, u.Nombres, u.ApellidoPaterno, u.ApellidoMaterno,
	).Scan(&u.IDUsuario)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// AddRol inserta una fila en usuario_rol. Debe ejecutarse en la misma
// transacción que Create.
func (r *UsuarioRepo) AddRol(idUsuario, idRol int64) error {
	ctx, cancel := qctx()
	defer cancel()
	_, err := r.q.Exec(ctx,
		`INSERT INTO usuario_rol (id_usuario, id_rol) VALUES ($1, $2)`,
		idUsuario, idRol,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferencia
		}
		return fmt.Errorf("insert usuario_rol: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		SELECT id_usuario, username, password, nombres, apellido_paterno, COALESCE(apellido_materno, '')
		FROM usuario WHERE id_usuario = $1`
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.IDUsuario, &u.Username, &u.Password, &u.Nombres, &u.ApellidoPaterno, &u.ApellidoMaterno,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// GetByUsername obtiene un usuario por su username (clave natural).
func (r *UsuarioRepo) GetByUsername(username string) (*entity.Usuario, error) {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		SELECT id_usuario, username, password, nombres, apellido_paterno, COALESCE(apellido_materno, '')
		FROM usuario WHERE username = $1`
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, username).Scan(
		&u.IDUsuario, &u.Username, &u.Password, &u.Nombres, &u.ApellidoPaterno, &u.ApellidoMaterno,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by username: %w", err)
	}
	return &u, nil
}

// GetRoles lista los roles asignados a un usuario.
func (r *UsuarioRepo) GetRoles(idUsuario int64) ([]entity.Rol, error) {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		SELECT r.id_rol, r.nombre_rol
		FROM rol r JOIN usuario_rol ur ON ur.id_rol = r.id_rol
		WHERE ur.id_usuario = $1 ORDER BY r.id_rol`
	rows, err := r.q.Query(ctx, query, idUsuario)
	if err != nil {
		return nil, fmt.Errorf("list roles de usuario: %w", err)
	}
	defer rows.Close()
	var roles []entity.Rol
	for rows.Next() {
		var rol entity.Rol
		if err := rows.Scan(&rol.IDRol, &rol.NombreRol); err != nil {
			return nil, fmt.Errorf("scan rol: %w", err)
		}
		roles = append(roles, rol)
	}
	return roles, rows.Err()
}

// List lista usuarios con paginación, en orden de inserción.
func (r *UsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		SELECT id_usuario, username, password, nombres, apellido_paterno, COALESCE(apellido_materno, '')
		FROM usuario ORDER BY id_usuario LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.IDUsuario, &u.Username, &u.Password, &u.Nombres, &u.ApellidoPaterno, &u.ApellidoMaterno); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos mutables del usuario.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	ctx, cancel := qctx()
	defer cancel()
	query := `
		UPDATE usuario
		SET username = $2, password = $3, nombres = $4, apellido_paterno = $5, apellido_materno = $6
		WHERE id_usuario = $1`
	cmd, err := r.q.Exec(ctx, query,
		u.IDUsuario, u.Username, u.Password, u.Nombres, u.ApellidoPaterno, u.ApellidoMaterno,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un usuario; sus filas usuario_rol caen en cascada.
func (r *UsuarioRepo) Delete(id int64) error {
	ctx, cancel := qctx()
	defer cancel()
	cmd, err := r.q.Exec(ctx, `DELETE FROM usuario WHERE id_usuario = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
