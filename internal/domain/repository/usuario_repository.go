package repository

import "github.com/tu-usuario/farmacia-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
// Create asigna el ID generado sobre la entidad (root-first: el ID debe
// existir antes de insertar usuario_rol).
type UsuarioRepository interface {
	List(limit, offset int) ([]*entity.Usuario, error)
	GetByID(id int64) (*entity.Usuario, error)
	GetByUsername(username string) (*entity.Usuario, error)
	Create(u *entity.Usuario) error
	AddRol(idUsuario, idRol int64) error
	GetRoles(idUsuario int64) ([]entity.Rol, error)
	Update(u *entity.Usuario) error
	Delete(id int64) error
}
