package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

// UsuarioUseCase casos de uso de usuarios. La creación inserta usuario
// y roles en una sola transacción.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
	tx   UsuarioTxRunner
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository, tx UsuarioTxRunner) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, tx: tx}
}

// Create crea un usuario con sus roles. El username duplicado se
// rechaza antes de escribir; la restricción única de la tabla es la
// autoridad final.
func (uc *UsuarioUseCase) Create(ctx context.Context, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.Username == "" || in.Password == "" || in.Nombres == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.Usuario{
		Username:        in.Username,
		Password:        string(hash),
		Nombres:         in.Nombres,
		ApellidoPaterno: in.ApellidoPaterno,
		ApellidoMaterno: in.ApellidoMaterno,
	}
	var roles []entity.Rol
	err = uc.tx.RunUsuario(ctx, func(repo repository.UsuarioRepository) error {
		if err := repo.Create(u); err != nil {
			return err
		}
		for _, idRol := range in.Roles {
			if err := repo.AddRol(u.IDUsuario, idRol); err != nil {
				return err
			}
		}
		var err error
		roles, err = repo.GetRoles(u.IDUsuario)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toUsuarioResponse(u, roles), nil
}

// List lista usuarios con paginación, incluyendo sus roles.
func (uc *UsuarioUseCase) List(limit, offset int) ([]*dto.UsuarioResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		roles, err := uc.repo.GetRoles(u.IDUsuario)
		if err != nil {
			return nil, err
		}
		out = append(out, toUsuarioResponse(u, roles))
	}
	return out, nil
}

// GetByID obtiene un usuario con sus roles.
func (uc *UsuarioUseCase) GetByID(id int64) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	roles, err := uc.repo.GetRoles(u.IDUsuario)
	if err != nil {
		return nil, err
	}
	return toUsuarioResponse(u, roles), nil
}

// Update actualización parcial: solo los campos presentes cambian.
// Si viene password se vuelve a hashear.
func (uc *UsuarioUseCase) Update(id int64, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if in.Username != nil && *in.Username != u.Username {
		existing, err := uc.repo.GetByUsername(*in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		u.Username = *in.Username
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.Password = string(hash)
	}
	if in.Nombres != nil {
		u.Nombres = *in.Nombres
	}
	if in.ApellidoPaterno != nil {
		u.ApellidoPaterno = *in.ApellidoPaterno
	}
	if in.ApellidoMaterno != nil {
		u.ApellidoMaterno = *in.ApellidoMaterno
	}
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	roles, err := uc.repo.GetRoles(u.IDUsuario)
	if err != nil {
		return nil, err
	}
	return toUsuarioResponse(u, roles), nil
}

// Delete elimina un usuario (sus roles caen en cascada).
func (uc *UsuarioUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toUsuarioResponse(u *entity.Usuario, roles []entity.Rol) *dto.UsuarioResponse {
	out := &dto.UsuarioResponse{
		IDUsuario:       u.IDUsuario,
		Username:        u.Username,
		Nombres:         u.Nombres,
		ApellidoPaterno: u.ApellidoPaterno,
		ApellidoMaterno: u.ApellidoMaterno,
	}
	for _, r := range roles {
		out.Roles = append(out.Roles, dto.RolResponse{IDRol: r.IDRol, NombreRol: r.NombreRol})
	}
	return out
}
