// Package auth implementa el inicio de sesión con usuario y password.
// El token resultante identifica al usuario que opera; no hay modelo
// de permisos.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
	"github.com/tu-usuario/farmacia-api/pkg/jwt"
)

// UseCase caso de uso de autenticación.
type UseCase struct {
	repo       repository.UsuarioRepository
	secret     string
	issuer     string
	expMinutes int
}

// NewUseCase construye el caso de uso con la configuración JWT.
func NewUseCase(repo repository.UsuarioRepository, secret, issuer string, expMinutes int) *UseCase {
	return &UseCase{repo: repo, secret: secret, issuer: issuer, expMinutes: expMinutes}
}

// Login valida las credenciales y emite un token. Usuario inexistente
// y password incorrecto responden igual, sin revelar cuál falló.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	u, err := uc.repo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.secret, u.IDUsuario, u.Username, uc.issuer, uc.expMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		IDUsuario:   u.IDUsuario,
		Username:    u.Username,
	}, nil
}
