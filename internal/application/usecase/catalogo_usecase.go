package usecase

import (
	"strings"

	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

// CatalogoUseCase casos de uso genéricos para las tablas de catálogo
// (id + descripción única): roles, cargos, categorías, presentaciones,
// componentes, estados y motivos de pedido, métodos de pago. Se
// instancia una vez por catálogo con su repositorio parametrizado.
type CatalogoUseCase struct {
	repo repository.CatalogoRepository
}

// NewCatalogoUseCase construye el caso de uso para un catálogo.
func NewCatalogoUseCase(repo repository.CatalogoRepository) *CatalogoUseCase {
	return &CatalogoUseCase{repo: repo}
}

// Create crea una entrada. La descripción duplicada se rechaza antes de
// escribir; la restricción única es la autoridad final.
func (uc *CatalogoUseCase) Create(in dto.CreateCatalogoRequest) (*dto.CatalogoResponse, error) {
	desc := strings.TrimSpace(in.Descripcion)
	if desc == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByDescripcion(desc)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	item := &entity.CatalogoItem{Descripcion: desc}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toCatalogoResponse(item), nil
}

// List lista todas las entradas del catálogo.
func (uc *CatalogoUseCase) List() ([]dto.CatalogoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogoResponse, 0, len(list))
	for i := range list {
		out = append(out, *toCatalogoResponse(&list[i]))
	}
	return out, nil
}

// GetByID obtiene una entrada por ID.
func (uc *CatalogoUseCase) GetByID(id int64) (*dto.CatalogoResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toCatalogoResponse(item), nil
}

// Delete elimina una entrada. Falla con error de referencia si alguna
// fila la usa.
func (uc *CatalogoUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toCatalogoResponse(item *entity.CatalogoItem) *dto.CatalogoResponse {
	return &dto.CatalogoResponse{ID: item.ID, Descripcion: item.Descripcion}
}
