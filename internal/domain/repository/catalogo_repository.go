package repository

import "github.com/tu-usuario/farmacia-api/internal/domain/entity"

// CatalogoRepository puerto genérico para las tablas de catálogo
// (id + descripción única). La implementación parametriza tabla y columnas.
type CatalogoRepository interface {
	List() ([]entity.CatalogoItem, error)
	GetByID(id int64) (*entity.CatalogoItem, error)
	GetByDescripcion(descripcion string) (*entity.CatalogoItem, error)
	Create(item *entity.CatalogoItem) error
	Delete(id int64) error
}
