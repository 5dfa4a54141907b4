package repository

import "github.com/tu-usuario/farmacia-api/internal/domain/entity"

// CompraRepository recepciones de pedidos.
type CompraRepository interface {
	List(limit, offset int) ([]*entity.Compra, error)
	GetByID(id int64) (*entity.Compra, error)
	GetByPedido(idPedido int64) (*entity.Compra, error)
	Create(c *entity.Compra) error
	Update(c *entity.Compra) error
}
