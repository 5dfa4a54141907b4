package repository

import "github.com/tu-usuario/farmacia-api/internal/domain/entity"

// PedidoRepository cabecera y detalles del pedido. Create asigna el ID
// generado; CreateDetalle se invoca dentro de la misma transacción.
type PedidoRepository interface {
	List(limit, offset int) ([]*entity.Pedido, error)
	GetByID(id int64) (*entity.Pedido, error)
	Create(p *entity.Pedido) error
	CreateDetalle(d *entity.DetallePedido) error
	GetDetalles(idPedido int64) ([]entity.DetallePedido, error)
	UpdateEstado(idPedido, idEstadoPedido int64) error
	Update(p *entity.Pedido) error
}
