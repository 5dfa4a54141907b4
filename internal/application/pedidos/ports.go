// Package pedidos implementa la gestión de pedidos a proveedores. Un
// pedido se persiste como agregado: cabecera y detalles en una misma
// transacción.
package pedidos

import (
	"context"

	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

// TxRunner ejecuta el callback en una transacción con un
// PedidoRepository atado a ella.
type TxRunner interface {
	RunPedido(ctx context.Context, fn func(pedidoRepo repository.PedidoRepository) error) error
}
