// Package ventas implementa el registro y consulta de ventas. Una
// venta se persiste como agregado completo: cabecera, detalles, pago y
// comprobante en una misma transacción.
package ventas

import (
	"context"

	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

// TxRunner ejecuta el callback en una transacción con los repositorios
// del agregado venta atados a ella. Si el callback falla, ninguna fila
// queda escrita.
type TxRunner interface {
	RunVenta(ctx context.Context, fn func(
		ventaRepo repository.VentaRepository,
		pagoRepo repository.PagoRepository,
		comprobanteRepo repository.ComprobanteRepository,
	) error) error
}
