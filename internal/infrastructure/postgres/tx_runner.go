package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/farmacia-api/internal/application/pedidos"
	"github.com/tu-usuario/farmacia-api/internal/application/usecase"
	"github.com/tu-usuario/farmacia-api/internal/application/ventas"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

// TxRunner implementa los puertos de transacción de cada agregado.
var (
	_ ventas.TxRunner          = (*TxRunner)(nil)
	_ pedidos.TxRunner         = (*TxRunner)(nil)
	_ usecase.UsuarioTxRunner  = (*TxRunner)(nil)
	_ usecase.ClienteTxRunner  = (*TxRunner)(nil)
	_ usecase.ProductoTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// El callback recibe repos atados a la tx; si retorna error se hace
// Rollback, si no, Commit. Así cada creación de agregado (raíz + filas
// dependientes) es todo-o-nada.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) run(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunVenta transacción para crear una venta con detalles, pago y comprobante.
func (r *TxRunner) RunVenta(ctx context.Context, fn func(
	ventaRepo repository.VentaRepository,
	pagoRepo repository.PagoRepository,
	comprobanteRepo repository.ComprobanteRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewVentaRepository(q), NewPagoRepository(q), NewComprobanteRepository(q))
	})
}

// RunPedido transacción para crear un pedido con sus detalles.
func (r *TxRunner) RunPedido(ctx context.Context, fn func(
	pedidoRepo repository.PedidoRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewPedidoRepository(q))
	})
}

// RunUsuario transacción para crear un usuario con sus roles.
func (r *TxRunner) RunUsuario(ctx context.Context, fn func(
	usuarioRepo repository.UsuarioRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewUsuarioRepository(q))
	})
}

// RunCliente transacción para crear un cliente con sus teléfonos.
func (r *TxRunner) RunCliente(ctx context.Context, fn func(
	clienteRepo repository.ClienteRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewClienteRepository(q))
	})
}

// RunProducto transacción para crear un producto con categorías,
// presentaciones y componentes.
func (r *TxRunner) RunProducto(ctx context.Context, fn func(
	productoRepo repository.ProductoRepository,
) error) error {
	return r.run(ctx, func(q Querier) error {
		return fn(NewProductoRepository(q))
	})
}
