package usecase

import (
	"context"

	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

// UsuarioTxRunner ejecuta el callback en una transacción con un
// UsuarioRepository atado a ella. Usuario y usuario_rol se insertan
// todo-o-nada.
type UsuarioTxRunner interface {
	RunUsuario(ctx context.Context, fn func(usuarioRepo repository.UsuarioRepository) error) error
}

// ClienteTxRunner transacción para cliente y sus teléfonos.
type ClienteTxRunner interface {
	RunCliente(ctx context.Context, fn func(clienteRepo repository.ClienteRepository) error) error
}

// ProductoTxRunner transacción para producto y sus tablas de unión.
type ProductoTxRunner interface {
	RunProducto(ctx context.Context, fn func(productoRepo repository.ProductoRepository) error) error
}
