package repository

import "github.com/tu-usuario/farmacia-api/internal/domain/entity"

// InventarioRepository vista de inventario con lote y ubicación
// desnormalizados. Las lecturas usan un solo JOIN: una fila sin lote o
// sin ubicación simplemente no aparece en el resultado.
type InventarioRepository interface {
	List(limit, offset int) ([]*entity.InventarioDetalle, error)
	GetByID(id int64) (*entity.InventarioDetalle, error)
	ListByProducto(idProducto int64) ([]*entity.InventarioDetalle, error)
	Create(inv *entity.Inventario) error
	UpdateStock(id int64, stockActual int) error
}

// LoteRepository lotes recibidos por producto.
type LoteRepository interface {
	List(limit, offset int) ([]*entity.Lote, error)
	GetByID(id int64) (*entity.Lote, error)
	GetByCodigo(codigoLote string) (*entity.Lote, error)
	Create(l *entity.Lote) error
}

// UbicacionRepository ubicaciones de estante.
type UbicacionRepository interface {
	List() ([]*entity.UbicacionEstante, error)
	Create(u *entity.UbicacionEstante) error
}
