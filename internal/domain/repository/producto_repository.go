package repository

import "github.com/tu-usuario/farmacia-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto y
// sus tablas de unión. Los AddXxx se invocan dentro de la misma
// transacción que Create (fan-out del agregado).
type ProductoRepository interface {
	List(limit, offset int) ([]*entity.Producto, error)
	GetByID(id int64) (*entity.Producto, error)
	GetByCodigo(codigoInterno string) (*entity.Producto, error)
	// Search busca por subcadena en nombre_comercial o codigo_interno,
	// sin distinguir mayúsculas ni acentos.
	Search(q string) ([]*entity.Producto, error)
	Create(p *entity.Producto) error
	AddCategoria(idProducto, idCategoria int64) error
	AddPresentacion(idProducto, idPresentacion int64) error
	AddComponente(idProducto, idComponente int64) error
	Update(p *entity.Producto) error
	Delete(id int64) error
}
