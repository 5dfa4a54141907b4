package repository

import "github.com/tu-usuario/farmacia-api/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	List(limit, offset int) ([]*entity.Proveedor, error)
	GetByID(id int64) (*entity.Proveedor, error)
	GetByRUC(ruc string) (*entity.Proveedor, error)
	Create(p *entity.Proveedor) error
	Update(p *entity.Proveedor) error
	Delete(id int64) error
}

// ContactoProveedorRepository contactos de un proveedor.
type ContactoProveedorRepository interface {
	ListByProveedor(idProveedor int64) ([]*entity.ContactoProveedor, error)
	Create(c *entity.ContactoProveedor) error
}
