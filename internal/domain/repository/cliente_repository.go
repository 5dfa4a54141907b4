package repository

import "github.com/tu-usuario/farmacia-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	List(limit, offset int) ([]*entity.Cliente, error)
	GetByID(id int64) (*entity.Cliente, error)
	GetByDoc(nroDoc string) (*entity.Cliente, error)
	Create(c *entity.Cliente) error
	AddTelefono(idCliente int64, telefono string) error
	GetTelefonos(idCliente int64) ([]string, error)
	Update(c *entity.Cliente) error
	Delete(id int64) error
}
