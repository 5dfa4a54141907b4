package repository

import "github.com/tu-usuario/farmacia-api/internal/domain/entity"

// VentaRepository cabecera y detalles de venta. Create asigna el ID
// generado (root-first); CreateDetalle se invoca dentro de la misma
// transacción que la cabecera.
type VentaRepository interface {
	List(limit, offset int) ([]*entity.Venta, error)
	GetByID(id int64) (*entity.Venta, error)
	Create(v *entity.Venta) error
	CreateDetalle(d *entity.DetalleVenta) error
	GetDetalles(idVenta int64) ([]entity.DetalleVenta, error)
}

// PagoRepository pago de una venta (exactamente uno por venta).
type PagoRepository interface {
	Create(p *entity.Pago) error
	GetByVenta(idVenta int64) (*entity.Pago, error)
}

// ComprobanteRepository comprobante de una venta (exactamente uno por venta).
type ComprobanteRepository interface {
	Create(c *entity.Comprobante) error
	GetByVenta(idVenta int64) (*entity.Comprobante, error)
	GetByNumero(nroComprobante string) (*entity.Comprobante, error)
}
