package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pago pago de una venta (1:1). Monto debe ser igual al total de la venta.
type Pago struct {
	IDPago       int64
	IDVenta      int64 // único
	IDMetodoPago int64
	FechaHora    time.Time
	Monto        decimal.Decimal
}

// MetodoPago método de pago (efectivo, Yape, tarjeta, etc.).
type MetodoPago struct {
	IDMetodoPago int64
	Descripcion  string // único
}

// Comprobante comprobante emitido por una venta (1:1), con número externo único.
type Comprobante struct {
	IDComprobante   int64
	IDVenta         int64  // único
	TipoComprobante string // Boleta, Factura
	NroComprobante  string // único
}
