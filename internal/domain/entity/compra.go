package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compra recepción confirmada de un pedido (1:1 con pedido).
type Compra struct {
	IDCompra        int64
	IDPedido        int64 // único
	FechaRecepcion  time.Time
	NroGuia         string // único
	TipoComprobante string // Factura, Boleta
	NroComprobante  string // único
	MontoTotal      decimal.Decimal
	Estado          string // Pagado, Pendiente
	FechaPago       *time.Time
}
