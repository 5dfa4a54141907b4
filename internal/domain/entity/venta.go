package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta transacción de venta. Posee uno o más DetalleVenta, exactamente
// un Pago y exactamente un Comprobante, todos creados en la misma
// transacción. MontoTotal es la suma exacta de los subtotales.
type Venta struct {
	IDVenta    int64
	IDCliente  int64
	IDUsuario  int64 // quien atiende
	FechaVenta time.Time
	HoraVenta  string // HH:MM:SS, mismo instante que FechaVenta y Pago.FechaHora
	MontoTotal decimal.Decimal
}

// DetalleVenta línea de la venta, clave compuesta (venta, producto).
// Subtotal = Cantidad × PrecioUnitarioVenta, aritmética decimal exacta.
type DetalleVenta struct {
	IDVenta             int64
	IDProducto          int64
	Cantidad            int
	PrecioUnitarioVenta decimal.Decimal
	Subtotal            decimal.Decimal
}
