package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetalleVentaItem línea de venta dentro del cuerpo de creación.
type DetalleVentaItem struct {
	IDProducto          int64           `json:"id_producto"`
	Cantidad            int             `json:"cantidad"`
	PrecioUnitarioVenta decimal.Decimal `json:"precio_unitario_venta"`
}

// CreateVentaRequest entrada para registrar una venta completa. El
// usuario que atiende sale del token, no del cuerpo. El monto total se
// calcula en el servidor a partir de los detalles.
type CreateVentaRequest struct {
	IDCliente       int64              `json:"id_cliente"`
	IDMetodoPago    int64              `json:"id_metodo_pago"`
	TipoComprobante string             `json:"tipo_comprobante"`
	NroComprobante  string             `json:"nro_comprobante"`
	Detalles        []DetalleVentaItem `json:"detalles"`
}

// DetalleVentaResponse línea persistida con su subtotal.
type DetalleVentaResponse struct {
	IDProducto          int64           `json:"id_producto"`
	Cantidad            int             `json:"cantidad"`
	PrecioUnitarioVenta decimal.Decimal `json:"precio_unitario_venta"`
	Subtotal            decimal.Decimal `json:"subtotal"`
}

// PagoResponse pago asociado a la venta.
type PagoResponse struct {
	IDPago       int64           `json:"id_pago"`
	IDMetodoPago int64           `json:"id_metodo_pago"`
	FechaHora    time.Time       `json:"fecha_hora"`
	Monto        decimal.Decimal `json:"monto"`
}

// ComprobanteResponse comprobante emitido por la venta.
type ComprobanteResponse struct {
	IDComprobante   int64  `json:"id_comprobante"`
	TipoComprobante string `json:"tipo_comprobante"`
	NroComprobante  string `json:"nro_comprobante"`
}

// VentaResponse venta completa con sus detalles, pago y comprobante.
type VentaResponse struct {
	IDVenta     int64                  `json:"id_venta"`
	IDCliente   int64                  `json:"id_cliente"`
	IDUsuario   int64                  `json:"id_usuario"`
	FechaVenta  time.Time              `json:"fecha_venta"`
	HoraVenta   string                 `json:"hora_venta"`
	MontoTotal  decimal.Decimal        `json:"monto_total"`
	Detalles    []DetalleVentaResponse `json:"detalles"`
	Pago        *PagoResponse          `json:"pago,omitempty"`
	Comprobante *ComprobanteResponse   `json:"comprobante,omitempty"`
}
