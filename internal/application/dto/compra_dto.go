package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCompraRequest entrada para registrar la recepción de un pedido.
type CreateCompraRequest struct {
	IDPedido        int64           `json:"id_pedido"`
	FechaRecepcion  time.Time       `json:"fecha_recepcion"`
	NroGuia         string          `json:"nro_guia"`
	TipoComprobante string          `json:"tipo_comprobante"`
	NroComprobante  string          `json:"nro_comprobante"`
	MontoTotal      decimal.Decimal `json:"monto_total"`
	Estado          string          `json:"estado"`
	FechaPago       *time.Time      `json:"fecha_pago"`
}

// UpdateCompraRequest actualización parcial (estado y fecha de pago).
type UpdateCompraRequest struct {
	Estado    *string    `json:"estado"`
	FechaPago *time.Time `json:"fecha_pago"`
}

// CompraResponse salida de una compra.
type CompraResponse struct {
	IDCompra        int64           `json:"id_compra"`
	IDPedido        int64           `json:"id_pedido"`
	FechaRecepcion  time.Time       `json:"fecha_recepcion"`
	NroGuia         string          `json:"nro_guia"`
	TipoComprobante string          `json:"tipo_comprobante"`
	NroComprobante  string          `json:"nro_comprobante"`
	MontoTotal      decimal.Decimal `json:"monto_total"`
	Estado          string          `json:"estado"`
	FechaPago       *time.Time      `json:"fecha_pago"`
}
