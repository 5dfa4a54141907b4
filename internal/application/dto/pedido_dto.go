package dto

import "time"

// DetallePedidoItem línea de un pedido.
type DetallePedidoItem struct {
	IDProducto         int64 `json:"id_producto"`
	CantidadSolicitada int   `json:"cantidad_solicitada"`
}

// CreatePedidoRequest entrada para crear un pedido con sus líneas.
// El usuario solicitante sale del token, no del cuerpo.
type CreatePedidoRequest struct {
	IDProveedor          int64               `json:"id_proveedor"`
	IDEstadoPedido       int64               `json:"id_estado_pedido"`
	IDMotivoPedido       int64               `json:"id_motivo_pedido"`
	FechaSolicitud       time.Time           `json:"fecha_solicitud"`
	FechaEntregaEstimada *time.Time          `json:"fecha_entrega_estimada"`
	Motivo               string              `json:"motivo"`
	Detalles             []DetallePedidoItem `json:"detalles"`
}

// UpdatePedidoRequest actualización parcial de la cabecera.
type UpdatePedidoRequest struct {
	IDEstadoPedido       *int64     `json:"id_estado_pedido"`
	FechaEntregaEstimada *time.Time `json:"fecha_entrega_estimada"`
	Motivo               *string    `json:"motivo"`
}

// UpdateEstadoPedidoRequest cambio de estado.
type UpdateEstadoPedidoRequest struct {
	IDEstadoPedido int64 `json:"id_estado_pedido"`
}

// PedidoResponse salida de un pedido con sus líneas.
type PedidoResponse struct {
	IDPedido             int64               `json:"id_pedido"`
	IDProveedor          int64               `json:"id_proveedor"`
	IDUsuario            int64               `json:"id_usuario"`
	IDEstadoPedido       int64               `json:"id_estado_pedido"`
	IDMotivoPedido       int64               `json:"id_motivo_pedido"`
	FechaSolicitud       time.Time           `json:"fecha_solicitud"`
	FechaEntregaEstimada *time.Time          `json:"fecha_entrega_estimada"`
	Motivo               string              `json:"motivo"`
	Detalles             []DetallePedidoItem `json:"detalles,omitempty"`
}
