package entity

import "time"

// Pedido orden de compra a un proveedor. Posee uno o más DetallePedido
// creados en la misma transacción que la cabecera.
type Pedido struct {
	IDPedido             int64
	IDProveedor          int64
	IDUsuario            int64 // quien solicita
	IDEstadoPedido       int64
	IDMotivoPedido       int64
	FechaSolicitud       time.Time
	FechaEntregaEstimada *time.Time
	Motivo               string // detalle libre del motivo
}

// DetallePedido línea del pedido, clave compuesta (pedido, producto).
type DetallePedido struct {
	IDPedido           int64
	IDProducto         int64
	CantidadSolicitada int
}

// EstadoPedido estado del pedido (en proceso, entregado, etc.).
type EstadoPedido struct {
	IDEstadoPedido int64
	Descripcion    string // único
}

// MotivoPedido motivo catalogado (stock bajo, pedido urgente, etc.).
type MotivoPedido struct {
	IDMotivoPedido int64
	Descripcion    string // único
}
