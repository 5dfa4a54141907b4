package dto

// Los catálogos comparten la forma id + descripción; los nombres de los
// campos JSON varían por tabla, así que cada catálogo define su propio
// tipo de respuesta.

// CreateCatalogoRequest entrada común de creación de un catálogo.
type CreateCatalogoRequest struct {
	Descripcion string `json:"descripcion"`
}

// UpdateCatalogoRequest actualización de la descripción.
type UpdateCatalogoRequest struct {
	Descripcion string `json:"descripcion"`
}

// CatalogoResponse respuesta genérica id + descripción.
type CatalogoResponse struct {
	ID          int64  `json:"id"`
	Descripcion string `json:"descripcion"`
}

// CategoriaResponse categoría de producto.
type CategoriaResponse struct {
	IDCategoria     int64  `json:"id_categoria"`
	NombreCategoria string `json:"nombre_categoria"`
}

// PresentacionResponse presentación de producto.
type PresentacionResponse struct {
	IDPresentacion   int64  `json:"id_presentacion"`
	DescPresentacion string `json:"desc_presentacion"`
}

// ComponenteResponse componente activo de producto.
type ComponenteResponse struct {
	IDComponente     int64  `json:"id_componente"`
	NombreComponente string `json:"nombre_componente"`
}

// CargoResponse cargo de contacto de proveedor.
type CargoResponse struct {
	IDCargo     int64  `json:"id_cargo"`
	Descripcion string `json:"descripcion"`
}

// MetodoPagoResponse método de pago.
type MetodoPagoResponse struct {
	IDMetodoPago int64  `json:"id_metodo_pago"`
	Descripcion  string `json:"descripcion"`
}

// EstadoPedidoResponse estado de un pedido.
type EstadoPedidoResponse struct {
	IDEstadoPedido int64  `json:"id_estado_pedido"`
	Descripcion    string `json:"descripcion"`
}

// MotivoPedidoResponse motivo de un pedido.
type MotivoPedidoResponse struct {
	IDMotivoPedido int64  `json:"id_motivo_pedido"`
	Descripcion    string `json:"descripcion"`
}
