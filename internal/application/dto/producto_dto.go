package dto

import "github.com/shopspring/decimal"

// CreateProductoRequest entrada para crear un producto con sus
// categorías, presentaciones y componentes (IDs existentes).
type CreateProductoRequest struct {
	CodigoInterno   string          `json:"codigo_interno"`
	NombreComercial string          `json:"nombre_comercial"`
	PrecioVenta     decimal.Decimal `json:"precio_venta"`
	AfectaIGV       *bool           `json:"afecta_igv"`      // default true
	RequiereReceta  bool            `json:"requiere_receta"` // default false
	Categorias      []int64         `json:"categorias"`
	Presentaciones  []int64         `json:"presentaciones"`
	Componentes     []int64         `json:"componentes"`
}

// UpdateProductoRequest actualización parcial.
type UpdateProductoRequest struct {
	CodigoInterno   *string          `json:"codigo_interno"`
	NombreComercial *string          `json:"nombre_comercial"`
	PrecioVenta     *decimal.Decimal `json:"precio_venta"`
	AfectaIGV       *bool            `json:"afecta_igv"`
	RequiereReceta  *bool            `json:"requiere_receta"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	IDProducto      int64           `json:"id_producto"`
	CodigoInterno   string          `json:"codigo_interno"`
	NombreComercial string          `json:"nombre_comercial"`
	PrecioVenta     decimal.Decimal `json:"precio_venta"`
	AfectaIGV       bool            `json:"afecta_igv"`
	RequiereReceta  bool            `json:"requiere_receta"`
}
