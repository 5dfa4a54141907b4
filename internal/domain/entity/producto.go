package entity

import "github.com/shopspring/decimal"

// Producto representa un medicamento o producto farmacéutico.
// Las relaciones con categorías, presentaciones y componentes son
// muchos-a-muchos vía tablas de unión creadas junto con el producto.
type Producto struct {
	IDProducto      int64
	CodigoInterno   string // único
	NombreComercial string
	PrecioVenta     decimal.Decimal
	AfectaIGV       bool
	RequiereReceta  bool
}

// Categoria categoría terapéutica (analgésico, antibiótico, etc.).
type Categoria struct {
	IDCategoria     int64
	NombreCategoria string // único
}

// Presentacion presentación comercial (caja x 10 tabletas, jarabe 120 ml, etc.).
type Presentacion struct {
	IDPresentacion   int64
	DescPresentacion string // único
}

// Componente principio activo.
type Componente struct {
	IDComponente     int64
	NombreComponente string // único
}
