package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lote una cantidad recibida de un producto que comparte fecha de
// vencimiento y costo de compra. Un producto puede tener varios lotes.
type Lote struct {
	IDLote              int64
	IDProducto          int64
	CodigoLote          string // único
	FechaVencimiento    time.Time
	CantidadRecibida    int
	CostoUnitarioCompra decimal.Decimal
}

// UbicacionEstante ubicación física en el almacén.
type UbicacionEstante struct {
	IDUbicacionEstante int64
	Estante            string
	Nivel              string
}

// Inventario stock disponible de un lote en una ubicación (1:1 con lote).
type Inventario struct {
	IDInventario       int64
	IDLote             int64 // único
	IDUbicacionEstante int64
	StockActual        int
}

// InventarioDetalle fila de inventario con los campos del lote y la
// ubicación desnormalizados (vista de lectura). Solo existe si ambas
// asociaciones resuelven.
type InventarioDetalle struct {
	IDInventario         int64
	StockActual          int
	CodigoLote           string
	FechaVencimiento     time.Time
	PrecioCompraUnitario decimal.Decimal
	UbicacionEstante     string // "estante-nivel"
}
