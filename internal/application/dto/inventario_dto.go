package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLoteRequest entrada para registrar un lote recibido.
type CreateLoteRequest struct {
	IDProducto          int64           `json:"id_producto"`
	CodigoLote          string          `json:"codigo_lote"`
	FechaVencimiento    time.Time       `json:"fecha_vencimiento"`
	CantidadRecibida    int             `json:"cantidad_recibida"`
	CostoUnitarioCompra decimal.Decimal `json:"costo_unitario_compra"`
}

// LoteResponse salida de un lote.
type LoteResponse struct {
	IDLote              int64           `json:"id_lote"`
	IDProducto          int64           `json:"id_producto"`
	CodigoLote          string          `json:"codigo_lote"`
	FechaVencimiento    time.Time       `json:"fecha_vencimiento"`
	CantidadRecibida    int             `json:"cantidad_recibida"`
	CostoUnitarioCompra decimal.Decimal `json:"costo_unitario_compra"`
}

// CreateUbicacionRequest entrada para crear una ubicación de estante.
type CreateUbicacionRequest struct {
	Estante string `json:"estante"`
	Nivel   string `json:"nivel"`
}

// UbicacionResponse salida de una ubicación.
type UbicacionResponse struct {
	IDUbicacionEstante int64  `json:"id_ubicacion_estante"`
	Estante            string `json:"estante"`
	Nivel              string `json:"nivel"`
}

// CreateInventarioRequest entrada para registrar inventario de un lote.
type CreateInventarioRequest struct {
	IDLote             int64 `json:"id_lote"`
	IDUbicacionEstante int64 `json:"id_ubicacion_estante"`
	StockActual        int   `json:"stock_actual"`
}

// UpdateInventarioRequest reemplazo del stock actual.
type UpdateInventarioRequest struct {
	StockActual int `json:"stock_actual"`
}

// InventarioResponse fila de inventario con lote y ubicación desnormalizados.
type InventarioResponse struct {
	IDInventario         int64           `json:"id_inventario"`
	StockActual          int             `json:"stock_actual"`
	CodigoLote           string          `json:"codigo_lote"`
	FechaVencimiento     time.Time       `json:"fecha_vencimiento"`
	PrecioCompraUnitario decimal.Decimal `json:"precio_compra_unitario"`
	UbicacionEstante     string          `json:"ubicacion_estante"`
}
