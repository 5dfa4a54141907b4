package entity

// CatalogoItem fila genérica de un catálogo id + descripción (roles,
// cargos, categorías, presentaciones, componentes, estados y motivos de
// pedido, métodos de pago). Cada catálogo vive en su propia tabla; la
// capa de persistencia parametriza tabla y columnas.
type CatalogoItem struct {
	ID          int64
	Descripcion string // único por catálogo
}
