package usecase

import (
	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

// InventarioUseCase casos de uso de inventario, lotes y ubicaciones.
// Las lecturas de inventario devuelven la fila con lote y ubicación
// desnormalizados; una fila sin lote o sin ubicación no aparece.
type InventarioUseCase struct {
	invRepo       repository.InventarioRepository
	loteRepo      repository.LoteRepository
	ubicacionRepo repository.UbicacionRepository
	productoRepo  repository.ProductoRepository
}

// NewInventarioUseCase construye el caso de uso.
func NewInventarioUseCase(
	invRepo repository.InventarioRepository,
	loteRepo repository.LoteRepository,
	ubicacionRepo repository.UbicacionRepository,
	productoRepo repository.ProductoRepository,
) *InventarioUseCase {
	return &InventarioUseCase{
		invRepo:       invRepo,
		loteRepo:      loteRepo,
		ubicacionRepo: ubicacionRepo,
		productoRepo:  productoRepo,
	}
}

// CreateLote registra un lote recibido de un producto existente.
func (uc *InventarioUseCase) CreateLote(in dto.CreateLoteRequest) (*dto.LoteResponse, error) {
	if in.CodigoLote == "" || in.CantidadRecibida <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CostoUnitarioCompra.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productoRepo.GetByID(in.IDProducto)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrReferencia
	}
	existing, err := uc.loteRepo.GetByCodigo(in.CodigoLote)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	l := &entity.Lote{
		IDProducto:          in.IDProducto,
		CodigoLote:          in.CodigoLote,
		FechaVencimiento:    in.FechaVencimiento,
		CantidadRecibida:    in.CantidadRecibida,
		CostoUnitarioCompra: in.CostoUnitarioCompra,
	}
	if err := uc.loteRepo.Create(l); err != nil {
		return nil, err
	}
	return toLoteResponse(l), nil
}

// ListLotes lista lotes con paginación.
func (uc *InventarioUseCase) ListLotes(limit, offset int) ([]*dto.LoteResponse, error) {
	list, err := uc.loteRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LoteResponse, 0, len(list))
	for _, l := range list {
		out = append(out, toLoteResponse(l))
	}
	return out, nil
}

// GetLote obtiene un lote por ID.
func (uc *InventarioUseCase) GetLote(id int64) (*dto.LoteResponse, error) {
	l, err := uc.loteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, nil
	}
	return toLoteResponse(l), nil
}

// CreateUbicacion crea una ubicación de estante.
func (uc *InventarioUseCase) CreateUbicacion(in dto.CreateUbicacionRequest) (*dto.UbicacionResponse, error) {
	if in.Estante == "" || in.Nivel == "" {
		return nil, domain.ErrInvalidInput
	}
	u := &entity.UbicacionEstante{Estante: in.Estante, Nivel: in.Nivel}
	if err := uc.ubicacionRepo.Create(u); err != nil {
		return nil, err
	}
	return &dto.UbicacionResponse{
		IDUbicacionEstante: u.IDUbicacionEstante,
		Estante:            u.Estante,
		Nivel:              u.Nivel,
	}, nil
}

// ListUbicaciones lista todas las ubicaciones.
func (uc *InventarioUseCase) ListUbicaciones() ([]*dto.UbicacionResponse, error) {
	list, err := uc.ubicacionRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UbicacionResponse, 0, len(list))
	for _, u := range list {
		out = append(out, &dto.UbicacionResponse{
			IDUbicacionEstante: u.IDUbicacionEstante,
			Estante:            u.Estante,
			Nivel:              u.Nivel,
		})
	}
	return out, nil
}

// CreateInventario registra el stock de un lote en una ubicación. El
// lote no puede tener ya inventario (relación 1:1); un lote o
// ubicación inexistente se reporta como error de referencia.
func (uc *InventarioUseCase) CreateInventario(in dto.CreateInventarioRequest) (*dto.InventarioResponse, error) {
	if in.StockActual < 0 {
		return nil, domain.ErrInvalidInput
	}
	l, err := uc.loteRepo.GetByID(in.IDLote)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrReferencia
	}
	inv := &entity.Inventario{
		IDLote:             in.IDLote,
		IDUbicacionEstante: in.IDUbicacionEstante,
		StockActual:        in.StockActual,
	}
	if err := uc.invRepo.Create(inv); err != nil {
		return nil, err
	}
	return uc.GetInventario(inv.IDInventario)
}

// List lista inventario con lote y ubicación resueltos.
func (uc *InventarioUseCase) List(limit, offset int) ([]*dto.InventarioResponse, error) {
	list, err := uc.invRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventarioResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toInventarioResponse(d))
	}
	return out, nil
}

// GetInventario obtiene una fila de inventario.
func (uc *InventarioUseCase) GetInventario(id int64) (*dto.InventarioResponse, error) {
	d, err := uc.invRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return toInventarioResponse(d), nil
}

// ListByProducto lista el inventario de todos los lotes de un producto.
func (uc *InventarioUseCase) ListByProducto(idProducto int64) ([]*dto.InventarioResponse, error) {
	p, err := uc.productoRepo.GetByID(idProducto)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.invRepo.ListByProducto(idProducto)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventarioResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toInventarioResponse(d))
	}
	return out, nil
}

// UpdateStock reemplaza el stock actual de una fila de inventario.
func (uc *InventarioUseCase) UpdateStock(id int64, in dto.UpdateInventarioRequest) (*dto.InventarioResponse, error) {
	if in.StockActual < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.invRepo.UpdateStock(id, in.StockActual); err != nil {
		return nil, err
	}
	return uc.GetInventario(id)
}

func toLoteResponse(l *entity.Lote) *dto.LoteResponse {
	return &dto.LoteResponse{
		IDLote:              l.IDLote,
		IDProducto:          l.IDProducto,
		CodigoLote:          l.CodigoLote,
		FechaVencimiento:    l.FechaVencimiento,
		CantidadRecibida:    l.CantidadRecibida,
		CostoUnitarioCompra: l.CostoUnitarioCompra,
	}
}

func toInventarioResponse(d *entity.InventarioDetalle) *dto.InventarioResponse {
	return &dto.InventarioResponse{
		IDInventario:         d.IDInventario,
		StockActual:          d.StockActual,
		CodigoLote:           d.CodigoLote,
		FechaVencimiento:     d.FechaVencimiento,
		PrecioCompraUnitario: d.PrecioCompraUnitario,
		UbicacionEstante:     d.UbicacionEstante,
	}
}
