package usecase

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

// ProductoUseCase casos de uso de productos. La creación inserta el
// producto y sus uniones con categorías, presentaciones y componentes
// en una sola transacción.
type ProductoUseCase struct {
	repo repository.ProductoRepository
	tx   ProductoTxRunner
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, tx ProductoTxRunner) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, tx: tx}
}

// Create crea un producto con sus asociaciones. El codigo_interno
// duplicado se rechaza antes de escribir; un ID de categoría,
// presentación o componente inexistente aborta todo el agregado.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.CodigoInterno == "" || in.NombreComercial == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PrecioVenta.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCodigo(in.CodigoInterno)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	afectaIGV := true
	if in.AfectaIGV != nil {
		afectaIGV = *in.AfectaIGV
	}
	p := &entity.Producto{
		CodigoInterno:   in.CodigoInterno,
		NombreComercial: in.NombreComercial,
		PrecioVenta:     in.PrecioVenta,
		AfectaIGV:       afectaIGV,
		RequiereReceta:  in.RequiereReceta,
	}
	err = uc.tx.RunProducto(ctx, func(repo repository.ProductoRepository) error {
		if err := repo.Create(p); err != nil {
			return err
		}
		for _, id := range in.Categorias {
			if err := repo.AddCategoria(p.IDProducto, id); err != nil {
				return err
			}
		}
		for _, id := range in.Presentaciones {
			if err := repo.AddPresentacion(p.IDProducto, id); err != nil {
				return err
			}
		}
		for _, id := range in.Componentes {
			if err := repo.AddComponente(p.IDProducto, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// List lista productos con paginación.
func (uc *ProductoUseCase) List(limit, offset int) ([]*dto.ProductoResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(id int64) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductoResponse(p), nil
}

// Search busca por subcadena en nombre o código, sin distinguir
// mayúsculas ni acentos. La entrada se normaliza a NFC para que
// "ibuprofeno" con acentos compuestos o descompuestos busque igual.
func (uc *ProductoUseCase) Search(q string) ([]*dto.ProductoResponse, error) {
	q = norm.NFC.String(strings.TrimSpace(q))
	if q == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.Search(q)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// Update actualización parcial.
func (uc *ProductoUseCase) Update(id int64, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.CodigoInterno != nil && *in.CodigoInterno != p.CodigoInterno {
		existing, err := uc.repo.GetByCodigo(*in.CodigoInterno)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		p.CodigoInterno = *in.CodigoInterno
	}
	if in.NombreComercial != nil {
		p.NombreComercial = *in.NombreComercial
	}
	if in.PrecioVenta != nil {
		if in.PrecioVenta.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.PrecioVenta = *in.PrecioVenta
	}
	if in.AfectaIGV != nil {
		p.AfectaIGV = *in.AfectaIGV
	}
	if in.RequiereReceta != nil {
		p.RequiereReceta = *in.RequiereReceta
	}
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// Delete elimina un producto (sus uniones caen en cascada).
func (uc *ProductoUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		IDProducto:      p.IDProducto,
		CodigoInterno:   p.CodigoInterno,
		NombreComercial: p.NombreComercial,
		PrecioVenta:     p.PrecioVenta,
		AfectaIGV:       p.AfectaIGV,
		RequiereReceta:  p.RequiereReceta,
	}
}
