package usecase

import (
	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

// CompraUseCase casos de uso de compras (recepciones de pedidos).
// Cada pedido tiene a lo más una compra.
type CompraUseCase struct {
	repo       repository.CompraRepository
	pedidoRepo repository.PedidoRepository
}

// NewCompraUseCase construye el caso de uso.
func NewCompraUseCase(repo repository.CompraRepository, pedidoRepo repository.PedidoRepository) *CompraUseCase {
	return &CompraUseCase{repo: repo, pedidoRepo: pedidoRepo}
}

// Create registra la recepción de un pedido existente que aún no tiene
// compra. nro_guia y nro_comprobante únicos quedan bajo la autoridad de
// las restricciones de la tabla.
func (uc *CompraUseCase) Create(in dto.CreateCompraRequest) (*dto.CompraResponse, error) {
	if in.NroGuia == "" || in.NroComprobante == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MontoTotal.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.pedidoRepo.GetByID(in.IDPedido)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrReferencia
	}
	existing, err := uc.repo.GetByPedido(in.IDPedido)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	c := &entity.Compra{
		IDPedido:        in.IDPedido,
		FechaRecepcion:  in.FechaRecepcion,
		NroGuia:         in.NroGuia,
		TipoComprobante: in.TipoComprobante,
		NroComprobante:  in.NroComprobante,
		MontoTotal:      in.MontoTotal,
		Estado:          in.Estado,
		FechaPago:       in.FechaPago,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCompraResponse(c), nil
}

// List lista compras con paginación.
func (uc *CompraUseCase) List(limit, offset int) ([]*dto.CompraResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompraResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCompraResponse(c))
	}
	return out, nil
}

// GetByID obtiene una compra por ID.
func (uc *CompraUseCase) GetByID(id int64) (*dto.CompraResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCompraResponse(c), nil
}

// Update actualización parcial (estado y fecha de pago).
func (uc *CompraUseCase) Update(id int64, in dto.UpdateCompraRequest) (*dto.CompraResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Estado != nil {
		c.Estado = *in.Estado
	}
	if in.FechaPago != nil {
		c.FechaPago = in.FechaPago
	}
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCompraResponse(c), nil
}

func toCompraResponse(c *entity.Compra) *dto.CompraResponse {
	return &dto.CompraResponse{
		IDCompra:        c.IDCompra,
		IDPedido:        c.IDPedido,
		FechaRecepcion:  c.FechaRecepcion,
		NroGuia:         c.NroGuia,
		TipoComprobante: c.TipoComprobante,
		NroComprobante:  c.NroComprobante,
		MontoTotal:      c.MontoTotal,
		Estado:          c.Estado,
		FechaPago:       c.FechaPago,
	}
}
