package pedidos

import (
	"context"
	"time"

	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

// Service casos de uso de pedidos. Las referencias (proveedor, estado,
// motivo, productos) se validan antes de abrir la transacción.
type Service struct {
	tx            TxRunner
	pedidoRepo    repository.PedidoRepository
	proveedorRepo repository.ProveedorRepository
	productoRepo  repository.ProductoRepository
	estadoRepo    repository.CatalogoRepository
	motivoRepo    repository.CatalogoRepository
}

// NewService construye el servicio de pedidos.
func NewService(
	tx TxRunner,
	pedidoRepo repository.PedidoRepository,
	proveedorRepo repository.ProveedorRepository,
	productoRepo repository.ProductoRepository,
	estadoRepo repository.CatalogoRepository,
	motivoRepo repository.CatalogoRepository,
) *Service {
	return &Service{
		tx:            tx,
		pedidoRepo:    pedidoRepo,
		proveedorRepo: proveedorRepo,
		productoRepo:  productoRepo,
		estadoRepo:    estadoRepo,
		motivoRepo:    motivoRepo,
	}
}

// Create registra un pedido con sus líneas. Cabecera y detalles se
// insertan en una sola transacción; si una línea falla no queda pedido
// parcial.
func (s *Service) Create(ctx context.Context, idUsuario int64, in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	if len(in.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	prov, err := s.proveedorRepo.GetByID(in.IDProveedor)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return nil, domain.ErrReferencia
	}
	estado, err := s.estadoRepo.GetByID(in.IDEstadoPedido)
	if err != nil {
		return nil, err
	}
	if estado == nil {
		return nil, domain.ErrReferencia
	}
	motivo, err := s.motivoRepo.GetByID(in.IDMotivoPedido)
	if err != nil {
		return nil, err
	}
	if motivo == nil {
		return nil, domain.ErrReferencia
	}
	vistos := make(map[int64]bool, len(in.Detalles))
	for _, d := range in.Detalles {
		if d.CantidadSolicitada <= 0 {
			return nil, domain.ErrInvalidInput
		}
		// Cada producto va en una sola línea (clave compuesta pedido, producto).
		if vistos[d.IDProducto] {
			return nil, domain.ErrDuplicate
		}
		vistos[d.IDProducto] = true
		p, err := s.productoRepo.GetByID(d.IDProducto)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrReferencia
		}
	}

	fecha := in.FechaSolicitud
	if fecha.IsZero() {
		fecha = time.Now()
	}
	pedido := &entity.Pedido{
		IDProveedor:          in.IDProveedor,
		IDUsuario:            idUsuario,
		IDEstadoPedido:       in.IDEstadoPedido,
		IDMotivoPedido:       in.IDMotivoPedido,
		FechaSolicitud:       fecha,
		FechaEntregaEstimada: in.FechaEntregaEstimada,
		Motivo:               in.Motivo,
	}
	err = s.tx.RunPedido(ctx, func(repo repository.PedidoRepository) error {
		if err := repo.Create(pedido); err != nil {
			return err
		}
		for _, d := range in.Detalles {
			det := &entity.DetallePedido{
				IDPedido:           pedido.IDPedido,
				IDProducto:         d.IDProducto,
				CantidadSolicitada: d.CantidadSolicitada,
			}
			if err := repo.CreateDetalle(det); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(pedido, in.Detalles), nil
}

// List lista cabeceras de pedido con paginación, sin detalles.
func (s *Service) List(limit, offset int) ([]*dto.PedidoResponse, error) {
	list, err := s.pedidoRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPedidoResponse(p, nil))
	}
	return out, nil
}

// GetByID obtiene un pedido con sus líneas.
func (s *Service) GetByID(id int64) (*dto.PedidoResponse, error) {
	p, err := s.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	detalles, err := s.pedidoRepo.GetDetalles(id)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DetallePedidoItem, 0, len(detalles))
	for _, d := range detalles {
		items = append(items, dto.DetallePedidoItem{
			IDProducto:         d.IDProducto,
			CantidadSolicitada: d.CantidadSolicitada,
		})
	}
	return toPedidoResponse(p, items), nil
}

// UpdateEstado cambia el estado de un pedido existente a un estado
// existente.
func (s *Service) UpdateEstado(id int64, in dto.UpdateEstadoPedidoRequest) (*dto.PedidoResponse, error) {
	estado, err := s.estadoRepo.GetByID(in.IDEstadoPedido)
	if err != nil {
		return nil, err
	}
	if estado == nil {
		return nil, domain.ErrReferencia
	}
	if err := s.pedidoRepo.UpdateEstado(id, in.IDEstadoPedido); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Update actualización parcial de la cabecera.
func (s *Service) Update(id int64, in dto.UpdatePedidoRequest) (*dto.PedidoResponse, error) {
	p, err := s.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.IDEstadoPedido != nil {
		estado, err := s.estadoRepo.GetByID(*in.IDEstadoPedido)
		if err != nil {
			return nil, err
		}
		if estado == nil {
			return nil, domain.ErrReferencia
		}
		p.IDEstadoPedido = *in.IDEstadoPedido
	}
	if in.FechaEntregaEstimada != nil {
		p.FechaEntregaEstimada = in.FechaEntregaEstimada
	}
	if in.Motivo != nil {
		p.Motivo = *in.Motivo
	}
	if err := s.pedidoRepo.Update(p); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func toPedidoResponse(p *entity.Pedido, detalles []dto.DetallePedidoItem) *dto.PedidoResponse {
	return &dto.PedidoResponse{
		IDPedido:             p.IDPedido,
		IDProveedor:          p.IDProveedor,
		IDUsuario:            p.IDUsuario,
		IDEstadoPedido:       p.IDEstadoPedido,
		IDMotivoPedido:       p.IDMotivoPedido,
		FechaSolicitud:       p.FechaSolicitud,
		FechaEntregaEstimada: p.FechaEntregaEstimada,
		Motivo:               p.Motivo,
		Detalles:             detalles,
	}
}
