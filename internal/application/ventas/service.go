package ventas

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/farmacia-api/internal/application/dto"
	"github.com/tu-usuario/farmacia-api/internal/domain"
	"github.com/tu-usuario/farmacia-api/internal/domain/entity"
	"github.com/tu-usuario/farmacia-api/internal/domain/repository"
)

// Service casos de uso de ventas. Las validaciones y el cálculo del
// total ocurren antes de abrir la transacción; dentro de ella solo se
// escriben filas ya decididas.
type Service struct {
	tx              TxRunner
	ventaRepo       repository.VentaRepository
	pagoRepo        repository.PagoRepository
	comprobanteRepo repository.ComprobanteRepository
	clienteRepo     repository.ClienteRepository
	productoRepo    repository.ProductoRepository
	metodoPagoRepo  repository.CatalogoRepository
}

// NewService construye el servicio de ventas.
func NewService(
	tx TxRunner,
	ventaRepo repository.VentaRepository,
	pagoRepo repository.PagoRepository,
	comprobanteRepo repository.ComprobanteRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	metodoPagoRepo repository.CatalogoRepository,
) *Service {
	return &Service{
		tx:              tx,
		ventaRepo:       ventaRepo,
		pagoRepo:        pagoRepo,
		comprobanteRepo: comprobanteRepo,
		clienteRepo:     clienteRepo,
		productoRepo:    productoRepo,
		metodoPagoRepo:  metodoPagoRepo,
	}
}

// Create registra una venta completa. El monto total es la suma exacta
// de cantidad × precio unitario de cada línea, calculado en decimal
// antes de escribir fila alguna; el pago se crea por ese mismo monto.
// Fecha de venta, hora de venta y fecha-hora del pago salen del mismo
// instante. Si cualquier inserción falla, la transacción se revierte y
// no queda venta parcial.
func (s *Service) Create(ctx context.Context, idUsuario int64, in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	if len(in.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.TipoComprobante == "" || in.NroComprobante == "" {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := s.clienteRepo.GetByID(in.IDCliente)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrReferencia
	}
	metodo, err := s.metodoPagoRepo.GetByID(in.IDMetodoPago)
	if err != nil {
		return nil, err
	}
	if metodo == nil {
		return nil, domain.ErrReferencia
	}
	existing, err := s.comprobanteRepo.GetByNumero(in.NroComprobante)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	total := decimal.Zero
	detalles := make([]entity.DetalleVenta, 0, len(in.Detalles))
	vistos := make(map[int64]bool, len(in.Detalles))
	for _, d := range in.Detalles {
		if d.Cantidad <= 0 || d.PrecioUnitarioVenta.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		// Cada producto va en una sola línea (clave compuesta venta, producto).
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
		subtotal := d.PrecioUnitarioVenta.Mul(decimal.NewFromInt(int64(d.Cantidad)))
		total = total.Add(subtotal)
		detalles = append(detalles, entity.DetalleVenta{
			IDProducto:          d.IDProducto,
			Cantidad:            d.Cantidad,
			PrecioUnitarioVenta: d.PrecioUnitarioVenta,
			Subtotal:            subtotal,
		})
	}

	now := time.Now()
	venta := &entity.Venta{
		IDCliente:  in.IDCliente,
		IDUsuario:  idUsuario,
		FechaVenta: now,
		HoraVenta:  now.Format("15:04:05"),
		MontoTotal: total,
	}
	pago := &entity.Pago{
		IDMetodoPago: in.IDMetodoPago,
		FechaHora:    now,
		Monto:        total,
	}
	comprobante := &entity.Comprobante{
		TipoComprobante: in.TipoComprobante,
		NroComprobante:  in.NroComprobante,
	}

	err = s.tx.RunVenta(ctx, func(
		ventaRepo repository.VentaRepository,
		pagoRepo repository.PagoRepository,
		comprobanteRepo repository.ComprobanteRepository,
	) error {
		if err := ventaRepo.Create(venta); err != nil {
			return err
		}
		for i := range detalles {
			detalles[i].IDVenta = venta.IDVenta
			if err := ventaRepo.CreateDetalle(&detalles[i]); err != nil {
				return err
			}
		}
		pago.IDVenta = venta.IDVenta
		if err := pagoRepo.Create(pago); err != nil {
			return err
		}
		comprobante.IDVenta = venta.IDVenta
		return comprobanteRepo.Create(comprobante)
	})
	if err != nil {
		return nil, err
	}
	return toVentaResponse(venta, detalles, pago, comprobante), nil
}

// List lista cabeceras de venta con paginación, sin detalles.
func (s *Service) List(limit, offset int) ([]*dto.VentaResponse, error) {
	list, err := s.ventaRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VentaResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toVentaResponse(v, nil, nil, nil))
	}
	return out, nil
}

// GetByID obtiene una venta completa con detalles, pago y comprobante.
func (s *Service) GetByID(id int64) (*dto.VentaResponse, error) {
	v, err := s.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	detalles, err := s.ventaRepo.GetDetalles(id)
	if err != nil {
		return nil, err
	}
	pago, err := s.pagoRepo.GetByVenta(id)
	if err != nil {
		return nil, err
	}
	comprobante, err := s.comprobanteRepo.GetByVenta(id)
	if err != nil {
		return nil, err
	}
	return toVentaResponse(v, detalles, pago, comprobante), nil
}

func toVentaResponse(v *entity.Venta, detalles []entity.DetalleVenta, pago *entity.Pago, comprobante *entity.Comprobante) *dto.VentaResponse {
	out := &dto.VentaResponse{
		IDVenta:    v.IDVenta,
		IDCliente:  v.IDCliente,
		IDUsuario:  v.IDUsuario,
		FechaVenta: v.FechaVenta,
		HoraVenta:  v.HoraVenta,
		MontoTotal: v.MontoTotal,
		Detalles:   make([]dto.DetalleVentaResponse, 0, len(detalles)),
	}
	for _, d := range detalles {
		out.Detalles = append(out.Detalles, dto.DetalleVentaResponse{
			IDProducto:          d.IDProducto,
			Cantidad:            d.Cantidad,
			PrecioUnitarioVenta: d.PrecioUnitarioVenta,
			Subtotal:            d.Subtotal,
		})
	}
	if pago != nil {
		out.Pago = &dto.PagoResponse{
			IDPago:       pago.IDPago,
			IDMetodoPago: pago.IDMetodoPago,
			FechaHora:    pago.FechaHora,
			Monto:        pago.Monto,
		}
	}
	if comprobante != nil {
		out.Comprobante = &dto.ComprobanteResponse{
			IDComprobante:   comprobante.IDComprobante,
			TipoComprobante: comprobante.TipoComprobante,
			NroComprobante:  comprobante.NroComprobante,
		}
	}
	return out
}
