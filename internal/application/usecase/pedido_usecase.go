package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/authz"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// PedidoUseCase casos de uso de pedidos. La colocación valida y descuenta
// stock línea por línea en el orden de la petición, cada línea con una
// escritura condicional atómica; si una línea falla, las anteriores se
// compensan antes de devolver el error (todo-o-nada).
type PedidoUseCase struct {
	pedidoRepo   repository.PedidoRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(pedidoRepo repository.PedidoRepository, clienteRepo repository.ClienteRepository, productoRepo repository.ProductoRepository) *PedidoUseCase {
	return &PedidoUseCase{pedidoRepo: pedidoRepo, clienteRepo: clienteRepo, productoRepo: productoRepo}
}

// Create coloca un pedido nuevo:
//  1. ErrNotFound si el cliente no existe.
//  2. ErrForbidden si el cliente pertenece a otro vendedor.
//  3. Por cada línea, en orden, un decremento condicional atómico de
//     existencia; ErrInsufficientStock revierte las líneas anteriores.
//  4. Total calculado con decimal sobre los precios vigentes.
//  5. Persiste con vendedor = usuario autenticado.
func (uc *PedidoUseCase) Create(ctx context.Context, p *auth.Principal, in dto.NuevoPedidoRequest) (*dto.PedidoResponse, error) {
	if err := authz.RequirePrincipal(p); err != nil {
		return nil, err
	}
	if len(in.Pedido) == 0 {
		return nil, domain.ErrInvalidInput
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.EstadoPendiente
	}
	if !entity.EstadoValido(estado) {
		return nil, domain.ErrInvalidInput
	}

	cliente, err := uc.clienteRepo.GetByID(ctx, in.Cliente)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.VerificarPropietario(cliente.Vendedor, p); err != nil {
		return nil, err
	}

	items, total, err := uc.reservarStock(ctx, in.Pedido)
	if err != nil {
		return nil, err
	}

	pedido := &entity.Pedido{
		Items:     items,
		Total:     total,
		ClienteID: cliente.ID,
		Vendedor:  p.ID,
		Estado:    estado,
		Creado:    time.Now(),
	}
	if err := uc.pedidoRepo.Create(ctx, pedido); err != nil {
		uc.liberarStock(ctx, items)
		return nil, err
	}
	return toPedidoResponse(pedido), nil
}

// GetByID obtiene un pedido del usuario autenticado.
func (uc *PedidoUseCase) GetByID(ctx context.Context, p *auth.Principal, id string) (*dto.PedidoResponse, error) {
	pedido, err := uc.owned(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(pedido), nil
}

// List lista todos los pedidos del sistema.
func (uc *PedidoUseCase) List(ctx context.Context) ([]*dto.PedidoResponse, error) {
	list, err := uc.pedidoRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toPedidoResponses(list), nil
}

// ListByVendedor lista los pedidos del usuario autenticado.
func (uc *PedidoUseCase) ListByVendedor(ctx context.Context, p *auth.Principal) ([]*dto.PedidoResponse, error) {
	if err := authz.RequirePrincipal(p); err != nil {
		return nil, err
	}
	list, err := uc.pedidoRepo.ListByVendedor(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return toPedidoResponses(list), nil
}

// ListByEstado lista los pedidos del usuario autenticado filtrados por estado.
func (uc *PedidoUseCase) ListByEstado(ctx context.Context, p *auth.Principal, estado string) ([]*dto.PedidoResponse, error) {
	if err := authz.RequirePrincipal(p); err != nil {
		return nil, err
	}
	if !entity.EstadoValido(estado) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.pedidoRepo.ListByVendedorAndEstado(ctx, p.ID, estado)
	if err != nil {
		return nil, err
	}
	return toPedidoResponses(list), nil
}

// Update actualiza un pedido del usuario autenticado. Si vienen líneas
// nuevas, reemplazan a las existentes y cada una revalida y descuenta stock
// con la misma escritura condicional y compensación que Create; el total se
// recalcula. El cliente destino, si cambia, debe existir y pertenecer al
// mismo vendedor.
func (uc *PedidoUseCase) Update(ctx context.Context, p *auth.Principal, id string, in dto.ActualizarPedidoRequest) (*dto.PedidoResponse, error) {
	pedido, err := uc.owned(ctx, p, id)
	if err != nil {
		return nil, err
	}

	if in.Cliente != "" && in.Cliente != pedido.ClienteID {
		cliente, err := uc.clienteRepo.GetByID(ctx, in.Cliente)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, domain.ErrNotFound
		}
		if err := authz.VerificarPropietario(cliente.Vendedor, p); err != nil {
			return nil, err
		}
		pedido.ClienteID = cliente.ID
	}

	if in.Estado != nil {
		if !entity.EstadoValido(*in.Estado) {
			return nil, domain.ErrInvalidInput
		}
		pedido.Estado = *in.Estado
	}

	var reservados []entity.PedidoItem
	if len(in.Pedido) > 0 {
		items, total, err := uc.reservarStock(ctx, in.Pedido)
		if err != nil {
			return nil, err
		}
		reservados = items
		pedido.Items = items
		pedido.Total = total
	}

	if err := uc.pedidoRepo.Update(ctx, pedido); err != nil {
		uc.liberarStock(ctx, reservados)
		return nil, err
	}
	return toPedidoResponse(pedido), nil
}

// Delete elimina un pedido del usuario autenticado.
func (uc *PedidoUseCase) Delete(ctx context.Context, p *auth.Principal, id string) error {
	if _, err := uc.owned(ctx, p, id); err != nil {
		return err
	}
	return uc.pedidoRepo.Delete(ctx, id)
}

// reservarStock descuenta la existencia de cada línea en el orden de la
// petición y captura nombre y precio vigentes. Si una línea falla, las
// líneas ya descontadas se devuelven al stock antes de retornar el error.
func (uc *PedidoUseCase) reservarStock(ctx context.Context, lineas []dto.PedidoItemRequest) ([]entity.PedidoItem, decimal.Decimal, error) {
	items := make([]entity.PedidoItem, 0, len(lineas))
	total := decimal.Zero
	for _, linea := range lineas {
		if linea.Cantidad <= 0 {
			uc.liberarStock(ctx, items)
			return nil, decimal.Zero, domain.ErrInvalidInput
		}
		producto, err := uc.productoRepo.GetByID(ctx, linea.ID)
		if err != nil {
			uc.liberarStock(ctx, items)
			return nil, decimal.Zero, err
		}
		if producto == nil {
			uc.liberarStock(ctx, items)
			return nil, decimal.Zero, domain.ErrNotFound
		}
		if err := uc.productoRepo.DecrementStock(ctx, linea.ID, linea.Cantidad); err != nil {
			uc.liberarStock(ctx, items)
			if errors.Is(err, domain.ErrInsufficientStock) {
				return nil, decimal.Zero, fmt.Errorf("%w: la cantidad solicitada del producto %q excede la existencia", domain.ErrInsufficientStock, producto.Nombre)
			}
			return nil, decimal.Zero, err
		}
		items = append(items, entity.PedidoItem{
			ProductoID: producto.ID,
			Cantidad:   linea.Cantidad,
			Nombre:     producto.Nombre,
			Precio:     producto.Precio,
		})
		total = total.Add(producto.Precio.Mul(decimal.NewFromInt(int64(linea.Cantidad))))
	}
	return items, total, nil
}

// liberarStock compensa decrementos ya aplicados. Best-effort: el error
// primario que motivó la compensación es el que ve el llamador.
func (uc *PedidoUseCase) liberarStock(ctx context.Context, items []entity.PedidoItem) {
	for _, it := range items {
		_ = uc.productoRepo.IncrementStock(ctx, it.ProductoID, it.Cantidad)
	}
}

// owned relee el pedido y aplica la guarda de propiedad.
func (uc *PedidoUseCase) owned(ctx context.Context, p *auth.Principal, id string) (*entity.Pedido, error) {
	pedido, err := uc.pedidoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.VerificarPropietario(pedido.Vendedor, p); err != nil {
		return nil, err
	}
	return pedido, nil
}

func toPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	if p == nil {
		return nil
	}
	items := make([]dto.PedidoItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PedidoItemResponse{
			ID:       it.ProductoID,
			Cantidad: it.Cantidad,
			Nombre:   it.Nombre,
			Precio:   it.Precio.InexactFloat64(),
		})
	}
	return &dto.PedidoResponse{
		ID:        p.ID,
		Pedido:    items,
		Total:     p.Total.InexactFloat64(),
		ClienteID: p.ClienteID,
		Vendedor:  p.Vendedor,
		Estado:    p.Estado,
		Creado:    p.Creado,
	}
}

func toPedidoResponses(list []*entity.Pedido) []*dto.PedidoResponse {
	items := make([]*dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toPedidoResponse(p))
	}
	return items
}
