package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// PedidoRepository define el puerto de persistencia para Pedido (DIP).
type PedidoRepository interface {
	Create(ctx context.Context, pedido *entity.Pedido) error
	GetByID(ctx context.Context, id string) (*entity.Pedido, error)
	ListAll(ctx context.Context) ([]*entity.Pedido, error)
	ListByVendedor(ctx context.Context, vendedorID string) ([]*entity.Pedido, error)
	ListByVendedorAndEstado(ctx context.Context, vendedorID, estado string) ([]*entity.Pedido, error)
	Update(ctx context.Context, pedido *entity.Pedido) error
	Delete(ctx context.Context, id string) error
}
