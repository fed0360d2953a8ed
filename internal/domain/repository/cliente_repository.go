package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente (DIP).
type ClienteRepository interface {
	Create(ctx context.Context, cliente *entity.Cliente) error
	GetByID(ctx context.Context, id string) (*entity.Cliente, error)
	GetByEmail(ctx context.Context, email string) (*entity.Cliente, error)
	ListAll(ctx context.Context) ([]*entity.Cliente, error)
	ListByVendedor(ctx context.Context, vendedorID string) ([]*entity.Cliente, error)
	Update(ctx context.Context, cliente *entity.Cliente) error
	Delete(ctx context.Context, id string) error
}
