package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(ctx context.Context, producto *entity.Producto) error
	GetByID(ctx context.Context, id string) (*entity.Producto, error)
	ListAll(ctx context.Context) ([]*entity.Producto, error)
	// Search busca por nombre ignorando mayúsculas y tildes, limitado a limit.
	Search(ctx context.Context, texto string, limit int) ([]*entity.Producto, error)
	Update(ctx context.Context, producto *entity.Producto) error
	Delete(ctx context.Context, id string) error

	// DecrementStock resta cantidad de la existencia en una única escritura
	// condicional: solo aplica si la existencia resultante es >= 0.
	// Devuelve domain.ErrNotFound si el producto no existe y
	// domain.ErrInsufficientStock si la existencia no alcanza.
	DecrementStock(ctx context.Context, id string, cantidad int) error
	// IncrementStock devuelve cantidad a la existencia (compensación).
	IncrementStock(ctx context.Context, id string, cantidad int) error
}
