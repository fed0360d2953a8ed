package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// Límite de resultados de buscarProducto.
const searchLimit = 10

// ProductoUseCase casos de uso CRUD y búsqueda para productos. Los
// productos son visibles globalmente; el decremento de existencia vive en
// PedidoUseCase.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un producto nuevo.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Existencia < 0 || in.Precio < 0 {
		return nil, domain.ErrInvalidInput
	}
	producto := &entity.Producto{
		Nombre:     in.Nombre,
		Existencia: in.Existencia,
		Precio:     decimal.NewFromFloat(in.Precio),
		Creado:     time.Now(),
	}
	if err := uc.repo.Create(ctx, producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID. ErrNotFound si no existe.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return toProductoResponse(producto), nil
}

// List lista todos los productos.
func (uc *ProductoUseCase) List(ctx context.Context) ([]*dto.ProductoResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductoResponse(p))
	}
	return items, nil
}

// Search busca productos por texto, ignorando mayúsculas y tildes, con tope
// de 10 resultados.
func (uc *ProductoUseCase) Search(ctx context.Context, texto string) ([]*dto.ProductoResponse, error) {
	list, err := uc.repo.Search(ctx, texto, searchLimit)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductoResponse(p))
	}
	return items, nil
}

// Update actualiza un producto. ErrNotFound si no existe.
func (uc *ProductoUseCase) Update(ctx context.Context, id string, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		producto.Nombre = *in.Nombre
	}
	if in.Existencia != nil {
		if *in.Existencia < 0 {
			return nil, domain.ErrInvalidInput
		}
		producto.Existencia = *in.Existencia
	}
	if in.Precio != nil {
		if *in.Precio < 0 {
			return nil, domain.ErrInvalidInput
		}
		producto.Precio = decimal.NewFromFloat(*in.Precio)
	}
	if err := uc.repo.Update(ctx, producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Delete elimina un producto. ErrNotFound si no existe.
func (uc *ProductoUseCase) Delete(ctx context.Context, id string) error {
	producto, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:         p.ID,
		Nombre:     p.Nombre,
		Existencia: p.Existencia,
		Precio:     p.Precio.InexactFloat64(),
		Creado:     p.Creado,
	}
}
