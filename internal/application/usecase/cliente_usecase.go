package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/authz"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes con alcance de
// propietario: toda lectura puntual y toda mutación verifican que el
// cliente pertenezca al usuario autenticado.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un cliente con el usuario autenticado como vendedor.
// ErrEmailAlreadyExists si el email ya está registrado.
func (uc *ClienteUseCase) Create(ctx context.Context, p *auth.Principal, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if err := authz.RequirePrincipal(p); err != nil {
		return nil, err
	}
	if in.Nombre == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	cliente := &entity.Cliente{
		Nombre:   in.Nombre,
		Apellido: in.Apellido,
		Empresa:  in.Empresa,
		Email:    in.Email,
		Telefono: in.Telefono,
		Vendedor: p.ID,
		Creado:   time.Now(),
	}
	if err := uc.repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtiene un cliente del usuario autenticado.
// ErrNotFound si no existe, ErrForbidden si pertenece a otro vendedor.
func (uc *ClienteUseCase) GetByID(ctx context.Context, p *auth.Principal, id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.owned(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Lookup obtiene un cliente sin guarda de propiedad. Lo usa la resolución
// del campo cliente dentro de un pedido: ahí la visibilidad ya la decidió
// la operación que entregó el pedido. Devuelve nil si el cliente no existe,
// para que el campo unido quede en null.
func (uc *ClienteUseCase) Lookup(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	return toClienteResponse(cliente), nil
}

// List lista todos los clientes del sistema.
func (uc *ClienteUseCase) List(ctx context.Context) ([]*dto.ClienteResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toClienteResponses(list), nil
}

// ListByVendedor lista los clientes del usuario autenticado.
func (uc *ClienteUseCase) ListByVendedor(ctx context.Context, p *auth.Principal) ([]*dto.ClienteResponse, error) {
	if err := authz.RequirePrincipal(p); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByVendedor(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return toClienteResponses(list), nil
}

// Update actualiza un cliente del usuario autenticado. Vendedor es
// inmutable: no existe camino que lo escriba después de la creación.
func (uc *ClienteUseCase) Update(ctx context.Context, p *auth.Principal, id string, in dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.owned(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		cliente.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		cliente.Apellido = *in.Apellido
	}
	if in.Empresa != nil {
		cliente.Empresa = *in.Empresa
	}
	if in.Email != nil {
		cliente.Email = *in.Email
	}
	if in.Telefono != nil {
		cliente.Telefono = *in.Telefono
	}
	if err := uc.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Delete elimina un cliente del usuario autenticado.
func (uc *ClienteUseCase) Delete(ctx context.Context, p *auth.Principal, id string) error {
	if _, err := uc.owned(ctx, p, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// owned relee el cliente y aplica la guarda de propiedad.
func (uc *ClienteUseCase) owned(ctx context.Context, p *auth.Principal, id string) (*entity.Cliente, error) {
	cliente, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.VerificarPropietario(cliente.Vendedor, p); err != nil {
		return nil, err
	}
	return cliente, nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:       c.ID,
		Nombre:   c.Nombre,
		Apellido: c.Apellido,
		Empresa:  c.Empresa,
		Email:    c.Email,
		Telefono: c.Telefono,
		Vendedor: c.Vendedor,
		Creado:   c.Creado,
	}
}

func toClienteResponses(list []*entity.Cliente) []*dto.ClienteResponse {
	items := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toClienteResponse(c))
	}
	return items
}
