package usecase_test

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type fakeClienteRepo struct {
	seq      int
	clientes map[string]*entity.Cliente
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{clientes: map[string]*entity.Cliente{}}
}

func (f *fakeClienteRepo) Create(_ context.Context, c *entity.Cliente) error {
	for _, existing := range f.clientes {
		if existing.Email == c.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	f.seq++
	c.ID = fmt.Sprintf("cliente-%d", f.seq)
	copia := *c
	f.clientes[c.ID] = &copia
	return nil
}

func (f *fakeClienteRepo) GetByID(_ context.Context, id string) (*entity.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (f *fakeClienteRepo) GetByEmail(_ context.Context, email string) (*entity.Cliente, error) {
	for _, c := range f.clientes {
		if c.Email == email {
			copia := *c
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeClienteRepo) ListAll(_ context.Context) ([]*entity.Cliente, error) {
	list := make([]*entity.Cliente, 0, len(f.clientes))
	for _, c := range f.clientes {
		copia := *c
		list = append(list, &copia)
	}
	return list, nil
}

func (f *fakeClienteRepo) ListByVendedor(_ context.Context, vendedorID string) ([]*entity.Cliente, error) {
	var list []*entity.Cliente
	for _, c := range f.clientes {
		if c.Vendedor == vendedorID {
			copia := *c
			list = append(list, &copia)
		}
	}
	return list, nil
}

func (f *fakeClienteRepo) Update(_ context.Context, c *entity.Cliente) error {
	stored, ok := f.clientes[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	// vendedor inmutable: se conserva el almacenado
	copia := *c
	copia.Vendedor = stored.Vendedor
	f.clientes[c.ID] = &copia
	return nil
}

func (f *fakeClienteRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.clientes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.clientes, id)
	return nil
}

type fakeProductoRepo struct {
	seq       int
	productos map[string]*entity.Producto
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: map[string]*entity.Producto{}}
}

func (f *fakeProductoRepo) Create(_ context.Context, p *entity.Producto) error {
	f.seq++
	p.ID = fmt.Sprintf("producto-%d", f.seq)
	copia := *p
	f.productos[p.ID] = &copia
	return nil
}

func (f *fakeProductoRepo) GetByID(_ context.Context, id string) (*entity.Producto, error) {
	p, ok := f.productos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *fakeProductoRepo) ListAll(_ context.Context) ([]*entity.Producto, error) {
	list := make([]*entity.Producto, 0, len(f.productos))
	for _, p := range f.productos {
		copia := *p
		list = append(list, &copia)
	}
	return list, nil
}

func (f *fakeProductoRepo) Search(_ context.Context, _ string, _ int) ([]*entity.Producto, error) {
	return nil, nil
}

func (f *fakeProductoRepo) Update(_ context.Context, p *entity.Producto) error {
	if _, ok := f.productos[p.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *p
	f.productos[p.ID] = &copia
	return nil
}

func (f *fakeProductoRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.productos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.productos, id)
	return nil
}

func (f *fakeProductoRepo) DecrementStock(_ context.Context, id string, cantidad int) error {
	p, ok := f.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Existencia < cantidad {
		return domain.ErrInsufficientStock
	}
	p.Existencia -= cantidad
	return nil
}

func (f *fakeProductoRepo) IncrementStock(_ context.Context, id string, cantidad int) error {
	p, ok := f.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Existencia += cantidad
	return nil
}

// existencia lee el stock almacenado, para aserciones.
func (f *fakeProductoRepo) existencia(id string) int {
	return f.productos[id].Existencia
}

type fakePedidoRepo struct {
	seq     int
	pedidos map[string]*entity.Pedido

	// error a devolver en la próxima llamada a Update, para simular fallos
	// del almacén al persistir
	fallaUpdate error
}

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{pedidos: map[string]*entity.Pedido{}}
}

func (f *fakePedidoRepo) Create(_ context.Context, p *entity.Pedido) error {
	f.seq++
	p.ID = fmt.Sprintf("pedido-%d", f.seq)
	copia := *p
	f.pedidos[p.ID] = &copia
	return nil
}

func (f *fakePedidoRepo) GetByID(_ context.Context, id string) (*entity.Pedido, error) {
	p, ok := f.pedidos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *fakePedidoRepo) ListAll(_ context.Context) ([]*entity.Pedido, error) {
	list := make([]*entity.Pedido, 0, len(f.pedidos))
	for _, p := range f.pedidos {
		copia := *p
		list = append(list, &copia)
	}
	return list, nil
}

func (f *fakePedidoRepo) ListByVendedor(_ context.Context, vendedorID string) ([]*entity.Pedido, error) {
	var list []*entity.Pedido
	for _, p := range f.pedidos {
		if p.Vendedor == vendedorID {
			copia := *p
			list = append(list, &copia)
		}
	}
	return list, nil
}

func (f *fakePedidoRepo) ListByVendedorAndEstado(_ context.Context, vendedorID, estado string) ([]*entity.Pedido, error) {
	var list []*entity.Pedido
	for _, p := range f.pedidos {
		if p.Vendedor == vendedorID && p.Estado == estado {
			copia := *p
			list = append(list, &copia)
		}
	}
	return list, nil
}

func (f *fakePedidoRepo) Update(_ context.Context, p *entity.Pedido) error {
	if f.fallaUpdate != nil {
		return f.fallaUpdate
	}
	if _, ok := f.pedidos[p.ID]; !ok {
		return domain.ErrNotFound
	}
	copia := *p
	f.pedidos[p.ID] = &copia
	return nil
}

func (f *fakePedidoRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.pedidos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.pedidos, id)
	return nil
}

type fakeAnalyticsRepo struct {
	clientes   []repository.ClienteTotal
	vendedores []repository.VendedorTotal
}

func (f *fakeAnalyticsRepo) TotalesPorCliente(_ context.Context) ([]repository.ClienteTotal, error) {
	return append([]repository.ClienteTotal(nil), f.clientes...), nil
}

func (f *fakeAnalyticsRepo) TotalesPorVendedor(_ context.Context) ([]repository.VendedorTotal, error) {
	return append([]repository.VendedorTotal(nil), f.vendedores...), nil
}
