package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var (
	vendedor     = &auth.Principal{ID: "vendedor-1", Email: "ana@crm.test", Nombre: "Ana", Apellido: "García"}
	otroVendedor = &auth.Principal{ID: "vendedor-2", Email: "otro@crm.test"}
)

type pedidoFixture struct {
	uc        *usecase.PedidoUseCase
	clientes  *fakeClienteRepo
	productos *fakeProductoRepo
	pedidos   *fakePedidoRepo
	clienteID string
}

// newPedidoFixture arma el caso de uso con un cliente del vendedor-1 y dos
// productos con stock conocido.
func newPedidoFixture(t *testing.T) *pedidoFixture {
	t.Helper()
	clientes := newFakeClienteRepo()
	productos := newFakeProductoRepo()
	pedidos := newFakePedidoRepo()

	cliente := &entity.Cliente{
		Nombre:   "Empresa",
		Apellido: "Uno",
		Email:    "empresa@uno.test",
		Vendedor: vendedor.ID,
		Creado:   time.Now(),
	}
	require.NoError(t, clientes.Create(context.Background(), cliente))

	seedProducto(t, productos, "Monitor", 5, 300)
	seedProducto(t, productos, "Teclado", 10, 50)

	return &pedidoFixture{
		uc:        usecase.NewPedidoUseCase(pedidos, clientes, productos),
		clientes:  clientes,
		productos: productos,
		pedidos:   pedidos,
		clienteID: cliente.ID,
	}
}

func seedProducto(t *testing.T, repo *fakeProductoRepo, nombre string, existencia int, precio float64) string {
	t.Helper()
	p := &entity.Producto{
		Nombre:     nombre,
		Existencia: existencia,
		Precio:     decimal.NewFromFloat(precio),
		Creado:     time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// nuevoPedido
// ──────────────────────────────────────────────────────────────────────────────

// Pedido válido: descuenta stock, calcula total y persiste con el vendedor.
func TestPedidoCreate_DescuentaStockYCalculaTotal(t *testing.T) {
	f := newPedidoFixture(t)

	resp, err := f.uc.Create(context.Background(), vendedor, dto.NuevoPedidoRequest{
		Cliente: f.clienteID,
		Pedido:  []dto.PedidoItemRequest{{ID: "producto-1", Cantidad: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, f.productos.existencia("producto-1"), "stock 5 - 2 = 3")
	assert.Equal(t, 600.0, resp.Total, "total = 2 x 300")
	assert.Equal(t, vendedor.ID, resp.Vendedor)
	assert.Equal(t, entity.EstadoPendiente, resp.Estado, "estado por defecto")
	require.Len(t, resp.Pedido, 1)
	assert.Equal(t, "producto-1", resp.Pedido[0].ID)
	assert.Equal(t, 2, resp.Pedido[0].Cantidad)
	assert.Equal(t, "Monitor", resp.Pedido[0].Nombre, "nombre capturado al colocar")

	persistido, err := f.pedidos.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, persistido, "el pedido debe quedar persistido")
	assert.Equal(t, f.clienteID, persistido.ClienteID)
}

// Cantidad mayor al stock: falla con InsufficientStock y nada cambia.
func TestPedidoCreate_StockInsuficiente(t *testing.T) {
	f := newPedidoFixture(t)

	_, err := f.uc.Create(context.Background(), vendedor, dto.NuevoPedidoRequest{
		Cliente: f.clienteID,
		Pedido:  []dto.PedidoItemRequest{{ID: "producto-1", Cantidad: 6}},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Monitor", "el error nombra al producto")

	assert.Equal(t, 5, f.productos.existencia("producto-1"), "el stock no cambia")
	pedidos, _ := f.pedidos.ListAll(context.Background())
	assert.Empty(t, pedidos, "no se persiste ningún pedido")
}

// Falla una línea intermedia: las anteriores se compensan (todo-o-nada).
func TestPedidoCreate_FallaIntermedia_CompensaLineasAnteriores(t *testing.T) {
	f := newPedidoFixture(t)

	_, err := f.uc.Create(context.Background(), vendedor, dto.NuevoPedidoRequest{
		Cliente: f.clienteID,
		Pedido: []dto.PedidoItemRequest{
			{ID: "producto-1", Cantidad: 2},  // pasa y descuenta
			{ID: "producto-2", Cantidad: 99}, // excede el stock
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 5, f.productos.existencia("producto-1"), "la línea descontada se devuelve")
	assert.Equal(t, 10, f.productos.existencia("producto-2"))
}

func TestPedidoCreate_ClienteInexistente(t *testing.T) {
	f := newPedidoFixture(t)

	_, err := f.uc.Create(context.Background(), vendedor, dto.NuevoPedidoRequest{
		Cliente: "cliente-inexistente",
		Pedido:  []dto.PedidoItemRequest{{ID: "producto-1", Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPedidoCreate_ClienteDeOtroVendedor(t *testing.T) {
	f := newPedidoFixture(t)

	_, err := f.uc.Create(context.Background(), otroVendedor, dto.NuevoPedidoRequest{
		Cliente: f.clienteID,
		Pedido:  []dto.PedidoItemRequest{{ID: "producto-1", Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 5, f.productos.existencia("producto-1"), "el stock no se toca antes de la guarda")
}

func TestPedidoCreate_SinIdentidad(t *testing.T) {
	f := newPedidoFixture(t)

	_, err := f.uc.Create(context.Background(), nil, dto.NuevoPedidoRequest{
		Cliente: f.clienteID,
		Pedido:  []dto.PedidoItemRequest{{ID: "producto-1", Cantidad: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestPedidoCreate_EstadoInvalido(t *testing.T) {
	f := newPedidoFixture(t)

	_, err := f.uc.Create(context.Background(), vendedor, dto.NuevoPedidoRequest{
		Cliente: f.clienteID,
		Pedido:  []dto.PedidoItemRequest{{ID: "producto-1", Cantidad: 1}},
		Estado:  "ENVIADO",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// actualizarPedido / eliminarPedido
// ──────────────────────────────────────────────────────────────────────────────

func TestPedidoUpdate_ReemplazaLineasYRecalculaTotal(t *testing.T) {
	f := newPedidoFixture(t)

	creado, err := f.uc.Create(context.Background(), vendedor, dto.NuevoPedidoRequest{
		Cliente: f.clienteID,
		Pedido:  []dto.PedidoItemRequest{{ID: "producto-1", Cantidad: 1}},
	})
	require.NoError(t, err)

	resp, err := f.uc.Update(context.Background(), vendedor, creado.ID, dto.ActualizarPedidoRequest{
		Pedido: []dto.PedidoItemRequest{{ID: "producto-2", Cantidad: 4}},
	})
	require.NoError(t, err)

	assert.Equal(t, 200.0, resp.Total, "total recalculado = 4 x 50")
	require.Len(t, resp.Pedido, 1)
	assert.Equal(t, "producto-2", resp.Pedido[0].ID)
	assert.Equal(t, 6, f.productos.existencia("producto-2"), "las líneas nuevas descuentan stock")
}

// Si el almacén falla al persistir la actualización, las líneas recién
// reservadas se devuelven al stock y el pedido conserva sus líneas previas.
func TestPedidoUpdate_FalloAlPersistir_CompensaStockReservado(t *testing.T) {
	f := newPedidoFixture(t)

	creado, err := f.uc.Create(context.Background(), vendedor, dto.NuevoPedidoRequest{
		Cliente: f.clienteID,
		Pedido:  []dto.PedidoItemRequest{{ID: "producto-1", Cantidad: 1}},
	})
	require.NoError(t, err)

	f.pedidos.fallaUpdate = errors.New("almacén caído")
	_, err = f.uc.Update(context.Background(), vendedor, creado.ID, dto.ActualizarPedidoRequest{
		Pedido: []dto.PedidoItemRequest{{ID: "producto-2", Cantidad: 4}},
	})
	require.Error(t, err)

	assert.Equal(t, 10, f.productos.existencia("producto-2"), "la reserva se revierte")
	assert.Equal(t, 4, f.productos.existencia("producto-1"), "las líneas previas siguen descontadas")

	persistido, err := f.pedidos.GetByID(context.Background(), creado.ID)
	require.NoError(t, err)
	require.Len(t, persistido.Items, 1)
	assert.Equal(t, "producto-1", persistido.Items[0].ProductoID, "el pedido conserva sus líneas previas")
}

func TestPedidoUpdate_CambiaEstado(t *testing.T) {
	f := newPedidoFixture(t)

	creado, err := f.uc.Create(context.Background(), vendedor, dto.NuevoPedidoRequest{
		Cliente: f.clienteID,
		Pedido:  []dto.PedidoItemRequest{{ID: "producto-1", Cantidad: 1}},
	})
	require.NoError(t, err)

	completado := entity.EstadoCompletado
	resp, err := f.uc.Update(context.Background(), vendedor, creado.ID, dto.ActualizarPedidoRequest{
		Estado: &completado,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoCompletado, resp.Estado)
	assert.Equal(t, creado.Total, resp.Total, "sin líneas nuevas el total no cambia")
}

func TestPedidoUpdate_PedidoDeOtroVendedor(t *testing.T) {
	f := newPedidoFixture(t)

	creado, err := f.uc.Create(context.Background(), vendedor, dto.NuevoPedidoRequest{
		Cliente: f.clienteID,
		Pedido:  []dto.PedidoItemRequest{{ID: "producto-1", Cantidad: 1}},
	})
	require.NoError(t, err)

	completado := entity.EstadoCompletado
	_, err = f.uc.Update(context.Background(), otroVendedor, creado.ID, dto.ActualizarPedidoRequest{
		Estado: &completado,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPedidoDelete_SoloElPropietario(t *testing.T) {
	f := newPedidoFixture(t)

	creado, err := f.uc.Create(context.Background(), vendedor, dto.NuevoPedidoRequest{
		Cliente: f.clienteID,
		Pedido:  []dto.PedidoItemRequest{{ID: "producto-1", Cantidad: 1}},
	})
	require.NoError(t, err)

	err = f.uc.Delete(context.Background(), otroVendedor, creado.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, f.uc.Delete(context.Background(), vendedor, creado.ID))
	pedidos, _ := f.pedidos.ListAll(context.Background())
	assert.Empty(t, pedidos)
}

func TestPedidoGetByID_Inexistente(t *testing.T) {
	f := newPedidoFixture(t)

	_, err := f.uc.GetByID(context.Background(), vendedor, "pedido-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPedidoListByEstado_FiltraPorVendedorYEstado(t *testing.T) {
	f := newPedidoFixture(t)

	creado, err := f.uc.Create(context.Background(), vendedor, dto.NuevoPedidoRequest{
		Cliente: f.clienteID,
		Pedido:  []dto.PedidoItemRequest{{ID: "producto-1", Cantidad: 1}},
		Estado:  entity.EstadoCompletado,
	})
	require.NoError(t, err)

	completados, err := f.uc.ListByEstado(context.Background(), vendedor, entity.EstadoCompletado)
	require.NoError(t, err)
	require.Len(t, completados, 1)
	assert.Equal(t, creado.ID, completados[0].ID)

	pendientes, err := f.uc.ListByEstado(context.Background(), vendedor, entity.EstadoPendiente)
	require.NoError(t, err)
	assert.Empty(t, pendientes)
}
