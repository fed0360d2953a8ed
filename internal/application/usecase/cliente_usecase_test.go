package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
)

func newClienteUC(t *testing.T) (*usecase.ClienteUseCase, string) {
	t.Helper()
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())
	resp, err := uc.Create(context.Background(), vendedor, dto.ClienteRequest{
		Nombre:  "Carlos",
		Empresa: "ACME",
		Email:   "carlos@acme.test",
	})
	require.NoError(t, err)
	return uc, resp.ID
}

func TestClienteCreate_AsignaVendedor(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())

	resp, err := uc.Create(context.Background(), vendedor, dto.ClienteRequest{
		Nombre: "Carlos",
		Email:  "carlos@acme.test",
	})
	require.NoError(t, err)
	assert.Equal(t, vendedor.ID, resp.Vendedor, "el vendedor siempre es el usuario autenticado")
}

func TestClienteCreate_SinIdentidad(t *testing.T) {
	uc := usecase.NewClienteUseCase(newFakeClienteRepo())

	_, err := uc.Create(context.Background(), nil, dto.ClienteRequest{Nombre: "x", Email: "x@x.test"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClienteCreate_EmailDuplicado(t *testing.T) {
	uc, _ := newClienteUC(t)

	_, err := uc.Create(context.Background(), vendedor, dto.ClienteRequest{
		Nombre: "Otro",
		Email:  "carlos@acme.test",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Otro vendedor no puede leer, actualizar ni borrar el cliente, sin importar
// qué tan válido sea el resto del input.
func TestCliente_AccesoDeOtroVendedor_Forbidden(t *testing.T) {
	uc, id := newClienteUC(t)

	_, err := uc.GetByID(context.Background(), otroVendedor, id)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	nombre := "Nuevo Nombre"
	_, err = uc.Update(context.Background(), otroVendedor, id, dto.ActualizarClienteRequest{Nombre: &nombre})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(context.Background(), otroVendedor, id)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCliente_Inexistente_NotFound(t *testing.T) {
	uc, _ := newClienteUC(t)

	_, err := uc.GetByID(context.Background(), vendedor, "cliente-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(context.Background(), vendedor, "cliente-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClienteUpdate_Propietario(t *testing.T) {
	uc, id := newClienteUC(t)

	empresa := "ACME Internacional"
	resp, err := uc.Update(context.Background(), vendedor, id, dto.ActualizarClienteRequest{Empresa: &empresa})
	require.NoError(t, err)
	assert.Equal(t, "ACME Internacional", resp.Empresa)
	assert.Equal(t, vendedor.ID, resp.Vendedor, "el vendedor no cambia en actualizaciones")
	assert.Equal(t, "Carlos", resp.Nombre, "los campos no enviados se conservan")
}

func TestClienteListByVendedor_SoloLosPropios(t *testing.T) {
	repo := newFakeClienteRepo()
	uc := usecase.NewClienteUseCase(repo)

	_, err := uc.Create(context.Background(), vendedor, dto.ClienteRequest{Nombre: "A", Email: "a@x.test"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), otroVendedor, dto.ClienteRequest{Nombre: "B", Email: "b@x.test"})
	require.NoError(t, err)

	propios, err := uc.ListByVendedor(context.Background(), vendedor)
	require.NoError(t, err)
	require.Len(t, propios, 1)
	assert.Equal(t, "A", propios[0].Nombre)
}
