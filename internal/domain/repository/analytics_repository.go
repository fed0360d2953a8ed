package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ClienteTotal es el total de pedidos COMPLETADOS de un cliente, con el
// registro del cliente ya unido.
type ClienteTotal struct {
	Cliente entity.Cliente
	Total   decimal.Decimal
}

// VendedorTotal es el total de pedidos COMPLETADOS de un vendedor, con el
// registro del usuario ya unido.
type VendedorTotal struct {
	Vendedor entity.Usuario
	Total    decimal.Decimal
}

// AnalyticsRepository agrupa pedidos completados por cliente o vendedor y
// une el registro propietario. El orden y el tope del ranking los aplica el
// caso de uso, no el repositorio.
type AnalyticsRepository interface {
	TotalesPorCliente(ctx context.Context) ([]ClienteTotal, error)
	TotalesPorVendedor(ctx context.Context) ([]VendedorTotal, error)
}
