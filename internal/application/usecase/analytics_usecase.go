package usecase

import (
	"context"
	"sort"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// Topes del ranking: 10 clientes, 3 vendedores.
const (
	topClientesLimit   = 10
	topVendedoresLimit = 3
)

// AnalyticsUseCase rankings de solo lectura sobre pedidos COMPLETADOS.
// El repositorio agrupa y une; el orden (total descendente, ID ascendente
// como desempate) y el tope se aplican aquí.
type AnalyticsUseCase struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(repo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

// TopClientes devuelve hasta 10 clientes ordenados por total descendente.
func (uc *AnalyticsUseCase) TopClientes(ctx context.Context) ([]*dto.TopClienteResponse, error) {
	rows, err := uc.repo.TotalesPorCliente(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Total.GreaterThan(rows[j].Total)
		}
		return rows[i].Cliente.ID < rows[j].Cliente.ID
	})
	if len(rows) > topClientesLimit {
		rows = rows[:topClientesLimit]
	}
	items := make([]*dto.TopClienteResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, &dto.TopClienteResponse{
			Total:   row.Total.InexactFloat64(),
			Cliente: *toClienteResponse(&row.Cliente),
		})
	}
	return items, nil
}

// TopVendedores devuelve hasta 3 vendedores ordenados por total descendente.
func (uc *AnalyticsUseCase) TopVendedores(ctx context.Context) ([]*dto.TopVendedorResponse, error) {
	rows, err := uc.repo.TotalesPorVendedor(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Total.GreaterThan(rows[j].Total)
		}
		return rows[i].Vendedor.ID < rows[j].Vendedor.ID
	})
	if len(rows) > topVendedoresLimit {
		rows = rows[:topVendedoresLimit]
	}
	items := make([]*dto.TopVendedorResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, &dto.TopVendedorResponse{
			Total: row.Total.InexactFloat64(),
			Vendedor: dto.UsuarioResponse{
				ID:       row.Vendedor.ID,
				Nombre:   row.Vendedor.Nombre,
				Apellido: row.Vendedor.Apellido,
				Email:    row.Vendedor.Email,
				Creado:   row.Vendedor.Creado,
			},
		})
	}
	return items, nil
}
