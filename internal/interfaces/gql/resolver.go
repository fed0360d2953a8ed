// Package gql expone el API GraphQL del CRM: el esquema con los nombres de
// operación públicos, el handler HTTP y el middleware de autenticación.
package gql

import (
	"encoding/json"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain"
)

// Resolver agrupa los casos de uso que el esquema invoca. La identidad de
// la petición viaja en el contexto y se pasa explícitamente a cada caso de
// uso como *auth.Principal.
type Resolver struct {
	Auth      *auth.UseCase
	Productos *usecase.ProductoUseCase
	Clientes  *usecase.ClienteUseCase
	Pedidos   *usecase.PedidoUseCase
	Analytics *usecase.AnalyticsUseCase
}

// decodeInput convierte el map del argumento input de GraphQL en el DTO de
// la aplicación vía un round-trip JSON (los tags json de los DTOs coinciden
// con los nombres de campo del esquema).
func decodeInput(arg interface{}, dst interface{}) error {
	if arg == nil {
		return domain.ErrInvalidInput
	}
	raw, err := json.Marshal(arg)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// stringArg obtiene un argumento string obligatorio.
func stringArg(p graphql.ResolveParams, name string) (string, error) {
	s, ok := p.Args[name].(string)
	if !ok || s == "" {
		return "", domain.ErrInvalidInput
	}
	return s, nil
}
