package gql

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/jhoicas/crm-api/pkg/logger"
)

// graphqlRequest cuerpo estándar de una petición GraphQL sobre HTTP.
type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// NewHandler devuelve el handler Fiber de POST /graphql. Los errores de
// resolución viajan en el campo errors de la respuesta con estado 200,
// como manda el protocolo; solo un cuerpo inparseable produce 400.
func NewHandler(schema graphql.Schema, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req graphqlRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": []fiber.Map{{"message": "cuerpo de petición inválido"}},
			})
		}
		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.UserContext(),
		})
		if result.HasErrors() {
			for _, e := range result.Errors {
				log.Debug().Str("operation", req.OperationName).Str("error", e.Message).Msg("graphql error")
			}
		}
		return c.JSON(result)
	}
}
