package gql

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/pkg/jwt"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// AuthMiddleware extrae y verifica el Bearer Token del header authorization
// y adjunta la identidad tipada al contexto de la petición. Una petición
// sin token, o con token inválido, continúa anónima: las operaciones que
// exigen identidad fallan después, en el caso de uso.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		// se acepta "Bearer <token>" o el token a secas
		tokenString := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = strings.TrimSpace(parts[1])
		}
		userID, email, nombre, apellido, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Next()
		}
		p := &auth.Principal{ID: userID, Email: email, Nombre: nombre, Apellido: apellido}
		c.SetUserContext(auth.WithPrincipal(c.UserContext(), p))
		return c.Next()
	}
}

// RequestLogger registra cada petición con un request_id propio.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := uuid.NewString()
		c.Set("X-Request-Id", reqID)

		err := c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
