package gql

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/pkg/jwt"
)

const testSecret = "secreta-de-test"

// appConIdentidad monta el middleware y una ruta que responde con el ID del
// principal, o "anonimo" si la petición no trae identidad.
func appConIdentidad() *fiber.App {
	app := fiber.New()
	app.Use(AuthMiddleware(testSecret))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		p := auth.PrincipalFromContext(c.UserContext())
		if p == nil {
			return c.SendString("anonimo")
		}
		return c.SendString(p.ID)
	})
	return app
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := appConIdentidad()

	token, err := jwt.Generate(testSecret, "usuario-1", "ana@crm.test", "Ana", "García", "crm-api", 24)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "usuario-1", string(body))
}

func TestAuthMiddleware_TokenSinPrefijo(t *testing.T) {
	app := appConIdentidad()

	token, err := jwt.Generate(testSecret, "usuario-1", "ana@crm.test", "Ana", "García", "crm-api", 24)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "usuario-1", string(body))
}

func TestAuthMiddleware_SinToken_ContinuaAnonimo(t *testing.T) {
	app := appConIdentidad()

	req := httptest.NewRequest("GET", "/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "la ausencia de token no corta la petición")
	assert.Equal(t, "anonimo", string(body))
}

func TestAuthMiddleware_TokenInvalido_ContinuaAnonimo(t *testing.T) {
	app := appConIdentidad()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer no-es-un-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "anonimo", string(body))
}

func TestAuthMiddleware_FirmaIncorrecta_ContinuaAnonimo(t *testing.T) {
	app := appConIdentidad()

	token, err := jwt.Generate("otra-secreta", "usuario-1", "ana@crm.test", "Ana", "García", "crm-api", 24)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "anonimo", string(body))
}
