package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secreta-de-test"

func TestGenerateYParse(t *testing.T) {
	token, err := Generate(testSecret, "usuario-1", "ana@crm.test", "Ana", "García", "crm-api", 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, email, nombre, apellido, err := Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "usuario-1", userID)
	assert.Equal(t, "ana@crm.test", email)
	assert.Equal(t, "Ana", nombre)
	assert.Equal(t, "García", apellido)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := Generate(testSecret, "usuario-1", "ana@crm.test", "Ana", "García", "crm-api", -1)
	require.NoError(t, err)

	_, _, _, _, err = Parse(testSecret, token)
	assert.Error(t, err)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate(testSecret, "usuario-1", "ana@crm.test", "Ana", "García", "crm-api", 24)
	require.NoError(t, err)

	_, _, _, _, err = Parse("otra-secreta", token)
	assert.Error(t, err)
}

func TestParse_TokenMalformado(t *testing.T) {
	_, _, _, _, err := Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", "usuario-1", "ana@crm.test", "Ana", "García", "crm-api", 24)
	assert.Error(t, err)
}
