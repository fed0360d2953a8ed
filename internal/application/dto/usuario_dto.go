package dto

import "time"

// NuevoUsuarioRequest input de nuevoUsuario.
type NuevoUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AutenticarRequest input de autenticarUsuario.
type AutenticarRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioResponse representación pública de un usuario. Nunca incluye el
// hash de la contraseña.
type UsuarioResponse struct {
	ID       string    `json:"id"`
	Nombre   string    `json:"nombre"`
	Apellido string    `json:"apellido"`
	Email    string    `json:"email"`
	Creado   time.Time `json:"creado"`
}

// TokenResponse respuesta de autenticarUsuario.
type TokenResponse struct {
	Token string `json:"token"`
}
