package dto

import "time"

// ClienteRequest input de nuevoCliente. El vendedor nunca viene en el input:
// siempre es el usuario autenticado.
type ClienteRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Empresa  string `json:"empresa"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// ActualizarClienteRequest input de actualizarCliente. Campos nil no se tocan.
type ActualizarClienteRequest struct {
	Nombre   *string `json:"nombre"`
	Apellido *string `json:"apellido"`
	Empresa  *string `json:"empresa"`
	Email    *string `json:"email"`
	Telefono *string `json:"telefono"`
}

// ClienteResponse representación pública de un cliente.
type ClienteResponse struct {
	ID       string    `json:"id"`
	Nombre   string    `json:"nombre"`
	Apellido string    `json:"apellido"`
	Empresa  string    `json:"empresa"`
	Email    string    `json:"email"`
	Telefono string    `json:"telefono"`
	Vendedor string    `json:"vendedor"`
	Creado   time.Time `json:"creado"`
}
