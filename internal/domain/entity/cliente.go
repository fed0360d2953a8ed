package entity

import "time"

// Cliente representa un cliente captado por un vendedor.
// Vendedor es inmutable después de la creación: ninguna operación de
// actualización lo escribe, y todo acceso al registro se verifica contra él.
type Cliente struct {
	ID       string
	Nombre   string
	Apellido string
	Empresa  string
	Email    string // único en el sistema
	Telefono string
	Vendedor string // ID del Usuario propietario
	Creado   time.Time
}
